package download

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/ytget/ytpick/internal/catalog"
	"github.com/ytget/ytpick/internal/model"
	"github.com/ytget/ytpick/internal/platform"
	"github.com/ytget/ytpick/internal/progress"
	"github.com/ytget/ytpick/internal/resolver"
)

// Defaults
const (
	DefaultProgressInterval = 100 * time.Millisecond
	DefaultEventBuffer      = 256
	JobIDPrefix             = "job-"
)

// Option configures a Service
type Option func(*Service)

// WithDispatcher sets the function used to hand events to the listener
func WithDispatcher(d Dispatcher) Option {
	return func(s *Service) {
		if d != nil {
			s.dispatch = d
		}
	}
}

// WithProgressInterval sets the minimum spacing of progress events. Zero or a
// negative value posts every change.
func WithProgressInterval(interval time.Duration) Option {
	return func(s *Service) {
		s.interval = interval
	}
}

// event is one queued listener call. A finished job state marks the terminal
// event.
type event struct {
	job model.DownloadJob
}

// Service runs at most one download at a time
type Service struct {
	resolver resolver.MediaResolver
	listener Listener
	dispatch Dispatcher
	interval time.Duration
	events   chan event
	done     chan struct{}
	workers  sync.WaitGroup

	mu      sync.Mutex
	session *model.VideoSession
	catalog *catalog.Catalog
	running bool
	closed  bool
	lastErr error
}

var _ Downloader = (*Service)(nil)

// NewService creates a service that downloads through r and reports to l
func NewService(r resolver.MediaResolver, l Listener, opts ...Option) *Service {
	if l == nil {
		l = ListenerFuncs{}
	}
	s := &Service{
		resolver: r,
		listener: l,
		dispatch: func(fn func()) { fn() },
		interval: DefaultProgressInterval,
		events:   make(chan event, DefaultEventBuffer),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	go s.deliver()
	return s
}

// Resolve looks up a video and replaces the current session with a fresh
// catalog built from its encodings
func (s *Service) Resolve(ctx context.Context, rawURL string) (*model.VideoSession, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, &ResolveError{URL: rawURL, Err: ErrEmptyURL}
	}
	if !platform.IsVideoURL(rawURL) {
		return nil, &ResolveError{URL: rawURL, Err: ErrInvalidURL}
	}

	url := platform.CleanVideoURL(rawURL)
	info, err := s.resolver.Resolve(ctx, url)
	if err != nil {
		log.Printf("Resolve failed for %s: %v", url, err)
		return nil, &ResolveError{URL: url, Err: err}
	}
	if info == nil {
		log.Printf("Resolve returned no metadata for %s", url)
		return nil, &ResolveError{URL: url, Err: ErrNoMetadata}
	}

	cat := catalog.Build(info.Formats)
	session := &model.VideoSession{
		SourceURL:    url,
		Title:        info.Title,
		ThumbnailURL: info.ThumbnailURL,
		Catalog:      cat.Entries(),
	}
	log.Printf("Resolved %s: %q with %d formats", url, session.Title, len(session.Catalog))

	s.mu.Lock()
	s.session = session
	s.catalog = cat
	s.mu.Unlock()

	return cloneSession(session), nil
}

// Current returns a copy of the current session, or nil before the first
// successful Resolve
func (s *Service) Current() *model.VideoSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSession(s.session)
}

// Running reports whether a job is in progress
func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// LastError returns the *TransferError of the most recent failed job, or nil
// if the most recent job succeeded
func (s *Service) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Start validates the selection and destination and launches the transfer on
// a worker goroutine. The returned snapshot is already RUNNING.
func (s *Service) Start(label, destinationDir string) (model.DownloadJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return model.DownloadJob{}, ErrClosed
	}
	if s.running {
		return model.DownloadJob{}, ErrJobRunning
	}
	if s.session == nil {
		return model.DownloadJob{}, &SelectionError{Label: label, Err: ErrNoSession}
	}

	entry, err := s.catalog.Entry(label)
	if err != nil {
		return model.DownloadJob{}, &SelectionError{Label: label, Err: err}
	}

	if err := platform.EnsureWritableDir(destinationDir); err != nil {
		return model.DownloadJob{}, &DestinationError{Dir: destinationDir, Err: err}
	}

	job := model.DownloadJob{
		ID:             generateJobID(),
		SourceURL:      s.session.SourceURL,
		Title:          s.session.Title,
		Entry:          entry,
		DestinationDir: destinationDir,
		State:          model.JobRunning,
		LastMessage:    progress.StatusMessage(0),
		StartedAt:      time.Now(),
	}
	s.running = true
	s.workers.Add(1)

	log.Printf("Starting job %s: %s [%s] -> %s", job.ID, job.SourceURL, entry.Label, destinationDir)
	go s.run(job)

	return job, nil
}

// run performs the transfer. It owns job and its tracker until the terminal
// event is queued.
func (s *Service) run(job model.DownloadJob) {
	defer s.workers.Done()

	tracker := progress.NewTracker()
	var limiter *rate.Limiter
	if s.interval > 0 {
		limiter = rate.NewLimiter(rate.Every(s.interval), 1)
	}

	s.post(event{job: job})

	apply := func(u progress.Update) {
		if u.Percent == job.Percent && u.Detail == job.Detail {
			return
		}
		job.Percent = u.Percent
		job.LastMessage = u.Message
		job.Detail = u.Detail
		if limiter != nil && !limiter.Allow() {
			return
		}
		s.post(event{job: job})
	}

	sink := resolver.SinkFuncs{
		OnBytes: func(total, remaining int64) {
			apply(tracker.Bytes(total, remaining))
		},
		OnLine: func(text string) {
			if u, ok := tracker.Line(text); ok {
				apply(u)
			}
		},
	}

	outputPath, err := s.resolver.Fetch(context.Background(), resolver.FetchRequest{
		SourceURL:      job.SourceURL,
		Encoding:       job.Entry.Descriptor,
		DestinationDir: job.DestinationDir,
	}, sink)

	job.FinishedAt = time.Now()
	var transferErr error
	if err != nil {
		transferErr = &TransferError{JobID: job.ID, Err: err}
		log.Printf("Download failed for job %s: %v", job.ID, err)
		job.State = model.JobFailed
		job.LastMessage = resolver.FriendlyMessage(err)
	} else {
		u := tracker.Complete()
		job.State = model.JobSucceeded
		job.Percent = u.Percent
		job.LastMessage = u.Message
		job.Detail = u.Detail
		job.OutputPath = outputPath
		log.Printf("Download finished for job %s: %s", job.ID, outputPath)
	}

	s.mu.Lock()
	s.running = false
	s.lastErr = transferErr
	s.mu.Unlock()

	s.post(event{job: job})
}

// Close waits for a running job to finish, delivers the queued events and
// stops the delivery goroutine. Start fails with ErrClosed afterwards. Close
// must not be called from a Listener.
func (s *Service) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	s.workers.Wait()
	close(s.events)
	<-s.done
	return nil
}

// post queues an event. Progress events are dropped when the queue is full;
// terminal events always wait for room.
func (s *Service) post(ev event) {
	if ev.job.State.IsFinished() {
		s.events <- ev
		return
	}
	select {
	case s.events <- ev:
	default:
		log.Printf("Event queue full, dropping progress for job %s", ev.job.ID)
	}
}

// deliver is the single consumer of the event queue
func (s *Service) deliver() {
	defer close(s.done)

	for ev := range s.events {
		ev := ev
		s.dispatch(func() {
			if ev.job.State.IsFinished() {
				s.listener.JobFinished(ev.job)
				return
			}
			s.listener.JobUpdated(ev.job)
		})
	}
}

func cloneSession(session *model.VideoSession) *model.VideoSession {
	if session == nil {
		return nil
	}
	clone := *session
	clone.Catalog = append([]model.CatalogEntry(nil), session.Catalog...)
	return &clone
}

// generateJobID generates a time-ordered job id
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(JobIDPrefix+"%d", time.Now().UnixNano())
	}
	return JobIDPrefix + id.String()
}

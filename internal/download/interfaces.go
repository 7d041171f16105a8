package download

import (
	"context"

	"github.com/ytget/ytpick/internal/model"
)

// Listener receives job snapshots. Calls happen through the service's
// Dispatcher, one at a time, in the order the worker produced them.
type Listener interface {
	// JobUpdated is called for every accepted progress change
	JobUpdated(job model.DownloadJob)

	// JobFinished is called exactly once per job with its terminal state. The
	// service is already idle, so Start may be called from here.
	JobFinished(job model.DownloadJob)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are ignored.
type ListenerFuncs struct {
	OnUpdate func(job model.DownloadJob)
	OnFinish func(job model.DownloadJob)
}

// JobUpdated implements Listener
func (l ListenerFuncs) JobUpdated(job model.DownloadJob) {
	if l.OnUpdate != nil {
		l.OnUpdate(job)
	}
}

// JobFinished implements Listener
func (l ListenerFuncs) JobFinished(job model.DownloadJob) {
	if l.OnFinish != nil {
		l.OnFinish(job)
	}
}

// Dispatcher runs fn on the presentation thread. Desktop skins pass fyne.Do;
// the default calls fn directly on the event goroutine.
type Dispatcher func(fn func())

// Downloader is the orchestrator surface used by the presentation layers
type Downloader interface {
	Resolve(ctx context.Context, url string) (*model.VideoSession, error)
	Start(label, destinationDir string) (model.DownloadJob, error)
	Current() *model.VideoSession
	Running() bool
}

package download

import (
	"errors"
	"fmt"

	"github.com/ytget/ytpick/internal/resolver"
)

var (
	// ErrJobRunning is returned by Start while another job is running
	ErrJobRunning = errors.New("download: a job is already running")

	// ErrNoSession is returned by Start before any successful search
	ErrNoSession = errors.New("download: no video selected")

	// ErrEmptyURL is returned by Resolve for a blank URL
	ErrEmptyURL = errors.New("download: URL is empty")

	// ErrInvalidURL is returned by Resolve for a URL that names no video
	ErrInvalidURL = errors.New("download: invalid YouTube URL")

	// ErrNoMetadata is returned by Resolve when the resolver reports neither
	// metadata nor an error
	ErrNoMetadata = errors.New("download: resolver returned no metadata")

	// ErrClosed is returned by Start after Close
	ErrClosed = errors.New("download: service is closed")
)

// InvalidURLMessage is shown for a URL that is not a video link
const InvalidURLMessage = "Invalid YouTube URL"


// ResolveError reports a failed search. The user may retry with another URL.
type ResolveError struct {
	URL string
	Err error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve %s: %v", e.URL, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// Message returns the text to show the user
func (e *ResolveError) Message() string {
	if errors.Is(e.Err, ErrInvalidURL) {
		return InvalidURLMessage
	}
	return resolver.FriendlyMessage(e.Err)
}

// SelectionError reports a label that is not in the current catalog
type SelectionError struct {
	Label string
	Err   error
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("select %q: %v", e.Label, e.Err)
}

func (e *SelectionError) Unwrap() error {
	return e.Err
}

// DestinationError reports a destination directory that cannot be used
type DestinationError struct {
	Dir string
	Err error
}

func (e *DestinationError) Error() string {
	return fmt.Sprintf("destination %s: %v", e.Dir, e.Err)
}

func (e *DestinationError) Unwrap() error {
	return e.Err
}

// TransferError reports a failure inside the resolver during a download. It
// only reaches listeners as the job's LastMessage.
type TransferError struct {
	JobID string
	Err   error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("job %s: %v", e.JobID, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// Package resolver defines the boundary to the external media resolver that
// performs all site-specific work: metadata lookup, format enumeration and the
// transfer itself. The core depends only on the MediaResolver interface.
package resolver

import (
	"context"

	"github.com/ytget/ytpick/internal/model"
)

// ProgressSink receives progress events while a fetch runs. Implementations
// report either byte counts or raw text lines, whichever the backend has.
// Calls for one fetch must not overlap.
type ProgressSink interface {
	Bytes(total, remaining int64)
	Line(text string)
}

// FetchRequest describes one transfer
type FetchRequest struct {
	SourceURL      string
	Encoding       model.EncodingDescriptor
	DestinationDir string
}

// MediaResolver resolves a URL to its metadata and downloads a chosen encoding
type MediaResolver interface {
	// Resolve returns the title, thumbnail and raw encodings for a video URL
	Resolve(ctx context.Context, url string) (*model.VideoInfo, error)

	// Fetch downloads the requested encoding into the destination directory and
	// returns the path of the written file
	Fetch(ctx context.Context, req FetchRequest, sink ProgressSink) (string, error)
}

// SinkFuncs adapts plain functions to ProgressSink. Nil fields are ignored.
type SinkFuncs struct {
	OnBytes func(total, remaining int64)
	OnLine  func(text string)
}

// Bytes implements ProgressSink
func (s SinkFuncs) Bytes(total, remaining int64) {
	if s.OnBytes != nil {
		s.OnBytes(total, remaining)
	}
}

// Line implements ProgressSink
func (s SinkFuncs) Line(text string) {
	if s.OnLine != nil {
		s.OnLine(text)
	}
}

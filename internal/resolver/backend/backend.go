// Package backend builds the configured MediaResolver implementation.
package backend

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ytget/ytpick/internal/resolver"
	"github.com/ytget/ytpick/internal/resolver/native"
	"github.com/ytget/ytpick/internal/resolver/ytdlp"
)

// Backend names as stored in settings and accepted on the command line
const (
	YtDlp  = "ytdlp"
	Native = "native"
)

// probeTimeout bounds the yt-dlp --version check
const probeTimeout = 10 * time.Second

// ErrUnknownBackend is returned for an unsupported backend name
var ErrUnknownBackend = errors.New("backend: unknown resolver backend")

// New returns the resolver for name. ytdlpPath is only used by the yt-dlp
// backend; an empty path means "yt-dlp" from PATH.
func New(name, ytdlpPath string) (resolver.MediaResolver, error) {
	switch name {
	case YtDlp, "":
		return ytdlp.New(ytdlpPath), nil
	case Native:
		return native.New(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// Check reports problems that would make every download fail. Only the yt-dlp
// backend has an external dependency to probe.
func Check(ctx context.Context, r resolver.MediaResolver) error {
	probe, ok := r.(*ytdlp.Resolver)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if err := probe.CheckInstalled(ctx); err != nil {
		log.Printf("backend: %v", err)
		return err
	}
	return nil
}

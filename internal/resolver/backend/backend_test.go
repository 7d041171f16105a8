package backend

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ytget/ytpick/internal/resolver"
	"github.com/ytget/ytpick/internal/resolver/native"
	"github.com/ytget/ytpick/internal/resolver/ytdlp"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		check   func(resolver.MediaResolver) bool
	}{
		{"default", "", func(r resolver.MediaResolver) bool { _, ok := r.(*ytdlp.Resolver); return ok }},
		{"ytdlp", YtDlp, func(r resolver.MediaResolver) bool { _, ok := r.(*ytdlp.Resolver); return ok }},
		{"native", Native, func(r resolver.MediaResolver) bool { _, ok := r.(*native.Resolver); return ok }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.backend, "")
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.backend, err)
			}
			if !tt.check(r) {
				t.Errorf("New(%q) returned %T", tt.backend, r)
			}
		})
	}
}

func TestNew_Unknown(t *testing.T) {
	if _, err := New("pytube", ""); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("error = %v, want ErrUnknownBackend", err)
	}
}

func TestCheck(t *testing.T) {
	if err := Check(context.Background(), native.New()); err != nil {
		t.Errorf("native backend needs no probe, got %v", err)
	}

	missing := ytdlp.New(filepath.Join(t.TempDir(), "no-such-yt-dlp"))
	if err := Check(context.Background(), missing); !errors.Is(err, resolver.ErrNotInstalled) {
		t.Errorf("error = %v, want ErrNotInstalled", err)
	}
}

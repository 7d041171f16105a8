package ytdlp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ytget/ytpick/internal/model"
	"github.com/ytget/ytpick/internal/resolver"
)

// fakeScript behaves like a tiny subset of yt-dlp
const fakeScript = `#!/bin/sh
case "$1" in
--version)
	echo "2025.01.01"
	;;
-J)
	case "$3" in
	*gone*)
		echo "WARNING: something minor" >&2
		echo "ERROR: [youtube] gone: Video unavailable" >&2
		exit 1
		;;
	esac
	cat <<'JSON'
{"title": "Fake Clip", "thumbnail": "https://example.com/t.jpg", "formats": [
 {"format_id": "18", "ext": "mp4", "vcodec": "avc1", "acodec": "mp4a", "height": 360, "fps": 30},
 {"format_id": "140", "ext": "m4a", "vcodec": "none", "acodec": "mp4a", "abr": 128}
]}
JSON
	;;
-f)
	dir=$(dirname "$4")
	case "$2" in
	slow)
		exec sleep 5
		;;
	busy)
		echo "[download]  12.0% of 10.00MiB"
		echo "ERROR: HTTP Error 429: Too Many Requests" >&2
		exit 1
		;;
	silent)
		exit 3
		;;
	esac
	echo "[youtube] abc: Downloading webpage"
	echo "[download] Destination: $dir/Fake Clip.mp4"
	echo "[download]  10.0% of 10.00MiB at 1.00MiB/s ETA 00:09"
	echo "[download] 100.0% of 10.00MiB in 00:10"
	;;
esac
`

func newFakeResolver(t *testing.T) *Resolver {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake is not supported on Windows")
	}

	path := filepath.Join(t.TempDir(), "yt-dlp")
	if err := os.WriteFile(path, []byte(fakeScript), 0o755); err != nil {
		t.Fatalf("failed to write fake yt-dlp: %v", err)
	}
	return New(path)
}

// lineRecorder collects the lines passed to the sink
type lineRecorder struct {
	mu    sync.Mutex
	lines []string
	bytes int
}

func (l *lineRecorder) Bytes(total, remaining int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bytes++
}

func (l *lineRecorder) Line(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, text)
}

func TestNew_DefaultBinary(t *testing.T) {
	r := New("")
	if r.path != DefaultBinary {
		t.Errorf("path = %q, want %q", r.path, DefaultBinary)
	}
	if r.resolveTimeout != DefaultResolveTimeout {
		t.Errorf("resolveTimeout = %v, want %v", r.resolveTimeout, DefaultResolveTimeout)
	}
}

func TestResolver_CheckInstalled(t *testing.T) {
	r := newFakeResolver(t)
	if err := r.CheckInstalled(context.Background()); err != nil {
		t.Errorf("CheckInstalled() error = %v", err)
	}

	missing := New(filepath.Join(t.TempDir(), "does-not-exist"))
	err := missing.CheckInstalled(context.Background())
	if !errors.Is(err, resolver.ErrNotInstalled) {
		t.Errorf("CheckInstalled() error = %v, want ErrNotInstalled", err)
	}
}

func TestResolver_Resolve(t *testing.T) {
	r := newFakeResolver(t)

	info, err := r.Resolve(context.Background(), "https://www.youtube.com/watch?v=abc")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if info.Title != "Fake Clip" {
		t.Errorf("Title = %q", info.Title)
	}
	if len(info.Formats) != 2 {
		t.Fatalf("got %d formats, want 2", len(info.Formats))
	}
	if info.Formats[0].Kind != model.KindVideo || info.Formats[1].Kind != model.KindAudioOnly {
		t.Errorf("unexpected kinds: %+v", info.Formats)
	}
}

func TestResolver_ResolveUnavailable(t *testing.T) {
	r := newFakeResolver(t)

	_, err := r.Resolve(context.Background(), "https://www.youtube.com/watch?v=gone")
	if !errors.Is(err, resolver.ErrUnavailable) {
		t.Fatalf("Resolve() error = %v, want ErrUnavailable", err)
	}
	if !strings.HasPrefix(err.Error(), "ERROR:") {
		t.Errorf("error should carry the ERROR line, got %q", err.Error())
	}
}

func TestResolver_ResolveNotInstalled(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "missing-yt-dlp"))
	_, err := r.Resolve(context.Background(), "https://www.youtube.com/watch?v=abc")
	if !errors.Is(err, resolver.ErrNotInstalled) {
		t.Errorf("Resolve() error = %v, want ErrNotInstalled", err)
	}
}

func TestResolver_Fetch(t *testing.T) {
	r := newFakeResolver(t)
	dir := t.TempDir()
	sink := &lineRecorder{}

	path, err := r.Fetch(context.Background(), resolver.FetchRequest{
		SourceURL:      "https://www.youtube.com/watch?v=abc",
		Encoding:       model.EncodingDescriptor{ID: "18", Kind: model.KindVideo},
		DestinationDir: dir,
	}, sink)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if want := filepath.Join(dir, "Fake Clip.mp4"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if len(sink.lines) != 4 {
		t.Fatalf("got %d lines, want 4: %q", len(sink.lines), sink.lines)
	}
	if sink.lines[2] != "[download]  10.0% of 10.00MiB at 1.00MiB/s ETA 00:09" {
		t.Errorf("lines[2] = %q", sink.lines[2])
	}
	if sink.bytes != 0 {
		t.Errorf("yt-dlp backend should not report byte counts, got %d", sink.bytes)
	}
}

func TestResolver_FetchErrors(t *testing.T) {
	r := newFakeResolver(t)

	tests := []struct {
		name    string
		id      string
		wantIs  error
		wantMsg string
	}{
		{"rate limited", "busy", resolver.ErrRateLimited, "ERROR: HTTP Error 429: Too Many Requests"},
		{"exit code only", "silent", nil, "Download failed with exit code 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Fetch(context.Background(), resolver.FetchRequest{
				SourceURL:      "https://www.youtube.com/watch?v=abc",
				Encoding:       model.EncodingDescriptor{ID: tt.id},
				DestinationDir: t.TempDir(),
			}, &lineRecorder{})
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("error = %v, want %v", err, tt.wantIs)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestResolver_FetchCancelled(t *testing.T) {
	r := newFakeResolver(t)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := r.Fetch(ctx, resolver.FetchRequest{
		SourceURL:      "https://www.youtube.com/watch?v=abc",
		Encoding:       model.EncodingDescriptor{ID: "slow"},
		DestinationDir: t.TempDir(),
	}, &lineRecorder{})
	if err == nil {
		t.Fatal("expected error for cancelled fetch")
	}
	if time.Since(start) > 4*time.Second {
		t.Error("fetch was not interrupted by context cancellation")
	}
}

func TestLastErrorLine(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{"single error", "ERROR: boom", "ERROR: boom"},
		{"last wins", "ERROR: first\nWARNING: w\nERROR: second\n", "ERROR: second"},
		{"no error line", "  something odd happened \n", "something odd happened"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lastErrorLine(tt.output); got != tt.want {
				t.Errorf("lastErrorLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

package native

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kkdai/youtube/v2"

	"github.com/ytget/ytpick/internal/model"
	"github.com/ytget/ytpick/internal/resolver"
)

type fakeClient struct {
	video     *youtube.Video
	videoErr  error
	body      string
	size      int64
	streamErr error
	gotURL    string
}

func (f *fakeClient) GetVideoContext(ctx context.Context, url string) (*youtube.Video, error) {
	f.gotURL = url
	if f.videoErr != nil {
		return nil, f.videoErr
	}
	return f.video, nil
}

func (f *fakeClient) GetStreamContext(ctx context.Context, video *youtube.Video, format *youtube.Format) (io.ReadCloser, int64, error) {
	if f.streamErr != nil {
		return nil, 0, f.streamErr
	}
	return io.NopCloser(strings.NewReader(f.body)), f.size, nil
}

type byteRecorder struct {
	totals    []int64
	remaining []int64
}

func (b *byteRecorder) Bytes(total, remaining int64) {
	b.totals = append(b.totals, total)
	b.remaining = append(b.remaining, remaining)
}

func (b *byteRecorder) Line(string) {}

func sampleVideo() *youtube.Video {
	return &youtube.Video{
		ID:    "abc",
		Title: "Clip: part/1",
		Thumbnails: youtube.Thumbnails{
			{URL: "https://example.com/small.jpg", Width: 120, Height: 90},
			{URL: "https://example.com/large.jpg", Width: 1280, Height: 720},
			{URL: "https://example.com/medium.jpg", Width: 480, Height: 360},
		},
		Formats: youtube.FormatList{
			{ItagNo: 18, MimeType: `video/mp4; codecs="avc1.42001E, mp4a.40.2"`, Height: 360, FPS: 30, AudioChannels: 2, Bitrate: 500000, ContentLength: 11},
			{ItagNo: 137, MimeType: `video/mp4; codecs="avc1.640028"`, Height: 1080, FPS: 30},
			{ItagNo: 140, MimeType: `audio/mp4; codecs="mp4a.40.2"`, AudioChannels: 2, Bitrate: 130000, AverageBitrate: 128000},
			{ItagNo: 251, MimeType: `audio/webm; codecs="opus"`, AudioChannels: 2, Bitrate: 160000},
		},
	}
}

func TestResolver_Resolve(t *testing.T) {
	client := &fakeClient{video: sampleVideo()}
	r := &Resolver{client: client}

	info, err := r.Resolve(context.Background(), "https://www.youtube.com/watch?v=abc")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if info.Title != "Clip: part/1" {
		t.Errorf("Title = %q", info.Title)
	}
	if info.ThumbnailURL != "https://example.com/large.jpg" {
		t.Errorf("ThumbnailURL = %q, want the largest thumbnail", info.ThumbnailURL)
	}

	want := []model.EncodingDescriptor{
		{ID: "18", Kind: model.KindVideo, Container: "mp4", Quality: 360, FPS: 30, Bitrate: 500, Size: 11},
		{ID: "140", Kind: model.KindAudioOnly, Container: "mp4", Quality: 128, Bitrate: 128},
		{ID: "251", Kind: model.KindAudioOnly, Container: "webm", Quality: 160, Bitrate: 160},
	}
	if len(info.Formats) != len(want) {
		t.Fatalf("got %d formats, want %d: %+v", len(info.Formats), len(want), info.Formats)
	}
	for i := range want {
		if info.Formats[i] != want[i] {
			t.Errorf("format[%d] = %+v, want %+v", i, info.Formats[i], want[i])
		}
	}
}

func TestResolver_ResolveErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		wantIs error
	}{
		{"private", youtube.ErrVideoPrivate, resolver.ErrUnavailable},
		{"login required", youtube.ErrLoginRequired, resolver.ErrUnavailable},
		{"rate limited text", errors.New("unexpected status code: 429"), resolver.ErrRateLimited},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Resolver{client: &fakeClient{videoErr: tt.err}}
			_, err := r.Resolve(context.Background(), "https://www.youtube.com/watch?v=abc")
			if !errors.Is(err, tt.wantIs) {
				t.Errorf("error = %v, want %v", err, tt.wantIs)
			}
		})
	}
}

func TestResolver_Fetch(t *testing.T) {
	client := &fakeClient{video: sampleVideo(), body: "hello world", size: 11}
	r := &Resolver{client: client}
	dir := t.TempDir()
	sink := &byteRecorder{}

	path, err := r.Fetch(context.Background(), resolver.FetchRequest{
		SourceURL:      "https://www.youtube.com/watch?v=abc",
		Encoding:       model.EncodingDescriptor{ID: "18"},
		DestinationDir: dir,
	}, sink)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("path %q is not inside %q", path, dir)
	}
	if !strings.HasSuffix(path, ".mp4") {
		t.Errorf("path %q should end with .mp4", path)
	}
	if strings.ContainsAny(filepath.Base(path), `:/`) {
		t.Errorf("file name %q was not sanitized", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "hello world" {
		t.Errorf("content = %q", data)
	}

	if len(sink.remaining) < 2 {
		t.Fatalf("expected at least two byte reports, got %d", len(sink.remaining))
	}
	if sink.remaining[0] != 11 {
		t.Errorf("first report remaining = %d, want 11", sink.remaining[0])
	}
	if last := sink.remaining[len(sink.remaining)-1]; last != 0 {
		t.Errorf("last report remaining = %d, want 0", last)
	}
	for _, total := range sink.totals {
		if total != 11 {
			t.Errorf("total = %d, want 11", total)
		}
	}
}

func TestResolver_FetchFormatNotFound(t *testing.T) {
	r := &Resolver{client: &fakeClient{video: sampleVideo()}}

	for _, id := range []string{"999", "not-a-number"} {
		_, err := r.Fetch(context.Background(), resolver.FetchRequest{
			SourceURL:      "https://www.youtube.com/watch?v=abc",
			Encoding:       model.EncodingDescriptor{ID: id},
			DestinationDir: t.TempDir(),
		}, &byteRecorder{})
		if !errors.Is(err, resolver.ErrFormatNotFound) {
			t.Errorf("id %q: error = %v, want ErrFormatNotFound", id, err)
		}
	}
}

func TestResolver_FetchCancelledRemovesPartialFile(t *testing.T) {
	client := &fakeClient{video: sampleVideo(), body: "hello world", size: 11}
	r := &Resolver{client: client}
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Fetch(ctx, resolver.FetchRequest{
		SourceURL:      "https://www.youtube.com/watch?v=abc",
		Encoding:       model.EncodingDescriptor{ID: "18"},
		DestinationDir: dir,
	}, &byteRecorder{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("partial file left behind: %v", entries)
	}
}

func TestContainerOf(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{`video/mp4; codecs="avc1"`, "mp4"},
		{"audio/webm", "webm"},
		{"video/3gpp", "3gp"},
		{"", DefaultExtension},
		{"garbage", DefaultExtension},
	}
	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			if got := containerOf(tt.mime); got != tt.want {
				t.Errorf("containerOf(%q) = %q, want %q", tt.mime, got, tt.want)
			}
		})
	}
}

func TestBestThumbnail_Empty(t *testing.T) {
	if got := bestThumbnail(nil); got != "" {
		t.Errorf("bestThumbnail(nil) = %q, want empty", got)
	}
}

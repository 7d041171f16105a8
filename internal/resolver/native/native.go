// Package native implements resolver.MediaResolver in pure Go on top of
// github.com/kkdai/youtube/v2. Unlike the yt-dlp backend it reports
// structured byte progress.
package native

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kkdai/youtube/v2"

	"github.com/ytget/ytpick/internal/model"
	"github.com/ytget/ytpick/internal/platform"
	"github.com/ytget/ytpick/internal/resolver"
)

// DefaultExtension is used when a mime type carries no usable subtype
const DefaultExtension = "bin"

// videoClient is the part of youtube.Client used here
type videoClient interface {
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
	GetStreamContext(ctx context.Context, video *youtube.Video, format *youtube.Format) (io.ReadCloser, int64, error)
}

// Resolver resolves and downloads videos without external tools
type Resolver struct {
	client videoClient
}

var _ resolver.MediaResolver = (*Resolver)(nil)

// New creates a resolver backed by a default youtube.Client
func New() *Resolver {
	return &Resolver{client: &youtube.Client{}}
}

// Resolve fetches video metadata and maps its progressive and audio-only formats
func (r *Resolver) Resolve(ctx context.Context, url string) (*model.VideoInfo, error) {
	video, err := r.client.GetVideoContext(ctx, url)
	if err != nil {
		return nil, mapError(err)
	}

	info := &model.VideoInfo{
		Title:        video.Title,
		ThumbnailURL: bestThumbnail(video.Thumbnails),
		Formats:      make([]model.EncodingDescriptor, 0, len(video.Formats)),
	}
	for i := range video.Formats {
		if d, ok := toDescriptor(&video.Formats[i]); ok {
			info.Formats = append(info.Formats, d)
		}
	}
	return info, nil
}

// Fetch downloads the requested itag into <dir>/<title>.<ext>
func (r *Resolver) Fetch(ctx context.Context, req resolver.FetchRequest, sink resolver.ProgressSink) (string, error) {
	video, err := r.client.GetVideoContext(ctx, req.SourceURL)
	if err != nil {
		return "", mapError(err)
	}

	format, err := findFormat(video, req.Encoding.ID)
	if err != nil {
		return "", err
	}

	outputPath := filepath.Join(req.DestinationDir,
		platform.SanitizeFilename(video.Title)+"."+containerOf(format.MimeType))

	stream, size, err := r.client.GetStreamContext(ctx, video, format)
	if err != nil {
		return "", mapError(fmt.Errorf("starting stream: %w", err))
	}
	defer stream.Close()

	if size <= 0 {
		size = format.ContentLength
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("opening output file: %w", err)
	}

	counter := &byteCounter{total: size, sink: sink}
	sink.Bytes(size, size)
	_, copyErr := io.Copy(io.MultiWriter(file, counter), &contextReader{ctx: ctx, r: stream})
	closeErr := file.Close()

	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		if removeErr := os.Remove(outputPath); removeErr != nil {
			log.Printf("native: failed to remove partial file %s: %v", outputPath, removeErr)
		}
		return "", fmt.Errorf("download failed: %w", copyErr)
	}

	log.Printf("native: saved %s (%d bytes)", outputPath, counter.written)
	return outputPath, nil
}

// toDescriptor maps a progressive or audio-only format; everything else is
// skipped
func toDescriptor(f *youtube.Format) (model.EncodingDescriptor, bool) {
	d := model.EncodingDescriptor{
		ID:        strconv.Itoa(f.ItagNo),
		Container: containerOf(f.MimeType),
		Size:      f.ContentLength,
	}

	switch {
	case f.AudioChannels > 0 && f.Height > 0:
		d.Kind = model.KindVideo
		d.Quality = float64(f.Height)
		d.FPS = float64(f.FPS)
		d.Bitrate = kbps(f)
	case strings.HasPrefix(f.MimeType, "audio/"):
		d.Kind = model.KindAudioOnly
		d.Quality = kbps(f)
		d.Bitrate = d.Quality
	default:
		return model.EncodingDescriptor{}, false
	}
	return d, true
}

// kbps prefers the average bitrate, which is what players advertise
func kbps(f *youtube.Format) float64 {
	bitrate := f.AverageBitrate
	if bitrate <= 0 {
		bitrate = f.Bitrate
	}
	return float64(bitrate) / 1000
}

// containerOf turns "video/mp4; codecs=..." into "mp4"
func containerOf(mime string) string {
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	_, subtype, ok := strings.Cut(strings.TrimSpace(mime), "/")
	if !ok || subtype == "" {
		return DefaultExtension
	}
	if subtype == "3gpp" {
		return "3gp"
	}
	return subtype
}

func bestThumbnail(thumbnails youtube.Thumbnails) string {
	var best string
	var bestArea uint
	for _, t := range thumbnails {
		if area := t.Width * t.Height; best == "" || area > bestArea {
			best, bestArea = t.URL, area
		}
	}
	return best
}

func findFormat(video *youtube.Video, id string) (*youtube.Format, error) {
	itag, err := strconv.Atoi(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid itag %q", resolver.ErrFormatNotFound, id)
	}
	for i := range video.Formats {
		if video.Formats[i].ItagNo == itag {
			return &video.Formats[i], nil
		}
	}
	return nil, fmt.Errorf("%w: itag %d", resolver.ErrFormatNotFound, itag)
}

// mapError tags restricted-content errors as unavailable
func mapError(err error) error {
	var statusErr *youtube.ErrPlayabiltyStatus
	switch {
	case errors.Is(err, youtube.ErrVideoPrivate),
		errors.Is(err, youtube.ErrLoginRequired),
		errors.Is(err, youtube.ErrNotPlayableInEmbed),
		errors.As(err, &statusErr):
		return &resolver.ToolError{Message: err.Error(), Kind: resolver.ErrUnavailable}
	}
	return resolver.Classify(err.Error())
}

// byteCounter reports every written chunk as remaining bytes
type byteCounter struct {
	total   int64
	written int64
	sink    resolver.ProgressSink
}

func (c *byteCounter) Write(p []byte) (int, error) {
	c.written += int64(len(p))
	remaining := c.total - c.written
	if remaining < 0 {
		remaining = 0
	}
	c.sink.Bytes(c.total, remaining)
	return len(p), nil
}

// contextReader stops a copy once the context is done
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

package platform

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Thumbnail fetch limits
const (
	DefaultThumbnailTimeout  = 15 * time.Second
	DefaultThumbnailMaxBytes = 5 << 20
)

// ThumbnailFetcher downloads preview images. Failures are expected to be
// handled by showing a placeholder.
type ThumbnailFetcher struct {
	client   *http.Client
	maxBytes int64
}

// NewThumbnailFetcher creates a fetcher with default timeout and size cap
func NewThumbnailFetcher() *ThumbnailFetcher {
	return &ThumbnailFetcher{
		client:   &http.Client{Timeout: DefaultThumbnailTimeout},
		maxBytes: DefaultThumbnailMaxBytes,
	}
}

// Fetch performs a GET of the image URL and returns the body
func (f *ThumbnailFetcher) Fetch(ctx context.Context, imageURL string) ([]byte, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("thumbnail URL is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build thumbnail request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch thumbnail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("thumbnail request returned %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read thumbnail: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("thumbnail exceeds %d bytes", f.maxBytes)
	}
	return data, nil
}

package platform

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestThumbnailFetcher_Fetch(t *testing.T) {
	image := []byte("\x89PNG fake image")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.jpg":
			w.Write(image)
		case "/big.jpg":
			w.Write(bytes.Repeat([]byte("x"), 64))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	fetcher := NewThumbnailFetcher()

	t.Run("success", func(t *testing.T) {
		data, err := fetcher.Fetch(context.Background(), server.URL+"/ok.jpg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(data, image) {
			t.Errorf("unexpected body %q", data)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := fetcher.Fetch(context.Background(), server.URL+"/missing.jpg"); err == nil {
			t.Error("expected error for 404")
		}
	})

	t.Run("empty url", func(t *testing.T) {
		if _, err := fetcher.Fetch(context.Background(), ""); err == nil {
			t.Error("expected error for empty URL")
		}
	})

	t.Run("too large", func(t *testing.T) {
		small := &ThumbnailFetcher{client: server.Client(), maxBytes: 16}
		if _, err := small.Fetch(context.Background(), server.URL+"/big.jpg"); err == nil {
			t.Error("expected error for oversized thumbnail")
		}
	})
}

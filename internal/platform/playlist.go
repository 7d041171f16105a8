package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/ytpick/internal/model"
)

// Timeout constants
const (
	DefaultParseTimeout = 60 * time.Second
)

// Default values
const (
	DefaultPlaylistName = "Unknown Playlist"
	MinPrefixLength     = 10
	PlaylistSuffix      = " Playlist"
)

// Playlist is the expanded content of a playlist URL
type Playlist struct {
	ID      string
	Title   string
	Entries []model.PlaylistEntry
}

// itemsFunc lists the videos of a playlist id
type itemsFunc func(ctx context.Context, playlistID string) ([]model.PlaylistEntry, error)

// PlaylistService expands playlist URLs into their videos using the ytdlp library
type PlaylistService struct {
	timeout time.Duration
	items   itemsFunc
}

// NewPlaylistService creates a new playlist service
func NewPlaylistService() *PlaylistService {
	return &PlaylistService{
		timeout: DefaultParseTimeout,
		items:   libraryItems,
	}
}

// SetTimeout sets the timeout for listing operations
func (p *PlaylistService) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// Expand lists the videos of the playlist referenced by url
func (p *PlaylistService) Expand(ctx context.Context, url string) (*Playlist, error) {
	playlistID := ExtractPlaylistID(url)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", url)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	entries, err := p.items(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	return &Playlist{
		ID:      playlistID,
		Title:   playlistTitle(entries),
		Entries: entries,
	}, nil
}

// libraryItems fetches all playlist items through github.com/ytget/ytdlp/v2
func libraryItems(ctx context.Context, playlistID string) ([]model.PlaylistEntry, error) {
	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}

	entries := make([]model.PlaylistEntry, 0, len(items))
	for _, it := range items {
		if it.VideoID == "" {
			continue
		}
		entries = append(entries, model.PlaylistEntry{
			VideoID: it.VideoID,
			Title:   it.Title,
			URL:     YouTubeVideoURLTemplate + it.VideoID,
		})
	}
	return entries, nil
}

// playlistTitle derives a title from the common prefix of the first two videos
func playlistTitle(entries []model.PlaylistEntry) string {
	if len(entries) == 0 {
		return DefaultPlaylistName
	}
	if len(entries) > 1 {
		prefix := commonPrefix(entries[0].Title, entries[1].Title)
		if len(prefix) > MinPrefixLength {
			return strings.TrimSpace(prefix) + PlaylistSuffix
		}
	}
	return entries[0].Title + PlaylistSuffix
}

// commonPrefix finds the common prefix between two strings
func commonPrefix(s1, s2 string) string {
	n := min(len(s1), len(s2))
	for i := 0; i < n; i++ {
		if s1[i] != s2[i] {
			return s1[:i]
		}
	}
	return s1[:n]
}

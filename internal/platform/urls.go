package platform

import (
	"net/url"
	"regexp"
	"strings"
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v="
)

// Host names
const (
	ShortHost   = "youtu.be"
	WatchPath   = "/watch"
	ShortsPath  = "/shorts/"
	VideoIDKey  = "v"
	httpsPrefix = "https://"
)

var videoURLPattern = regexp.MustCompile(`^(https?://)?(www\.|m\.)?(youtube\.com/watch\?(\S*&)?v=|youtu\.be/|youtube\.com/shorts/)[\w-]+`)

// IsVideoURL reports whether url looks like a single-video link
func IsVideoURL(raw string) bool {
	return videoURLPattern.MatchString(strings.TrimSpace(raw))
}

// ExtractVideoID returns the video id from watch, short-link and shorts URLs
func ExtractVideoID(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = httpsPrefix + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	host := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(u.Host), "www."), "m.")
	switch {
	case host == ShortHost:
		return firstSegment(strings.TrimPrefix(u.Path, "/"))
	case strings.HasPrefix(u.Path, WatchPath):
		return u.Query().Get(VideoIDKey)
	case strings.HasPrefix(u.Path, ShortsPath):
		return firstSegment(strings.TrimPrefix(u.Path, ShortsPath))
	}
	return ""
}

// CleanVideoURL strips tracking and playlist parameters and returns the
// canonical watch URL. Unrecognized URLs are returned unchanged.
func CleanVideoURL(raw string) string {
	if id := ExtractVideoID(raw); id != "" {
		return YouTubeVideoURLTemplate + id
	}
	return strings.TrimSpace(raw)
}

// IsPlaylistURL reports whether the URL carries a playlist id
func IsPlaylistURL(raw string) bool {
	return ExtractPlaylistID(raw) != ""
}

// ExtractPlaylistID extracts the playlist id from a watch or playlist URL
func ExtractPlaylistID(raw string) string {
	parts := strings.SplitN(raw, PlaylistParam, 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.Split(parts[1], ParamSeparator)[0]
}

func firstSegment(path string) string {
	if i := strings.IndexAny(path, "/?"); i >= 0 {
		return path[:i]
	}
	return path
}

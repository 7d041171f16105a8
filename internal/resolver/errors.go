package resolver

import (
	"errors"
	"strings"
)

// Sentinel errors reported by resolver backends
var (
	ErrUnavailable    = errors.New("resolver: video unavailable")
	ErrRateLimited    = errors.New("resolver: rate limited")
	ErrNotInstalled   = errors.New("resolver: yt-dlp not installed")
	ErrFormatNotFound = errors.New("resolver: format not found")
)

// User facing messages for known failures
const (
	UnavailableMessage  = "This video is unavailable. It might be private, age-restricted, or removed."
	RateLimitedMessage  = "HTTP Error 429: Too Many Requests. Please try again later."
	NotInstalledMessage = "yt-dlp is not installed. Please install it manually using: pip install yt-dlp"
)

// Substrings the backends are known to emit
var (
	unavailableMarkers = []string{"unavailable", "Private video", "has been removed"}
	rateLimitMarkers   = []string{"429", "Too Many Requests"}
)

// ToolError carries the raw message of a failed external operation together
// with the sentinel it was classified as, if any.
type ToolError struct {
	Message string
	Kind    error
}

func (e *ToolError) Error() string {
	return e.Message
}

func (e *ToolError) Unwrap() error {
	return e.Kind
}

// Classify wraps a raw failure message, tagging it with a sentinel when the
// text contains a known marker.
func Classify(message string) error {
	message = strings.TrimSpace(message)
	return &ToolError{Message: message, Kind: kindOf(message)}
}

func kindOf(message string) error {
	for _, marker := range rateLimitMarkers {
		if strings.Contains(message, marker) {
			return ErrRateLimited
		}
	}
	for _, marker := range unavailableMarkers {
		if strings.Contains(message, marker) {
			return ErrUnavailable
		}
	}
	return nil
}

// FriendlyMessage renders an error for display. Known failures get a fixed
// explanation; anything else is passed through unchanged.
func FriendlyMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRateLimited):
		return RateLimitedMessage
	case errors.Is(err, ErrUnavailable):
		return UnavailableMessage
	case errors.Is(err, ErrNotInstalled):
		return NotInstalledMessage
	}
	if kind := kindOf(err.Error()); kind != nil {
		return FriendlyMessage(kind)
	}
	return err.Error()
}

// Package progress normalizes download progress reported either as byte
// counts or as free-form text lines into a single monotonic percentage.
package progress

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Status message formats
const (
	DownloadingFormat = "Downloading: %.1f%%"
	CompleteMessage   = "Download complete!"
	DetailFormat      = "%s of %s"
)

// Update is a normalized progress report
type Update struct {
	Percent float64 // 0 to 100
	Message string  // human readable status
	Detail  string  // byte counts when known
}

// Tracker accumulates progress for a single job. It is not safe for concurrent
// use; each job's worker owns its tracker.
type Tracker struct {
	percent float64
	detail  string
}

// NewTracker creates a tracker starting at 0%
func NewTracker() *Tracker {
	return &Tracker{}
}

// Percent returns the last reported percentage
func (t *Tracker) Percent() float64 {
	return t.percent
}

// Bytes records a structured callback carrying the total size and the bytes
// still to be transferred. A zero total reports 0%.
func (t *Tracker) Bytes(total, remaining int64) Update {
	percent := 0.0
	if total > 0 {
		if remaining < 0 {
			remaining = 0
		}
		downloaded := total - remaining
		percent = 100 * float64(downloaded) / float64(total)
		t.detail = fmt.Sprintf(DetailFormat, humanize.Bytes(uint64(max(downloaded, 0))), humanize.Bytes(uint64(total)))
	}
	return t.advance(percent)
}

// Line records a text line from an external tool. Lines without a parsable
// percentage are ignored and ok is false.
func (t *Tracker) Line(line string) (Update, bool) {
	percent, ok := ParsePercent(line)
	if !ok {
		return Update{}, false
	}
	return t.advance(percent), true
}

// Complete forces the percentage to exactly 100
func (t *Tracker) Complete() Update {
	t.percent = 100
	return Update{Percent: 100, Message: CompleteMessage, Detail: t.detail}
}

// advance never lets the reported value go down
func (t *Tracker) advance(percent float64) Update {
	percent = clamp(percent)
	if percent > t.percent {
		t.percent = percent
	}
	return Update{
		Percent: t.percent,
		Message: StatusMessage(t.percent),
		Detail:  t.detail,
	}
}

// StatusMessage formats the status line shown next to the progress bar
func StatusMessage(percent float64) string {
	return fmt.Sprintf(DownloadingFormat, percent)
}

func clamp(percent float64) float64 {
	if math.IsNaN(percent) || percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

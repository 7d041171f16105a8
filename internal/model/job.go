package model

import (
	"strings"
	"time"
)

// DownloadJob describes one download operation. The orchestrator owns the live
// value; listeners only ever receive copies.
type DownloadJob struct {
	ID             string
	SourceURL      string
	Title          string
	Entry          CatalogEntry
	DestinationDir string
	State          JobState
	Percent        float64   // 0 to 100, never decreases while running
	LastMessage    string    // status or error text for display
	Detail         string    // optional byte counts, e.g. "12 MB of 30 MB"
	OutputPath     string    // path to downloaded file on success
	StartedAt      time.Time // when the transfer started
	FinishedAt     time.Time // when the job reached a terminal state
}

// Progress returns Percent scaled to 0.0..1.0 for progress widgets
func (j DownloadJob) Progress() float64 {
	return j.Percent / 100
}

// DisplayTitle returns title, filename, or URL in order of preference
func (j DownloadJob) DisplayTitle() string {
	if j.Title != "" && !strings.HasPrefix(j.Title, "http") {
		return j.Title
	}

	if j.OutputPath != "" {
		// support both / and \ separators
		parts := strings.FieldsFunc(j.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}

	return j.SourceURL
}

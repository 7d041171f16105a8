// Package catalog turns the raw encodings returned by a resolver into an
// ordered, labeled list the user can choose from, and maps a chosen label back
// to the exact descriptor needed to start a fetch.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ytget/ytpick/internal/model"
)

// Label fragments
const (
	UnknownValue     = "unknown"
	UnknownContainer = "UNKNOWN"
	AudioLabelPrefix = "Audio"
)

// ErrNotFound is returned when a label is absent from the catalog
var ErrNotFound = errors.New("catalog: selection not found")

// Catalog is an immutable, ordered set of labeled encodings
type Catalog struct {
	entries []model.CatalogEntry
	index   map[string]int
}

// Build creates a catalog from raw resolver output. Video entries come first,
// ordered by height descending, followed by audio entries ordered by bitrate
// descending. Entries with an unknown rank go last in their group and ties keep
// the resolver order. The input slice is not modified.
func Build(raw []model.EncodingDescriptor) *Catalog {
	seen := make(map[string]bool, len(raw))
	video := make([]model.EncodingDescriptor, 0, len(raw))
	audio := make([]model.EncodingDescriptor, 0, len(raw))

	for _, d := range raw {
		if d.ID != "" {
			if seen[d.ID] {
				continue
			}
			seen[d.ID] = true
		}
		switch d.Kind {
		case model.KindVideo:
			video = append(video, d)
		case model.KindAudioOnly:
			audio = append(audio, d)
		}
	}

	sortByQuality(video)
	sortByQuality(audio)

	c := &Catalog{
		entries: make([]model.CatalogEntry, 0, len(video)+len(audio)),
		index:   make(map[string]int, len(video)+len(audio)),
	}
	for _, group := range [][]model.EncodingDescriptor{video, audio} {
		for _, d := range group {
			label := c.uniqueLabel(FormatLabel(d), d)
			c.index[label] = len(c.entries)
			c.entries = append(c.entries, model.CatalogEntry{Label: label, Descriptor: d})
		}
	}
	return c
}

// sortByQuality orders descending by Quality with unknown values last
func sortByQuality(ds []model.EncodingDescriptor) {
	sort.SliceStable(ds, func(i, j int) bool {
		a, b := ds[i], ds[j]
		if a.HasQuality() != b.HasQuality() {
			return a.HasQuality()
		}
		return a.Quality > b.Quality
	})
}

// FormatLabel renders the display label for a descriptor without collision handling
func FormatLabel(d model.EncodingDescriptor) string {
	container := strings.ToUpper(d.Container)
	if container == "" {
		container = UnknownContainer
	}

	if d.Kind == model.KindAudioOnly {
		return fmt.Sprintf("%s %skbps (%s)", AudioLabelPrefix, formatRank(d), container)
	}

	var b strings.Builder
	b.WriteString(formatRank(d))
	b.WriteString("p")
	if d.FPS > 0 {
		fmt.Fprintf(&b, ", %gfps", d.FPS)
	}
	fmt.Fprintf(&b, " (%s)", container)
	return b.String()
}

func formatRank(d model.EncodingDescriptor) string {
	if !d.HasQuality() {
		return UnknownValue
	}
	return fmt.Sprintf("%.0f", d.Quality)
}

// uniqueLabel disambiguates a colliding label by appending the bitrate, then
// the encoding id, then a counter.
func (c *Catalog) uniqueLabel(label string, d model.EncodingDescriptor) string {
	if _, taken := c.index[label]; !taken {
		return label
	}

	var candidates []string
	if d.Kind == model.KindVideo && d.Bitrate > 0 {
		candidates = append(candidates, fmt.Sprintf("%s %.0fkbps", label, d.Bitrate))
	}
	if d.ID != "" {
		candidates = append(candidates, fmt.Sprintf("%s [id %s]", label, d.ID))
	}
	for _, candidate := range candidates {
		if _, taken := c.index[candidate]; !taken {
			return candidate
		}
	}

	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s #%d", label, n)
		if _, taken := c.index[candidate]; !taken {
			return candidate
		}
	}
}

// Entries returns a copy of the ordered entries
func (c *Catalog) Entries() []model.CatalogEntry {
	if c == nil {
		return nil
	}
	out := make([]model.CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Labels returns the labels in display order
func (c *Catalog) Labels() []string {
	if c == nil {
		return nil
	}
	labels := make([]string, len(c.entries))
	for i, entry := range c.entries {
		labels[i] = entry.Label
	}
	return labels
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

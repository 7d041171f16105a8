package model

// VideoSession is the result of a successful search. A new search replaces the
// whole session; fields are never updated in place.
type VideoSession struct {
	SourceURL    string
	Title        string
	ThumbnailURL string
	Catalog      []CatalogEntry
}

// Labels returns the catalog labels in display order
func (s *VideoSession) Labels() []string {
	if s == nil {
		return nil
	}
	labels := make([]string, len(s.Catalog))
	for i, entry := range s.Catalog {
		labels[i] = entry.Label
	}
	return labels
}

// PlaylistEntry is a single video listed in a playlist
type PlaylistEntry struct {
	VideoID string
	Title   string
	URL     string
}

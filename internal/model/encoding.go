package model

// EncodingKind distinguishes progressive video from audio-only encodings
type EncodingKind string

const (
	// KindVideo is a progressive stream carrying both video and audio
	KindVideo EncodingKind = "video"

	// KindAudioOnly is a stream carrying audio only
	KindAudioOnly EncodingKind = "audio"
)

// EncodingDescriptor is one downloadable encoding offered for a video.
// Values are produced by a resolver and never modified afterwards.
type EncodingDescriptor struct {
	ID        string       // resolver-specific format id (yt-dlp format_id or itag)
	Kind      EncodingKind // video or audio-only
	Container string       // file extension, e.g. "mp4", "webm", "m4a"
	Quality   float64      // height in pixels for video, kbps for audio; 0 if unknown
	FPS       float64      // frame rate for video; 0 if unknown
	Bitrate   float64      // total bitrate in kbps; 0 if unknown
	Size      int64        // expected size in bytes; 0 if unknown
}

// HasQuality reports whether the ranking attribute is known
func (d EncodingDescriptor) HasQuality() bool {
	return d.Quality > 0
}

// CatalogEntry pairs a human readable label with the descriptor it selects
type CatalogEntry struct {
	Label      string
	Descriptor EncodingDescriptor
}

// VideoInfo is the raw result of resolving a URL
type VideoInfo struct {
	Title        string
	ThumbnailURL string
	Formats      []EncodingDescriptor
}

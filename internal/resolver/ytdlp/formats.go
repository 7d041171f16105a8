package ytdlp

import (
	"encoding/json"
	"fmt"

	"github.com/ytget/ytpick/internal/model"
)

// codecNone is what yt-dlp reports for an absent stream
const codecNone = "none"

// videoJSON is the subset of "yt-dlp -J" output used here
type videoJSON struct {
	Title     string       `json:"title"`
	Thumbnail string       `json:"thumbnail"`
	Formats   []formatJSON `json:"formats"`
}

type formatJSON struct {
	FormatID       string  `json:"format_id"`
	Ext            string  `json:"ext"`
	VCodec         string  `json:"vcodec"`
	ACodec         string  `json:"acodec"`
	Height         float64 `json:"height"`
	FPS            float64 `json:"fps"`
	ABR            float64 `json:"abr"`
	TBR            float64 `json:"tbr"`
	Filesize       int64   `json:"filesize"`
	FilesizeApprox float64 `json:"filesize_approx"`
}

// ParseInfo decodes "yt-dlp -J" output. Progressive formats become video
// descriptors and audio-only formats become audio descriptors; video-only and
// storyboard formats are dropped.
func ParseInfo(data []byte) (*model.VideoInfo, error) {
	var raw videoJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse video metadata: %w", err)
	}

	info := &model.VideoInfo{
		Title:        raw.Title,
		ThumbnailURL: raw.Thumbnail,
		Formats:      make([]model.EncodingDescriptor, 0, len(raw.Formats)),
	}
	for _, f := range raw.Formats {
		if d, ok := toDescriptor(f); ok {
			info.Formats = append(info.Formats, d)
		}
	}
	return info, nil
}

func toDescriptor(f formatJSON) (model.EncodingDescriptor, bool) {
	hasVideo := f.VCodec != "" && f.VCodec != codecNone
	hasAudio := f.ACodec != "" && f.ACodec != codecNone

	size := f.Filesize
	if size == 0 {
		size = int64(f.FilesizeApprox)
	}

	switch {
	case hasVideo && hasAudio:
		return model.EncodingDescriptor{
			ID:        f.FormatID,
			Kind:      model.KindVideo,
			Container: f.Ext,
			Quality:   f.Height,
			FPS:       f.FPS,
			Bitrate:   f.TBR,
			Size:      size,
		}, true
	case hasAudio:
		return model.EncodingDescriptor{
			ID:        f.FormatID,
			Kind:      model.KindAudioOnly,
			Container: f.Ext,
			Quality:   f.ABR,
			Bitrate:   f.ABR,
			Size:      size,
		}, true
	}
	return model.EncodingDescriptor{}, false
}

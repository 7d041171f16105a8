package progress

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ParsePercent extracts the percentage from a progress line such as
// "[download]  42.5% of 10.00MiB at 1.00MiB/s ETA 00:05". The token directly
// before the first '%' must be separated by whitespace and parse as a float.
func ParsePercent(line string) (float64, bool) {
	idx := strings.Index(line, "%")
	if idx < 0 {
		return 0, false
	}

	fields := strings.Fields(line[:idx])
	if len(fields) == 0 {
		return 0, false
	}

	value, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return clamp(value), true
}

// yt-dlp lines that announce where the artifact is written
var (
	reDestination = regexp.MustCompile(`^\[download\]\s+Destination:\s+(.+)$`)
	reAlreadyDone = regexp.MustCompile(`^\[download\]\s+(.+?)\s+has already been downloaded`)
	reMerger      = regexp.MustCompile(`^\[Merger\]\s+Merging formats into "(.+)"`)
	reExtract     = regexp.MustCompile(`^\[ExtractAudio\]\s+Destination:\s+(.+)$`)
)

// ParseDestination extracts the output file path announced by yt-dlp
func ParseDestination(line string) (string, bool) {
	line = strings.TrimSpace(line)
	for _, re := range []*regexp.Regexp{reMerger, reExtract, reDestination, reAlreadyDone} {
		if m := re.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// Package media acquires and prepares audio for the pipeline: trimming a
// local file to a bounded time range with ffmpeg and downloading YouTube
// audio with yt-dlp. It never decodes audio itself.
package media

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/deduu/Youtube-audio-transcription/errors"
)

// clockPattern accepts HH:MM:SS, MM:SS and M:SS, with an optional
// millisecond suffix of up to three digits.
var clockPattern = regexp.MustCompile(`^([0-9]{1,2}:)?[0-5]?[0-9]:[0-5][0-9](\.[0-9]{1,3})?$`)

// TimeRange bounds the portion of audio to process, in seconds.
// End == 0 means "to the end of the stream".
type TimeRange struct {
	Start float64
	End   float64
}

// ParseRange parses start and end clock strings into a TimeRange.
// An empty end means no upper bound. A non-empty end must be after start.
func ParseRange(start, end string) (TimeRange, error) {
	var tr TimeRange
	var err error

	if start != "" {
		tr.Start, err = ParseClock(start)
		if err != nil {
			return TimeRange{}, err
		}
	}
	if end != "" {
		tr.End, err = ParseClock(end)
		if err != nil {
			return TimeRange{}, err
		}
		if tr.End <= tr.Start {
			return TimeRange{}, errors.InvalidInput("end_time", "end time must be after start time")
		}
	}
	return tr, nil
}

// ParseClock converts a clock string (HH:MM:SS, MM:SS or M:SS, optional
// .mmm suffix) to seconds.
func ParseClock(clock string) (float64, error) {
	if !clockPattern.MatchString(clock) {
		return 0, errors.InvalidFormat("time", "HH:MM:SS or MM:SS")
	}

	ms := 0.0
	timePart := clock
	if idx := strings.Index(clock, "."); idx >= 0 {
		timePart = clock[:idx]
		frac, err := strconv.ParseFloat("0"+clock[idx:], 64)
		if err != nil {
			return 0, errors.InvalidFormat("time", "HH:MM:SS or MM:SS")
		}
		ms = frac
	}

	parts := strings.Split(timePart, ":")
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, errors.InvalidFormat("time", "HH:MM:SS or MM:SS")
		}
		total = total*60 + n
	}
	return float64(total) + ms, nil
}

// FormatClock converts seconds to an HH:MM:SS.mmm clock string, the form
// ffmpeg accepts for -ss/-to.
func FormatClock(seconds float64) string {
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := seconds - float64(hours*3600+minutes*60)
	return fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, secs)
}

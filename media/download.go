package media

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/deduu/Youtube-audio-transcription/errors"
	"github.com/deduu/Youtube-audio-transcription/process"
)

const ytdlpBinary = "yt-dlp"

// IsRemote reports whether source is a URL rather than a local path.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "https://") || strings.HasPrefix(source, "http://")
}

// Download fetches the audio track of a YouTube video as WAV into
// outputPath using yt-dlp.
func Download(ctx context.Context, url, outputPath string) error {
	if !IsRemote(url) {
		return apperrors.InvalidInput("url", "expected an http(s) URL")
	}

	args := []string{
		"--extract-audio",
		"--audio-format", "wav",
		"--output", outputPath,
		"--no-playlist",
		url,
	}

	res, err := process.Run(ctx, process.Command{Binary: ytdlpBinary, Args: args})
	if err != nil {
		if res != nil && len(res.Stderr) > 0 {
			err = fmt.Errorf("%w: %s", err, string(res.Stderr))
		}
		return apperrors.External(ytdlpBinary, err)
	}
	return nil
}

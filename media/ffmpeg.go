package media

import (
	"context"
	"fmt"

	apperrors "github.com/deduu/Youtube-audio-transcription/errors"
	"github.com/deduu/Youtube-audio-transcription/process"
)

const ffmpegBinary = "ffmpeg"

// FFmpegAvailable reports whether ffmpeg can be resolved via PATH.
func FFmpegAvailable() bool {
	return process.Available(ffmpegBinary)
}

// Trim extracts the given time range from inputPath into outputPath as
// mono 16 kHz WAV, the input format both model sidecars expect.
func Trim(ctx context.Context, inputPath, outputPath string, tr TimeRange) error {
	args := []string{"-y", "-i", inputPath, "-ss", FormatClock(tr.Start)}
	if tr.End > 0 {
		args = append(args, "-to", FormatClock(tr.End))
	}
	args = append(args, "-ac", "1", "-ar", "16000", "-f", "wav", outputPath)

	res, err := process.Run(ctx, process.Command{Binary: ffmpegBinary, Args: args})
	if err != nil {
		if res != nil && len(res.Stderr) > 0 {
			err = fmt.Errorf("%w: %s", err, string(res.Stderr))
		}
		return apperrors.External(ffmpegBinary, err)
	}
	return nil
}

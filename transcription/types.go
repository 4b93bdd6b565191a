package transcription

import "github.com/deduu/Youtube-audio-transcription/interval"

// Model sizes accepted by the Whisper backend, smallest to largest.
var ModelSizes = []string{"tiny", "base", "small", "medium", "large"}

// IsValidModel reports whether name is a recognized Whisper model size.
func IsValidModel(name string) bool {
	for _, m := range ModelSizes {
		if m == name {
			return true
		}
	}
	return false
}

// Request holds parameters for a transcription call.
type Request struct {
	// AudioPath is the path to the audio file to transcribe.
	AudioPath string `json:"audio_path"`
	// Model is the transcription model size to use (see ModelSizes).
	Model string `json:"model,omitempty"`
	// Language is the expected language of the audio (e.g. "en").
	Language string `json:"language,omitempty"`
}

// Result holds the outcome of a transcription call. It is immutable input
// for the aligner: consumers must not modify or retain it.
type Result struct {
	// Text is the full transcription text.
	Text string `json:"text"`
	// Segments contains time-aligned transcript segments sorted by start.
	Segments []Segment `json:"segments,omitempty"`
	// Duration is the audio duration in seconds.
	Duration float64 `json:"duration,omitempty"`
	// Language is the detected or specified language.
	Language string `json:"language,omitempty"`
}

// Segment represents a time-aligned portion of a transcript.
type Segment struct {
	// Start is the segment start time in seconds.
	Start float64 `json:"start"`
	// End is the segment end time in seconds.
	End float64 `json:"end"`
	// Text is the transcribed text for this segment.
	Text string `json:"text"`
	// Confidence is the model's confidence in [0,1], 0 when not reported.
	Confidence float64 `json:"confidence,omitempty"`
}

// Span returns the segment's time span as a half-open interval.
func (s Segment) Span() interval.Interval {
	return interval.New(s.Start, s.End)
}

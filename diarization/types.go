package diarization

import "github.com/deduu/Youtube-audio-transcription/interval"

// Request holds parameters for a diarization call.
type Request struct {
	// AudioPath is the path to the audio file to diarize.
	AudioPath string `json:"audio_path"`
	// NumSpeakers is the exact number of speakers (0 = auto-detect).
	NumSpeakers int `json:"num_speakers,omitempty"`
	// MinSpeakers is the minimum expected number of speakers.
	MinSpeakers int `json:"min_speakers,omitempty"`
	// MaxSpeakers is the maximum expected number of speakers.
	MaxSpeakers int `json:"max_speakers,omitempty"`
}

// Result holds the outcome of a diarization call. It is immutable input
// for the aligner: consumers must not modify or retain it.
type Result struct {
	// Turns contains speaker-attributed time spans sorted by start time.
	Turns []Turn `json:"turns"`
	// NumSpeakers is the number of distinct speakers detected.
	NumSpeakers int `json:"num_speakers"`
}

// Turn attributes a time span to a single speaker.
type Turn struct {
	// Speaker is the diarization label, e.g. "SPEAKER_00".
	Speaker string `json:"speaker"`
	// Start is the turn start time in seconds.
	Start float64 `json:"start"`
	// End is the turn end time in seconds.
	End float64 `json:"end"`
}

// Span returns the turn's time span as a half-open interval.
func (t Turn) Span() interval.Interval {
	return interval.New(t.Start, t.End)
}

package format

import (
	"testing"

	"github.com/deduu/Youtube-audio-transcription/align"
)

var sample = []align.Utterance{
	{Speaker: "SPEAKER_00", Start: 0.03, End: 3.61, Text: "At some point..."},
	{Speaker: "SPEAKER_02", Start: 3.61, End: 5.75, Text: "What is the vision..."},
}

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		u    align.Utterance
		want string
	}{
		{
			"sample first line",
			sample[0],
			"SPEAKER_00 (0.03s - 3.61s): At some point...",
		},
		{
			"rounding to two decimals",
			align.Utterance{Speaker: "SPEAKER_01", Start: 1.005, End: 2.999, Text: "hi"},
			"SPEAKER_01 (1.00s - 3.00s): hi",
		},
		{
			"unknown speaker",
			align.Utterance{Speaker: align.UnknownSpeaker, Start: 0, End: 1, Text: "??"},
			"UNKNOWN (0.00s - 1.00s): ??",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Line(tc.u); got != tc.want {
				t.Errorf("Line = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTranscript(t *testing.T) {
	want := "SPEAKER_00 (0.03s - 3.61s): At some point...\n\n" +
		"SPEAKER_02 (3.61s - 5.75s): What is the vision..."
	if got := Transcript(sample); got != want {
		t.Errorf("Transcript = %q, want %q", got, want)
	}
	if got := Transcript(nil); got != "" {
		t.Errorf("empty transcript should be empty string, got %q", got)
	}
}

func TestBatchRecord(t *testing.T) {
	got := BatchRecord("audio/meeting.wav", sample)
	want := "audio/meeting.wav|At some point... What is the vision..."
	if got != want {
		t.Errorf("BatchRecord = %q, want %q", got, want)
	}
}

func TestConversation(t *testing.T) {
	got := Conversation(sample)
	want := "SPEAKER_00: At some point...\nSPEAKER_02: What is the vision..."
	if got != want {
		t.Errorf("Conversation = %q, want %q", got, want)
	}
}

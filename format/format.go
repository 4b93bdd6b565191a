// Package format renders aligned utterances into the output shapes the
// CLI and API persist or display: per-utterance display lines, a full
// transcript document, pipe-delimited batch records, and the plain
// conversation view fed to the LLM as context.
package format

import (
	"fmt"
	"strings"

	"github.com/deduu/Youtube-audio-transcription/align"
)

// Line renders a single utterance as a display line:
//
//	SPEAKER_00 (0.03s - 3.61s): At some point...
//
// Seconds are formatted to two decimal places.
func Line(u align.Utterance) string {
	return fmt.Sprintf("%s (%.2fs - %.2fs): %s", u.Speaker, u.Start, u.End, u.Text)
}

// Transcript renders the full utterance sequence as a downloadable
// document, one display line per utterance separated by blank lines.
func Transcript(utterances []align.Utterance) string {
	lines := make([]string, len(utterances))
	for i, u := range utterances {
		lines[i] = Line(u)
	}
	return strings.Join(lines, "\n\n")
}

// BatchRecord renders a flat pipe-delimited record for file-listing mode:
//
//	<audio_path>|<concatenated_transcript_text>
func BatchRecord(source string, utterances []align.Utterance) string {
	texts := make([]string, len(utterances))
	for i, u := range utterances {
		texts[i] = u.Text
	}
	return source + "|" + strings.Join(texts, " ")
}

// Conversation renders the utterance sequence as plain speaker-prefixed
// lines, the shape used as LLM context:
//
//	SPEAKER_00: At some point...
//	SPEAKER_02: What is the vision...
func Conversation(utterances []align.Utterance) string {
	lines := make([]string, len(utterances))
	for i, u := range utterances {
		lines[i] = u.Speaker + ": " + u.Text
	}
	return strings.Join(lines, "\n")
}

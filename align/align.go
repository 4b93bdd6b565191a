package align

import (
	"fmt"

	"github.com/deduu/Youtube-audio-transcription/diarization"
	"github.com/deduu/Youtube-audio-transcription/errors"
	"github.com/deduu/Youtube-audio-transcription/interval"
	"github.com/deduu/Youtube-audio-transcription/transcription"
)

// UnknownSpeaker labels transcript text for which no speaker turn is
// active. Text is never dropped for lack of a speaker label.
const UnknownSpeaker = "UNKNOWN"

// Utterance is a contiguous, speaker-attributed span of transcript text.
// Utterance sequences are strictly ordered by Start, ties broken by the
// original transcript-segment order.
type Utterance struct {
	Speaker string  `json:"speaker"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
}

// Span returns the utterance's time span as a half-open interval.
func (u Utterance) Span() interval.Interval {
	return interval.New(u.Start, u.End)
}

// Align maps each transcription segment to the speaker active during its
// interval and emits one ordered utterance sequence.
//
// Assignment is whole-segment: when a segment overlaps several turns the
// speaker with the greatest overlap duration wins all of its text
// (dominant-duration policy), with ties going to the earliest turn.
// Splitting text at the speaker boundary would need word-level timestamps,
// which this layer does not have.
//
// Both inputs must be sorted by start time and contain only
// positive-duration intervals; anything else returns an INVALID_INPUT
// error. Empty inputs are not errors: no turns labels everything
// UnknownSpeaker, no segments produces an empty output.
func Align(turns []diarization.Turn, segments []transcription.Segment) ([]Utterance, error) {
	if err := validateTurns(turns); err != nil {
		return nil, err
	}
	if err := validateSegments(segments); err != nil {
		return nil, err
	}

	utterances := make([]Utterance, 0, len(segments))
	for _, seg := range segments {
		utterances = append(utterances, Utterance{
			Speaker: dominantSpeaker(seg.Span(), turns),
			Start:   seg.Start,
			End:     seg.End,
			Text:    seg.Text,
		})
	}

	return Merge(utterances), nil
}

// Merge collapses consecutive utterances that share a speaker and whose
// intervals abut within the epsilon tolerance into single multi-sentence
// utterances, joining text with a single space. Merge is idempotent:
// applying it to already-merged output changes nothing.
func Merge(utterances []Utterance) []Utterance {
	if len(utterances) == 0 {
		return []Utterance{}
	}

	merged := make([]Utterance, 0, len(utterances))
	current := utterances[0]
	for _, next := range utterances[1:] {
		if next.Speaker == current.Speaker && current.Span().AbutsWithin(next.Span(), interval.Epsilon) {
			current.Text = current.Text + " " + next.Text
			span := current.Span().Union(next.Span())
			current.Start, current.End = span.Start, span.End
			continue
		}
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)
	return merged
}

// dominantSpeaker returns the speaker whose turn overlaps span longest.
// Turns are scanned in input order, which is start order, so a strict
// comparison resolves exact duration ties to the earliest turn.
func dominantSpeaker(span interval.Interval, turns []diarization.Turn) string {
	speaker := UnknownSpeaker
	bestDur := -1.0
	for _, turn := range turns {
		ts := turn.Span()
		if ts.Start >= span.End+interval.Epsilon {
			break // turns are sorted, nothing later can be near
		}
		if !span.Near(ts) {
			continue
		}
		if d := span.OverlapDuration(ts); d > bestDur {
			bestDur = d
			speaker = turn.Speaker
		}
	}
	return speaker
}

func validateTurns(turns []diarization.Turn) error {
	prev := -1.0
	for i, turn := range turns {
		if !turn.Span().Valid() {
			return errors.InvalidInput("turns",
				fmt.Sprintf("turn %d (%s) has a non-positive interval [%g, %g)", i, turn.Speaker, turn.Start, turn.End))
		}
		if turn.Start < prev {
			return errors.InvalidInput("turns",
				fmt.Sprintf("turn %d starts at %g, before the preceding turn at %g", i, turn.Start, prev))
		}
		prev = turn.Start
	}
	return nil
}

func validateSegments(segments []transcription.Segment) error {
	prev := -1.0
	for i, seg := range segments {
		if !seg.Span().Valid() {
			return errors.InvalidInput("segments",
				fmt.Sprintf("segment %d has a non-positive interval [%g, %g)", i, seg.Start, seg.End))
		}
		if seg.Start < prev {
			return errors.InvalidInput("segments",
				fmt.Sprintf("segment %d starts at %g, before the preceding segment at %g", i, seg.Start, prev))
		}
		prev = seg.Start
	}
	return nil
}

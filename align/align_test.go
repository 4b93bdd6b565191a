package align

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/deduu/Youtube-audio-transcription/diarization"
	apperrors "github.com/deduu/Youtube-audio-transcription/errors"
	"github.com/deduu/Youtube-audio-transcription/transcription"
)

func turn(speaker string, start, end float64) diarization.Turn {
	return diarization.Turn{Speaker: speaker, Start: start, End: end}
}

func segment(text string, start, end float64) transcription.Segment {
	return transcription.Segment{Text: text, Start: start, End: end}
}

func TestAlign_FullContainment(t *testing.T) {
	// The common case: one turn fully contains the segment.
	turns := []diarization.Turn{turn("SPEAKER_00", 0, 5)}
	segments := []transcription.Segment{segment("hello there", 1, 3)}

	got, err := Align(turns, segments)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	want := []Utterance{{Speaker: "SPEAKER_00", Start: 1, End: 3, Text: "hello there"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Align = %+v, want %+v", got, want)
	}
}

func TestAlign_NoSpeakerFallback(t *testing.T) {
	turns := []diarization.Turn{turn("SPEAKER_00", 0, 1)}
	segments := []transcription.Segment{segment("orphaned text", 10, 12)}

	got, err := Align(turns, segments)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	if len(got) != 1 || got[0].Speaker != UnknownSpeaker {
		t.Fatalf("expected UNKNOWN utterance, got %+v", got)
	}
	if got[0].Text != "orphaned text" {
		t.Errorf("text must never be dropped, got %q", got[0].Text)
	}
}

func TestAlign_EmptyDiarization(t *testing.T) {
	segments := []transcription.Segment{
		segment("first", 0, 1),
		segment("second", 5, 6),
	}
	got, err := Align(nil, segments)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	for _, u := range got {
		if u.Speaker != UnknownSpeaker {
			t.Errorf("expected UNKNOWN for all segments, got %+v", u)
		}
	}
}

func TestAlign_EmptyTranscription(t *testing.T) {
	turns := []diarization.Turn{turn("SPEAKER_00", 0, 5)}
	got, err := Align(turns, nil)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty output, got %+v", got)
	}
}

func TestAlign_DominantDurationRegression(t *testing.T) {
	// Speaker A covers [0,2), speaker B covers [1.8,5); the segment [0,3)
	// overlaps A for 2.0s and B for 1.2s, so A must win the whole text.
	turns := []diarization.Turn{
		turn("SPEAKER_A", 0, 2),
		turn("SPEAKER_B", 1.8, 5),
	}
	segments := []transcription.Segment{segment("contested text", 0, 3)}

	got, err := Align(turns, segments)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one utterance, got %d", len(got))
	}
	if got[0].Speaker != "SPEAKER_A" {
		t.Errorf("dominant-duration winner = %s, want SPEAKER_A", got[0].Speaker)
	}
}

func TestAlign_ExactTieBreaksToEarliestTurn(t *testing.T) {
	// Both turns overlap the segment for exactly 1s; the earlier turn wins.
	turns := []diarization.Turn{
		turn("SPEAKER_A", 0, 1),
		turn("SPEAKER_B", 1, 2),
	}
	segments := []transcription.Segment{segment("tied", 0, 2)}

	got, err := Align(turns, segments)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	if got[0].Speaker != "SPEAKER_A" {
		t.Errorf("tie should go to earliest turn, got %s", got[0].Speaker)
	}
}

func TestAlign_TrailingAudioIsUnknown(t *testing.T) {
	turns := []diarization.Turn{turn("SPEAKER_00", 0, 3)}
	segments := []transcription.Segment{
		segment("covered", 0, 3),
		segment("trailing", 8, 9),
	}
	got, err := Align(turns, segments)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected two utterances, got %+v", got)
	}
	if got[1].Speaker != UnknownSpeaker {
		t.Errorf("trailing segment should be UNKNOWN, got %s", got[1].Speaker)
	}
}

func TestAlign_MergesAdjacentSameSpeaker(t *testing.T) {
	turns := []diarization.Turn{turn("SPEAKER_00", 0, 10)}
	segments := []transcription.Segment{
		segment("First sentence.", 0, 2),
		segment("Second sentence.", 2, 4),
		segment("Third sentence.", 4.0005, 6), // within epsilon of the previous end
	}
	got, err := Align(turns, segments)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected a single merged utterance, got %+v", got)
	}
	wantText := "First sentence. Second sentence. Third sentence."
	if got[0].Text != wantText {
		t.Errorf("merged text = %q, want %q", got[0].Text, wantText)
	}
	if got[0].Start != 0 || got[0].End != 6 {
		t.Errorf("merged span = [%g, %g), want [0, 6)", got[0].Start, got[0].End)
	}
}

func TestAlign_NoMergeAcrossSpeakerChange(t *testing.T) {
	// Mirrors the sample transcript: two abutting turns, two segments,
	// each fully inside its own turn.
	turns := []diarization.Turn{
		turn("SPEAKER_00", 0, 3.61),
		turn("SPEAKER_02", 3.61, 5.75),
	}
	segments := []transcription.Segment{
		segment("At some point...", 0.03, 3.61),
		segment("What is the vision...", 3.61, 5.75),
	}
	got, err := Align(turns, segments)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	want := []Utterance{
		{Speaker: "SPEAKER_00", Start: 0.03, End: 3.61, Text: "At some point..."},
		{Speaker: "SPEAKER_02", Start: 3.61, End: 5.75, Text: "What is the vision..."},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Align = %+v, want %+v", got, want)
	}
}

func TestAlign_GapWithinEpsilonStillAssigned(t *testing.T) {
	// The turn ends 0.5ms before the segment starts; jitter tolerance
	// must still assign the speaker.
	turns := []diarization.Turn{turn("SPEAKER_00", 0, 1.9995)}
	segments := []transcription.Segment{segment("jittered", 2.0, 3)}

	got, err := Align(turns, segments)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	if got[0].Speaker != "SPEAKER_00" {
		t.Errorf("sub-epsilon gap should assign the speaker, got %s", got[0].Speaker)
	}
}

func TestAlign_CoverageProperty(t *testing.T) {
	// The concatenation of output texts (ignoring merge-induced spacing)
	// must equal the concatenation of input texts in order.
	turns := []diarization.Turn{
		turn("SPEAKER_00", 0, 4),
		turn("SPEAKER_01", 4, 8),
		turn("SPEAKER_00", 8, 12),
	}
	segments := []transcription.Segment{
		segment("alpha", 0, 2),
		segment("bravo", 2, 4),
		segment("charlie", 4, 6),
		segment("delta", 6.5, 8),
		segment("echo", 8, 10),
		segment("foxtrot", 14, 15),
	}

	got, err := Align(turns, segments)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}

	var inText, outText strings.Builder
	for _, s := range segments {
		inText.WriteString(s.Text)
	}
	for _, u := range got {
		outText.WriteString(strings.ReplaceAll(u.Text, " ", ""))
	}
	if inText.String() != outText.String() {
		t.Errorf("text coverage violated:\n in: %q\nout: %q", inText.String(), outText.String())
	}
}

func TestAlign_OutputOrdering(t *testing.T) {
	turns := []diarization.Turn{
		turn("SPEAKER_00", 0, 3),
		turn("SPEAKER_01", 3, 7),
	}
	segments := []transcription.Segment{
		segment("one", 0, 1),
		segment("two", 1.5, 3),
		segment("three", 3, 5),
		segment("four", 6, 7),
	}
	got, err := Align(turns, segments)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Start < got[i-1].Start {
			t.Errorf("output not ordered by start: %+v", got)
		}
	}
}

func TestAlign_Determinism(t *testing.T) {
	turns := []diarization.Turn{
		turn("SPEAKER_A", 0, 2),
		turn("SPEAKER_B", 0, 2), // fully overlapping simultaneous speech
		turn("SPEAKER_C", 2, 4),
	}
	segments := []transcription.Segment{
		segment("overlap", 0, 2),
		segment("tail", 2, 4),
	}

	first, err := Align(turns, segments)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	for i := 0; i < 50; i++ {
		again, err := Align(turns, segments)
		if err != nil {
			t.Fatalf("Align failed on run %d: %v", i, err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("nondeterministic output on run %d:\nfirst: %+v\nagain: %+v", i, first, again)
		}
	}
	if first[0].Speaker != "SPEAKER_A" {
		t.Errorf("simultaneous-speech tie should go to input order, got %s", first[0].Speaker)
	}
}

func TestAlign_DoesNotMutateInputs(t *testing.T) {
	turns := []diarization.Turn{turn("SPEAKER_00", 0, 5)}
	segments := []transcription.Segment{segment("text", 0, 2), segment("more", 2, 4)}
	turnsCopy := append([]diarization.Turn(nil), turns...)
	segmentsCopy := append([]transcription.Segment(nil), segments...)

	if _, err := Align(turns, segments); err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	if !reflect.DeepEqual(turns, turnsCopy) {
		t.Error("Align mutated the turns input")
	}
	if !reflect.DeepEqual(segments, segmentsCopy) {
		t.Error("Align mutated the segments input")
	}
}

func TestAlign_ParallelInvocation(t *testing.T) {
	turns := []diarization.Turn{
		turn("SPEAKER_00", 0, 3),
		turn("SPEAKER_01", 3, 6),
	}
	segments := []transcription.Segment{
		segment("left", 0, 3),
		segment("right", 3, 6),
	}
	want, err := Align(turns, segments)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Align(turns, segments)
			if err != nil {
				t.Errorf("parallel Align failed: %v", err)
				return
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("parallel Align diverged: %+v", got)
			}
		}()
	}
	wg.Wait()
}

func TestAlign_InvalidInputs(t *testing.T) {
	tests := []struct {
		name     string
		turns    []diarization.Turn
		segments []transcription.Segment
	}{
		{
			name:  "unsorted turns",
			turns: []diarization.Turn{turn("A", 5, 6), turn("B", 0, 1)},
		},
		{
			name:  "zero-duration turn",
			turns: []diarization.Turn{turn("A", 2, 2)},
		},
		{
			name:  "inverted turn",
			turns: []diarization.Turn{turn("A", 3, 1)},
		},
		{
			name:     "unsorted segments",
			segments: []transcription.Segment{segment("b", 4, 5), segment("a", 0, 1)},
		},
		{
			name:     "inverted segment",
			segments: []transcription.Segment{segment("a", 2, 1)},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Align(tc.turns, tc.segments)
			if err == nil {
				t.Fatal("expected an error")
			}
			appErr, ok := apperrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != apperrors.ErrCodeInvalidInput {
				t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
			}
			if appErr.Retryable {
				t.Error("precondition violations must not be retryable")
			}
		})
	}
}

func TestMerge_Idempotent(t *testing.T) {
	input := []Utterance{
		{Speaker: "SPEAKER_00", Start: 0, End: 2, Text: "a"},
		{Speaker: "SPEAKER_00", Start: 2, End: 4, Text: "b"},
		{Speaker: "SPEAKER_01", Start: 4, End: 6, Text: "c"},
		{Speaker: "SPEAKER_01", Start: 9, End: 10, Text: "d"}, // gap, no merge
	}
	once := Merge(input)
	twice := Merge(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Merge is not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
	if len(once) != 3 {
		t.Errorf("expected 3 utterances after merge, got %+v", once)
	}
}

func TestMerge_UnknownMergesLikeAnySpeaker(t *testing.T) {
	input := []Utterance{
		{Speaker: UnknownSpeaker, Start: 0, End: 1, Text: "no"},
		{Speaker: UnknownSpeaker, Start: 1, End: 2, Text: "label"},
	}
	got := Merge(input)
	if len(got) != 1 || got[0].Text != "no label" {
		t.Errorf("UNKNOWN spans should merge, got %+v", got)
	}
}

func TestMerge_Empty(t *testing.T) {
	if got := Merge(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}

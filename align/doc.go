// Package align fuses a diarization timeline and a transcription timeline
// into a single ordered, speaker-labeled transcript.
//
// The two inputs are produced independently over the same audio and never
// agree exactly: turn and segment boundaries jitter by a few milliseconds,
// a segment may span a speaker change, and simultaneous speech produces
// overlapping turns. Align reconciles them without ever dropping or
// duplicating transcript text.
//
// Align is a pure function: it has no configuration, retains no state
// between calls, and is safe to invoke concurrently for independent
// input pairs.
package align

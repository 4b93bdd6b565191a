// Package pipeline orchestrates the end-to-end transcription job: audio
// acquisition (download, trim), concurrent diarization and transcription,
// alignment into speaker-attributed utterances, and rendering of the
// output transcript. Batch runs process multiple sources under a bounded
// worker pool.
package pipeline

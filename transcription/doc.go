// Package transcription defines the provider interface and data contract
// for speech-to-text backends.
//
// A transcription run produces timestamped text segments sorted by start
// time. Real model output occasionally contains small overlaps or gaps
// between adjacent segments; consumers tolerate those within the shared
// epsilon rather than rejecting them.
//
// # Backends
//
//   - transcription/whisper: Whisper sidecar with selectable model size
package transcription

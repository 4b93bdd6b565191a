// Package errors provides unified error handling for the transcription
// pipeline. It implements structured error types with machine-readable
// codes, HTTP status mapping for the API surface, and retryable detection
// so callers can distinguish transient collaborator failures from
// precondition violations that will never succeed on retry.
package errors

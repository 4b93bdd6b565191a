package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Validation errors (never retryable)
const (
	// ErrCodeInvalidInput indicates malformed or unsorted input data,
	// e.g. an interval with end <= start or an out-of-order sequence.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidFormat indicates a field has an invalid format,
	// e.g. a time range string that is not HH:MM:SS.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Resource errors
const (
	// ErrCodeNotFound indicates the requested resource was not found,
	// e.g. a missing audio file or transcript.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Collaborator errors (retryable)
const (
	// ErrCodeServiceUnavailable indicates a model sidecar is temporarily unavailable.
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrCodeConnectionFailed indicates a failed connection to a sidecar or remote source.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeTimeout indicates a collaborator call timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeExternalService indicates an error reported by an external
	// service (diarization, transcription, LLM, media tooling).
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeServiceUnavailable: true,
	ErrCodeConnectionFailed:   true,
	ErrCodeTimeout:            true,
	ErrCodeExternalService:    true,
	ErrCodeInternal:           false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}

package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeNotFound, "not found", http.StatusNotFound)
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "not found" {
		t.Errorf("expected message 'not found', got %q", err.Message)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, err.HTTPStatus)
	}
	if err.Retryable {
		t.Error("NOT_FOUND should not be retryable")
	}
}

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeTimeout, "timed out", http.StatusGatewayTimeout)
	if !err.Retryable {
		t.Error("TIMEOUT should be retryable")
	}
}

func TestAppError_InvalidInput(t *testing.T) {
	err := InvalidInput("turns", "turns must be sorted by start time")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if err.Retryable {
		t.Error("InvalidInput should never be retryable")
	}
	if err.Details["field"] != "turns" {
		t.Errorf("expected field=turns, got %v", err.Details["field"])
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.HTTPStatus)
	}
}

func TestAppError_External(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := External("whisper", cause)
	if err.Code != ErrCodeExternalService {
		t.Errorf("expected EXTERNAL_SERVICE_ERROR, got %s", err.Code)
	}
	if !err.Retryable {
		t.Error("External should be retryable")
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected Unwrap to expose the cause")
	}
}

func TestAppError_WithCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Internal("bad state").WithCause(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected wrapped cause")
	}
	if got := err.Error(); got != "INTERNAL_ERROR: bad state (cause: boom)" {
		t.Errorf("unexpected Error() string: %q", got)
	}
}

func TestAppError_WithDetail(t *testing.T) {
	err := Timeout("diarize").WithDetail("audio", "clip.wav")
	if err.Details["operation"] != "diarize" {
		t.Errorf("expected operation detail, got %v", err.Details)
	}
	if err.Details["audio"] != "clip.wav" {
		t.Errorf("expected audio detail, got %v", err.Details)
	}
}

func TestAsAppError(t *testing.T) {
	inner := InvalidFormat("start_time", "HH:MM:SS")
	wrapped := fmt.Errorf("parse range: %w", inner)

	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to find the AppError")
	}
	if appErr.Code != ErrCodeInvalidFormat {
		t.Errorf("expected INVALID_FORMAT, got %s", appErr.Code)
	}

	if IsAppError(fmt.Errorf("plain")) {
		t.Error("plain error should not be an AppError")
	}
}

func TestToResponse(t *testing.T) {
	resp := ServiceUnavailable("pyannote").ToResponse()
	if resp.Error.Code != ErrCodeServiceUnavailable {
		t.Errorf("expected SERVICE_UNAVAILABLE, got %s", resp.Error.Code)
	}
	if !resp.Error.Retryable {
		t.Error("expected retryable response")
	}
	if resp.Error.Details["service"] != "pyannote" {
		t.Errorf("expected service detail, got %v", resp.Error.Details)
	}
}

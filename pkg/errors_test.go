package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple error has no cause", func(t *testing.T) {
		e := NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
		if e.Error() != "Lead not found" {
			t.Fatalf("unexpected message %q", e.Error())
		}
		if e.Unwrap() != nil {
			t.Fatalf("expected nil cause")
		}
	})

	t.Run("wrapped cause is reachable", func(t *testing.T) {
		cause := errors.New("dynamodb down")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected errors.Is to reach cause")
		}
		if e.Error() != "An internal error occurred: dynamodb down" {
			t.Fatalf("unexpected message %q", e.Error())
		}
	})

	t.Run("retryable body", func(t *testing.T) {
		e := NewRetryableError("LEAD_FETCH_FAILED", "Could not load lead", errors.New("timeout"))
		if e.HTTPStatus != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", e.HTTPStatus)
		}
		body := e.ToHTTPError()
		if !body.Retryable || body.Code != "LEAD_FETCH_FAILED" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

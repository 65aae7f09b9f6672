package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	dErrors "saintkernel/pkg/domainerrors"
)

func TestWriteError(t *testing.T) {
	t.Run("internal error masks the message", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeInternal, "db failed"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}

		var body ErrorBody
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body.Error.Code != "INTERNAL_ERROR" {
			t.Fatalf("expected error code INTERNAL_ERROR, got %q", body.Error.Code)
		}
		if body.Error.Message != "internal error" {
			t.Fatalf("expected masked message, got %q", body.Error.Message)
		}
	})

	t.Run("bad request includes the message", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "action and role are required"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}

		var body ErrorBody
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body.Error.Code != "BAD_REQUEST" {
			t.Fatalf("expected error code BAD_REQUEST, got %q", body.Error.Code)
		}
		if body.Error.Message != "action and role are required" {
			t.Fatalf("expected message to be returned, got %q", body.Error.Message)
		}
	})

	t.Run("unclassified errors fail safe to internal", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, http.ErrBodyNotAllowed)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
		var body ErrorBody
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body.Error.Code != "INTERNAL_ERROR" {
			t.Fatalf("expected error code INTERNAL_ERROR, got %q", body.Error.Code)
		}
	})
}

package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-team-manager/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type: %q", got)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStatus string
	}{
		{name: "invalid input", err: fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput), wantCode: http.StatusBadRequest, wantStatus: "INVALID_ARGUMENT"},
		{name: "not found", err: fmt.Errorf("%w: player with ID 9 not found", usecase.ErrNotFound), wantCode: http.StatusNotFound, wantStatus: "NOT_FOUND"},
		{name: "conflict", err: fmt.Errorf("%w: jersey number 7 is already taken", usecase.ErrConflict), wantCode: http.StatusConflict, wantStatus: "ALREADY_EXISTS"},
		{name: "dependency", err: fmt.Errorf("%w: provider down", usecase.ErrDependencyUnavailable), wantCode: http.StatusServiceUnavailable, wantStatus: "UNAVAILABLE"},
		{name: "unknown", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantStatus: "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tt.err)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
			body := decodeErrorBody(t, rec)
			if got, _ := body["status"].(string); got != tt.wantStatus {
				t.Fatalf("expected error status %s, got %v", tt.wantStatus, body["status"])
			}
		})
	}
}

func TestWriteError_InternalKeepsDetailInErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, errors.New("select players: connection refused"))

	body := decodeErrorBody(t, rec)
	if got, _ := body["message"].(string); got != internalErrorMsg {
		t.Fatalf("expected generic message, got %q", got)
	}
	items, _ := body["errors"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected one error item, got %v", body["errors"])
	}
	item, _ := items[0].(map[string]any)
	if got, _ := item["message"].(string); got != "select players: connection refused" {
		t.Fatalf("expected detail in error item, got %q", got)
	}
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response: %s", rec.Body.String())
	}
	return errorObj
}

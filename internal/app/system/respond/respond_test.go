package respond_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/wastematch/internal/app/system/respond"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Message(rec, http.StatusBadRequest, "缺少經緯度參數")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q", ct)
	}
	want := `{"message":"缺少經緯度參數"}` + "\n"
	if rec.Body.String() != want {
		t.Errorf("body: got %q, want %q", rec.Body.String(), want)
	}
}

func TestOK_EmptySlice(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.OK(rec, []string{})

	if rec.Body.String() != "[]\n" {
		t.Errorf("body: got %q, want []", rec.Body.String())
	}
}

func TestJSON_ClampsInvalidStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.JSON(rec, 42, respond.MessageBody{Message: "x"})

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}
}

func TestSetLogger_LogsEncodeFailure(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	respond.SetLogger(zap.New(core))
	t.Cleanup(func() { respond.SetLogger(zap.NewNop()) })

	rec := httptest.NewRecorder()
	respond.OK(rec, map[string]any{"bad": make(chan int)})

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected 1 error log, got %d", logs.Len())
	}
	if !strings.Contains(logs.All()[0].Message, "json encoding failed") {
		t.Errorf("message = %q", logs.All()[0].Message)
	}
}

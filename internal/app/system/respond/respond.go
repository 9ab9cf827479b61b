// Package respond writes JSON API responses through WAFFLE's httputil.
package respond

import (
	"fmt"
	"net/http"

	"github.com/dalemusser/waffle/httputil"
	"go.uber.org/zap"
)

// MessageBody is the shape of every message-only response.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes v with the given status. Statuses outside 100-599 become 500.
func JSON(w http.ResponseWriter, status int, v any) {
	httputil.WriteJSON(w, status, v)
}

// OK writes v with status 200.
func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

// Message writes {"message": msg} with the given status.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, MessageBody{Message: msg})
}

// SetLogger routes encode failures, which happen after the status line has
// gone out, to logger. Call once at startup.
func SetLogger(logger *zap.Logger) {
	httputil.SetJSONLogger(zapJSONLogger{logger})
}

type zapJSONLogger struct{ log *zap.Logger }

func (l zapJSONLogger) Error(msg string, args ...any) {
	if len(args) > 0 {
		msg = fmt.Sprintf("%s %v", msg, args)
	}
	l.log.Error(msg, zap.String("component", "respond"))
}

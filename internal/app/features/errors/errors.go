// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/wastematch/internal/app/system/respond"
	"github.com/dalemusser/waffle/pantry/requestid"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

// ErrorLogger logs request failures and writes the JSON error body.
// The user message is what the client sees; err never leaves the server.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// LogBadRequest logs at info and responds 400 with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	e.Log.Info(msg, e.fields(r, err)...)
	respond.Message(w, http.StatusBadRequest, userMsg)
}

// LogServerError logs at error, reports err to Sentry when a hub is
// attached to the request, and responds 500 with userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	e.Log.Error(msg, e.fields(r, err)...)
	if hub := sentry.GetHubFromContext(r.Context()); hub != nil && err != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetTag("request_id", requestid.FromRequest(r))
			scope.SetExtra("operation", msg)
			hub.CaptureException(err)
		})
	}
	respond.Message(w, http.StatusInternalServerError, userMsg)
}

func (e *ErrorLogger) fields(r *http.Request, err error) []zap.Field {
	fs := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		requestid.Field(r.Context()),
	}
	if err != nil {
		fs = append(fs, zap.Error(err))
	}
	return fs
}

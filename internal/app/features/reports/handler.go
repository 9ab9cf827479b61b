// internal/app/features/reports/handler.go
package reports

import (
	uierrors "github.com/dalemusser/wastematch/internal/app/features/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	msgReported     = "回報完成，感謝您!"
	msgWriteFailed  = "資料庫寫入失敗"
	msgLoadFailed   = "讀取回報資料失敗"
	msgBadBody      = "Invalid request body."
	maxReportsBytes = 16 << 10
)

// Handler owns the waste report endpoints.
//
// A thin struct wrapping the shared Mongo database handle and logger,
// constructed once at startup in bootstrap and passed into Routes().
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs a reports Handler bound to the given Mongo
// database and logger.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Log:    logger,
		ErrLog: errLog,
	}
}

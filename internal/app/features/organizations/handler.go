// internal/app/features/organizations/handler.go
package organizations

import (
	uierrors "github.com/dalemusser/wastematch/internal/app/features/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// User-facing messages.
const (
	msgCreated      = "業者新增成功"
	msgCreateFailed = "業者建立失敗"
	msgSeeded       = "已匯入初始業者資料"
	msgSeedFailed   = "初始業者資料匯入失敗"
	msgLoadFailed   = "讀取業者資料失敗"
	msgBadBody      = "Invalid request body."
)

// Handler is the feature-level entry point for Organizations.
type Handler struct {
	DB     *mongo.Database
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a new Organizations handler bound to a DB and logger.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		ErrLog: errLog,
		Log:    logger,
	}
}

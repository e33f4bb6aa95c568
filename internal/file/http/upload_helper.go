package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bisfor/hotel-booking-backend/internal/auth"
	"github.com/bisfor/hotel-booking-backend/internal/file"
	"github.com/bisfor/hotel-booking-backend/internal/pkg/response"
)

// UploadConfig defines how a multipart file field is received.
type UploadConfig struct {
	FormFieldName string   // default: "image"
	Optional      bool     // a missing field is not an error
	MaxSizeBytes  int64    // 0 = no limit
	AllowedTypes  []string // empty = allow all
	RequireImage  bool
}

// ReceiveUpload stores the file posted in the configured form field.
// On failure it writes the error response and returns ok=false.
// For an optional, absent field it returns (nil, true).
func ReceiveUpload(c *gin.Context, svc file.Service, cfg UploadConfig) (*file.File, bool) {
	fieldName := cfg.FormFieldName
	if fieldName == "" {
		fieldName = "image"
	}

	fileHeader, err := c.FormFile(fieldName)
	if err != nil {
		if cfg.Optional {
			return nil, true
		}
		response.BadRequest(c, fieldName+" is required", nil)
		return nil, false
	}

	f, err := svc.Upload(c.Request.Context(), file.UploadInput{
		FileHeader:   fileHeader,
		AdminID:      auth.GetAdminID(c),
		MaxSizeBytes: cfg.MaxSizeBytes,
		AllowedTypes: cfg.AllowedTypes,
		RequireImage: cfg.RequireImage,
	})
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return f, true
}

// Rollback deletes a file whose owning record could not be written.
func Rollback(ctx context.Context, svc file.Service, f *file.File) {
	if f == nil {
		return
	}
	if err := svc.Delete(ctx, f.ID); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("file_id", f.ID).Msg("Failed to roll back uploaded file")
	}
}

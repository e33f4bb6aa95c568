package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bisfor/hotel-booking-backend/internal/file"
	"github.com/bisfor/hotel-booking-backend/internal/pkg/request"
	"github.com/bisfor/hotel-booking-backend/internal/pkg/response"
)

type Handler struct {
	fileService  file.Service
	maxSizeBytes int64
}

func NewHandler(fileService file.Service, maxSizeBytes int64) *Handler {
	return &Handler{
		fileService:  fileService,
		maxSizeBytes: maxSizeBytes,
	}
}

// ServeFile serves the file content by ID
func (h *Handler) ServeFile(c *gin.Context) {
	var req request.ByUUIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid file id", err)
		return
	}

	stream, fileInfo, err := h.fileService.Download(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	h.stream(c, stream, fileInfo.ContentType, fileInfo.Filename)
}

// ServeThumbnail serves the thumbnail image by file ID
func (h *Handler) ServeThumbnail(c *gin.Context) {
	var req request.ByUUIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid file id", err)
		return
	}

	stream, fileInfo, err := h.fileService.DownloadThumbnail(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	// Thumbnails are always JPEG
	h.stream(c, stream, "image/jpeg", fileInfo.Filename+"_thumb.jpg")
}

// Upload stores an arbitrary image for later use by a room or facility.
func (h *Handler) Upload(c *gin.Context) {
	f, ok := ReceiveUpload(c, h.fileService, UploadConfig{
		MaxSizeBytes: h.maxSizeBytes,
		AllowedTypes: file.ImageTypes,
		RequireImage: true,
	})
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, NewUploadResponse(f))
}

func (h *Handler) stream(c *gin.Context, stream io.Reader, contentType, filename string) {
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", "inline; filename="+strconv.Quote(filename))
	c.Header("Cache-Control", "public, max-age=86400")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		// Response already started; nothing left to report to the client.
		log.Ctx(c.Request.Context()).Warn().Err(err).Msg("Failed to stream file")
	}
}

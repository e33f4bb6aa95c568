package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bisfor/hotel-booking-backend/internal/auth"
	"github.com/bisfor/hotel-booking-backend/internal/file"
	fileHttp "github.com/bisfor/hotel-booking-backend/internal/file/http"
	"github.com/bisfor/hotel-booking-backend/internal/pkg/request"
	"github.com/bisfor/hotel-booking-backend/internal/pkg/response"
	"github.com/bisfor/hotel-booking-backend/internal/room"
)

type Handler struct {
	service        room.Service
	fileService    file.Service
	maxUploadBytes int64
}

func NewHandler(service room.Service, fileService file.Service, maxUploadBytes int64) *Handler {
	return &Handler{
		service:        service,
		fileService:    fileService,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *Handler) List(c *gin.Context) {
	rooms, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		items[i] = NewResponse(r)
	}

	c.JSON(http.StatusOK, response.NewListResponse(items))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid room id", err)
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(r))
}

// Create adds a room from a multipart form with an optional image upload.
// The uploaded file is removed again if the room cannot be stored.
func (h *Handler) Create(c *gin.Context) {
	var body CreateRequest
	if err := c.ShouldBind(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	// Fail before storing an upload nobody may use.
	if !auth.IsAdmin(c) {
		response.Error(c, room.ErrPermissionDenied)
		return
	}

	img, ok := fileHttp.ReceiveUpload(c, h.fileService, fileHttp.UploadConfig{
		Optional:     true,
		MaxSizeBytes: h.maxUploadBytes,
		AllowedTypes: file.ImageTypes,
		RequireImage: true,
	})
	if !ok {
		return
	}

	req := room.CreateRequest{
		Name:        body.Name,
		Description: body.Description,
		Price:       *body.Price,
		ImageURL:    body.ImageURL,
	}
	if img != nil {
		req.ImageURL = file.FileURL(img.ID)
		req.ImageFileID = &img.ID
	}

	r, err := h.service.Create(c.Request.Context(), req, true)
	if err != nil {
		fileHttp.Rollback(c.Request.Context(), h.fileService, img)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewResponse(r))
}

// UpdatePrice changes a room's nightly price.
func (h *Handler) UpdatePrice(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid room id", err)
		return
	}

	var body UpdatePriceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	r, err := h.service.UpdatePrice(c.Request.Context(), uri.ID, *body.Price, auth.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(r))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid room id", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID, auth.IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

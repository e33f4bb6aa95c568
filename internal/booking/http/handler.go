package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bisfor/hotel-booking-backend/internal/auth"
	"github.com/bisfor/hotel-booking-backend/internal/booking"
	"github.com/bisfor/hotel-booking-backend/internal/payment"
	"github.com/bisfor/hotel-booking-backend/internal/pkg/request"
	"github.com/bisfor/hotel-booking-backend/internal/pkg/response"
)

type Handler struct {
	service  booking.Service
	location *time.Location
	now      func() time.Time
}

// NewHandler creates the booking handler. loc is the hotel's timezone,
// used for the "this week" filter.
func NewHandler(service booking.Service, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		service:  service,
		location: loc,
		now:      time.Now,
	}
}

// Quote prices a stay without creating anything.
func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}
	checkIn, checkOut, err := req.Dates()
	if err != nil {
		response.BadRequest(c, "invalid stay dates", err)
		return
	}

	q, err := h.service.Quote(c.Request.Context(), req.RoomID, checkIn, checkOut)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewQuoteResponse(q))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}
	checkIn, checkOut, err := req.Dates()
	if err != nil {
		response.BadRequest(c, "invalid stay dates", err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		Name:       req.Name,
		Email:      req.Email,
		RoomID:     req.RoomID,
		Guests:     req.Guests,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

// Get returns a booking to the guest who made it.
func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid booking id", err)
		return
	}
	var query GuestLookupRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	b, err := h.service.GetForGuest(c.Request.Context(), uri.ID, query.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// PaymentQR renders the booking's payment reference as a PNG QR code.
func (h *Handler) PaymentQR(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid booking id", err)
		return
	}
	var query GuestLookupRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	b, err := h.service.GetForGuest(c.Request.Context(), uri.ID, query.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	png, err := payment.QRCodePNG(payment.Reference(b), query.Size)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}

// ConfirmPayment records the guest's payment and triggers the confirmation email.
func (h *Handler) ConfirmPayment(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid booking id", err)
		return
	}
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	b, err := h.service.ConfirmPayment(c.Request.Context(), uri.ID, req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// List returns every booking through the admin table's filter and sort.
// Access Control: Admin only.
func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	bookings, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	view := booking.ApplyView(bookings, req.Options(), h.now(), h.location)

	items := make([]BookingResponse, len(view))
	for i, b := range view {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewListResponse(items))
}

// Delete removes a booking.
// Access Control: Admin only.
func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid booking id", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID, auth.IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	log.Ctx(c.Request.Context()).Info().
		Int64("booking_id", uri.ID).
		Str("admin", auth.GetAdminEmail(c)).
		Msg("Booking deleted")

	c.Status(http.StatusNoContent)
}

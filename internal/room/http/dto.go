package http

import (
	"time"

	"github.com/bisfor/hotel-booking-backend/internal/room"
)

type RoomResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewResponse(r *room.Room) RoomResponse {
	return RoomResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		CreatedAt:   r.CreatedAt,
	}
}

// CreateRequest is the multipart form for POST /rooms. The picture arrives
// either as an "image" file part or as a ready-made image_url.
type CreateRequest struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
	Price       *int64 `form:"price" binding:"required,min=0"`
	ImageURL    string `form:"image_url" binding:"omitempty,max=2048"`
}

type UpdatePriceRequest struct {
	Price *int64 `json:"price" binding:"required,min=0"`
}

// Package payment renders the static payment reference a guest scans after booking.
package payment

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/bisfor/hotel-booking-backend/internal/booking"
	"github.com/bisfor/hotel-booking-backend/internal/stay"
)

const (
	DefaultQRSize = 256
	MinQRSize     = 64
	MaxQRSize     = 1024
)

// Reference builds the payment reference encoded in a booking's QR code.
func Reference(b *booking.Booking) string {
	return fmt.Sprintf("booking://%s-%s-%s-%s-%d",
		b.Name,
		b.RoomName,
		b.CheckIn.Format(stay.DateLayout),
		b.CheckOut.Format(stay.DateLayout),
		b.Guests,
	)
}

// QRCodePNG encodes content as a square PNG QR code of size pixels.
// Out-of-range sizes are clamped.
func QRCodePNG(content string, size int) ([]byte, error) {
	switch {
	case size <= 0:
		size = DefaultQRSize
	case size < MinQRSize:
		size = MinQRSize
	case size > MaxQRSize:
		size = MaxQRSize
	}

	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode payment qr code: %w", err)
	}
	return png, nil
}

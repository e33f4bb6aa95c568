package email

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bisfor/hotel-booking-backend/internal/booking"
)

const sendTimeout = 5 * time.Second

// Notifier sends guest-facing booking emails.
type Notifier struct {
	sender    Sender
	hotelName string
	timeout   time.Duration
}

func NewNotifier(sender Sender, hotelName string) *Notifier {
	if sender == nil {
		sender = LogSender{}
	}
	return &Notifier{
		sender:    sender,
		hotelName: hotelName,
		timeout:   sendTimeout,
	}
}

// BookingConfirmed sends the confirmation email in the background.
// Delivery failures are logged and never reach the caller.
func (n *Notifier) BookingConfirmed(b *booking.Booking) {
	if n == nil || b == nil {
		return
	}
	recipient := strings.TrimSpace(b.Email)
	if recipient == "" {
		return
	}
	msg := BuildBookingConfirmation(n.hotelName, b)

	go func() {
		sendCtx, cancel := newEmailContext(context.Background(), n.timeout)
		defer cancel()
		if err := n.sender.Send(sendCtx, recipient, msg.Subject, msg.Body); err != nil {
			log.Error().Err(err).Int64("booking_id", b.ID).Msg("Failed to send booking confirmation email")
			return
		}
		log.Info().Int64("booking_id", b.ID).Msg("Booking confirmation email sent")
	}()
}

// CheckInReminder sends the day-before reminder and waits for the result.
func (n *Notifier) CheckInReminder(ctx context.Context, b *booking.Booking) error {
	recipient := strings.TrimSpace(b.Email)
	if recipient == "" {
		return nil
	}
	msg := BuildCheckInReminder(n.hotelName, b)

	sendCtx, cancel := newEmailContext(ctx, n.timeout)
	defer cancel()
	return n.sender.Send(sendCtx, recipient, msg.Subject, msg.Body)
}

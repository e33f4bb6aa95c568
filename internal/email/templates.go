package email

import (
	"fmt"
	"strings"

	"github.com/bisfor/hotel-booking-backend/internal/booking"
)

type Message struct {
	Subject string
	Body    string
}

const displayDate = "Monday, Jan 2, 2006"

func hotelOrDefault(hotelName string) string {
	if name := strings.TrimSpace(hotelName); name != "" {
		return name
	}
	return "our hotel"
}

func stayLines(b *booking.Booking) []string {
	return []string{
		fmt.Sprintf("Room: %s", b.RoomName),
		fmt.Sprintf("Check-in: %s", b.CheckIn.Format(displayDate)),
		fmt.Sprintf("Check-out: %s", b.CheckOut.Format(displayDate)),
		fmt.Sprintf("Nights: %d", b.Nights),
		fmt.Sprintf("Guests: %d", b.Guests),
	}
}

// BuildBookingConfirmation renders the email sent once a booking is paid.
func BuildBookingConfirmation(hotelName string, b *booking.Booking) Message {
	hotel := hotelOrDefault(hotelName)

	lines := []string{
		fmt.Sprintf("Hi %s,", b.Name),
		"",
		fmt.Sprintf("Thank you for booking with %s. Your payment has been received and your stay is confirmed.", hotel),
		"",
		fmt.Sprintf("Booking #%d", b.ID),
	}
	lines = append(lines, stayLines(b)...)
	lines = append(lines,
		fmt.Sprintf("Total price: %d", b.TotalPrice),
		"",
		"We look forward to welcoming you.",
	)

	return Message{
		Subject: fmt.Sprintf("Booking confirmed at %s", hotel),
		Body:    strings.Join(lines, "\n"),
	}
}

// BuildCheckInReminder renders the reminder sent the day before check-in.
func BuildCheckInReminder(hotelName string, b *booking.Booking) Message {
	hotel := hotelOrDefault(hotelName)

	lines := []string{
		fmt.Sprintf("Hi %s,", b.Name),
		"",
		fmt.Sprintf("This is a reminder that your stay at %s starts tomorrow.", hotel),
		"",
	}
	lines = append(lines, stayLines(b)...)

	return Message{
		Subject: fmt.Sprintf("Your stay at %s starts tomorrow", hotel),
		Body:    strings.Join(lines, "\n"),
	}
}

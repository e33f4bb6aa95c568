package booking

import (
	"slices"
	"time"

	"github.com/bisfor/hotel-booking-backend/internal/stay"
)

// AllRooms disables the room name filter.
const AllRooms = "all"

// SortKey selects the date field the admin bookings table is ordered by.
type SortKey string

const (
	SortByCreatedAt SortKey = "created_at"
	SortByCheckIn   SortKey = "check_in"
	SortByCheckOut  SortKey = "check_out"
)

// Valid reports whether k names a sortable field.
func (k SortKey) Valid() bool {
	switch k {
	case SortByCreatedAt, SortByCheckIn, SortByCheckOut:
		return true
	}
	return false
}

func (k SortKey) field(b *Booking) time.Time {
	switch k {
	case SortByCheckIn:
		return b.CheckIn
	case SortByCheckOut:
		return b.CheckOut
	default:
		return b.CreatedAt
	}
}

// ViewOptions configures ApplyView.
type ViewOptions struct {
	WeekOnly bool
	RoomName string // AllRooms or "" keeps every room
	SortKey  SortKey
}

// WeekWindow returns the first (Sunday) and last (Saturday) calendar dates
// of the week containing now, as observed in loc.
func WeekWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	today := stay.Today(now, loc)
	start := today.AddDate(0, 0, -int(today.Weekday()))
	return start, start.AddDate(0, 0, 6)
}

// ApplyView filters and orders bookings for the admin table. The result is
// a new slice sorted newest first by opts.SortKey; equal keys keep their
// input order. bookings is not modified.
func ApplyView(bookings []*Booking, opts ViewOptions, now time.Time, loc *time.Location) []*Booking {
	var weekStart, weekEnd time.Time
	if opts.WeekOnly {
		weekStart, weekEnd = WeekWindow(now, loc)
	}

	out := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if opts.WeekOnly {
			// Whole calendar days, so Saturday 23:59:59.999 is inside.
			d := stay.DateOf(b.CheckIn)
			if d.Before(weekStart) || d.After(weekEnd) {
				continue
			}
		}
		if opts.RoomName != "" && opts.RoomName != AllRooms && b.RoomName != opts.RoomName {
			continue
		}
		out = append(out, b)
	}

	key := opts.SortKey
	if !key.Valid() {
		key = SortByCreatedAt
	}
	slices.SortStableFunc(out, func(a, b *Booking) int {
		return key.field(b).Compare(key.field(a))
	})
	return out
}

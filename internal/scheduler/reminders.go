package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"

	"github.com/bisfor/hotel-booking-backend/internal/booking"
	"github.com/bisfor/hotel-booking-backend/internal/stay"
)

const (
	reminderJobName    = "check_in_reminders"
	reminderJobTimeout = 2 * time.Minute
)

// BookingLister finds bookings by check-in date.
type BookingLister interface {
	ListByCheckIn(ctx context.Context, date time.Time, status booking.Status) ([]*booking.Booking, error)
}

// Reminder delivers a single check-in reminder.
type Reminder interface {
	CheckInReminder(ctx context.Context, b *booking.Booking) error
}

// RegisterReminderJob emails confirmed guests whose stay starts tomorrow
// in loc, on the given cron schedule.
func RegisterReminderJob(s *Service, cronExpr string, bookings BookingLister, reminder Reminder, loc *time.Location) error {
	if bookings == nil || reminder == nil {
		return fmt.Errorf("reminder job requires bookings and a reminder sender")
	}

	jobLogger := log.With().
		Str("component", "check_in_reminders_job").
		Str("cron", cronExpr).
		Logger()

	_, err := s.AddJob(reminderJobName, cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), reminderJobTimeout)
		defer cancel()
		ctx = jobLogger.WithContext(ctx)

		sent, err := SendReminders(ctx, bookings, reminder, time.Now(), loc)
		if err != nil {
			jobLogger.Error().Err(err).Msg("Failed to load bookings for reminder job")
			return
		}
		jobLogger.Info().Int("sent", sent).Msg("Check-in reminders processed")
	}, gocron.WithSingletonMode(gocron.LimitModeWait))
	if err != nil {
		return fmt.Errorf("add check-in reminder job: %w", err)
	}
	return nil
}

// SendReminders emails every confirmed booking checking in tomorrow and
// returns how many emails went out. A failed email does not stop the rest.
func SendReminders(ctx context.Context, bookings BookingLister, reminder Reminder, now time.Time, loc *time.Location) (int, error) {
	tomorrow := stay.Today(now, loc).AddDate(0, 0, 1)

	list, err := bookings.ListByCheckIn(ctx, tomorrow, booking.StatusConfirmed)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, b := range list {
		if err := reminder.CheckInReminder(ctx, b); err != nil {
			log.Ctx(ctx).Error().Err(err).Int64("booking_id", b.ID).Msg("Failed to send check-in reminder")
			continue
		}
		sent++
	}
	return sent, nil
}

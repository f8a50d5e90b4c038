package schedule

import (
	"fmt"
	"time"

	"github.com/ShasthoSeba/telemed-scheduler/internal/httperr"
)

const (
	// MaxAdvanceDays bounds how far ahead a doctor may publish availability.
	MaxAdvanceDays = 60

	// MinAdvanceHours applies when same-day booking is disabled.
	MinAdvanceHours = 48
)

// ===============================
// Wall-clock helpers
// ===============================

// ParseHM converts an "15:04" string to minutes since midnight.
func ParseHM(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatHM renders minutes since midnight back to "HH:MM". Values are kept
// inside the slot window by the serial math, so no mod-1440 wrap is applied.
func FormatHM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// WindowMinutes returns the length of the start..end wall-clock window.
func WindowMinutes(startHM, endHM string) (int, error) {
	start, err := ParseHM(startHM)
	if err != nil {
		return 0, err
	}
	end, err := ParseHM(endHM)
	if err != nil {
		return 0, err
	}
	return end - start, nil
}

// AnchorDate re-homes a date-only value in loc, keeping the calendar day.
// Postgres date columns decode to midnight UTC, so a slot date read back
// from the store must be re-anchored in the clinic's timezone before any
// absolute timestamp is derived from it.
func AnchorDate(d time.Time, loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

// AtTime anchors a wall-clock "15:04" on the calendar day of date.
func AtTime(date time.Time, hm string) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), nil
}

// ===============================
// Slot generation
// ===============================

type CreateSlotsInput struct {
	DoctorID uint

	FromDate time.Time
	ToDate   time.Time

	StartTime string
	EndTime   string

	ConsultationFee     float64
	AppointmentDuration int
	MaxAppointments     int

	AllowSameDayBooking bool
}

// Validate applies every slot-creation rule. It either passes completely or
// fails with a validation error; callers must not persist anything on error.
func (in CreateSlotsInput) Validate(now time.Time) error {
	if in.FromDate.IsZero() || in.ToDate.IsZero() {
		return httperr.ErrValidation("missing_dates", "Both from and to dates are required.")
	}

	if in.ConsultationFee <= 0 {
		return httperr.ErrValidation("invalid_fee", "Consultation fee must be positive.")
	}
	if in.AppointmentDuration <= 0 {
		return httperr.ErrValidation("invalid_duration", "Appointment duration must be positive.")
	}
	if in.MaxAppointments <= 0 {
		return httperr.ErrValidation("invalid_max_appointments", "Maximum appointments must be positive.")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	maxDate := today.AddDate(0, 0, MaxAdvanceDays)
	if in.ToDate.After(maxDate) {
		return httperr.ErrValidation("too_far_ahead",
			fmt.Sprintf("Cannot create slots more than %d days in advance.", MaxAdvanceDays))
	}

	if in.FromDate.After(in.ToDate) {
		return httperr.ErrValidation("invalid_date_range", "From date must not be after to date.")
	}

	startMin, err := ParseHM(in.StartTime)
	if err != nil {
		return httperr.ErrValidation("invalid_start_time", "Start time must be HH:MM.")
	}
	endMin, err := ParseHM(in.EndTime)
	if err != nil {
		return httperr.ErrValidation("invalid_end_time", "End time must be HH:MM.")
	}
	if startMin >= endMin {
		return httperr.ErrValidation("invalid_time_window", "Start time must be before end time.")
	}

	if !in.AllowSameDayBooking {
		firstStart, err := AtTime(in.FromDate, in.StartTime)
		if err != nil {
			return httperr.ErrValidation("invalid_start_time", "Start time must be HH:MM.")
		}
		if firstStart.Before(today.Add(MinAdvanceHours * time.Hour)) {
			return httperr.ErrValidation("too_soon",
				fmt.Sprintf("Slots must start at least %d hours ahead when same-day booking is disabled.", MinAdvanceHours))
		}
	}

	window := endMin - startMin
	required := in.MaxAppointments * in.AppointmentDuration
	if window < required {
		return httperr.ErrValidation("window_too_short",
			fmt.Sprintf("Slot window (%d min) is too short for %d appointments of %d min each. Need at least %d minutes.",
				window, in.MaxAppointments, in.AppointmentDuration, required))
	}

	return nil
}

// Days expands the inclusive date range into one entry per calendar day.
func (in CreateSlotsInput) Days() []time.Time {
	var days []time.Time
	for d := in.FromDate; !d.After(in.ToDate); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

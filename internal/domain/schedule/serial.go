package schedule

import (
	"fmt"
	"time"

	"github.com/ShasthoSeba/telemed-scheduler/internal/httperr"
	"github.com/ShasthoSeba/telemed-scheduler/internal/models"
)

// SerialAssignment is the outcome of assigning the next ordinal position
// inside a slot: the serial plus the exact wall-clock and absolute times of
// that patient's turn.
type SerialAssignment struct {
	SerialNumber    int       `json:"serial_number"`
	ExactStartTime  string    `json:"exact_start_time"`
	ExactEndTime    string    `json:"exact_end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	ReservationStart time.Time `json:"reservation_start"`
	ReservationEnd   time.Time `json:"reservation_end"`
}

// NextSerial is 1 + highest assigned serial on the slot. Serials are never
// reused and never reset, so cancelled appointments keep theirs.
func NextSerial(maxAssigned int) int {
	return maxAssigned + 1
}

// AssignSerial computes the assignment for the given serial on the slot,
// anchored on the appointment's calendar day. It fails with a capacity
// error when the computed turn would not fit inside the declared window.
func AssignSerial(slot *models.AvailabilitySlot, appointmentDate time.Time, serial int) (SerialAssignment, error) {
	startMin, err := ParseHM(slot.StartTime)
	if err != nil {
		return SerialAssignment{}, fmt.Errorf("assign serial: bad slot start time %q: %w", slot.StartTime, err)
	}
	endMin, err := ParseHM(slot.EndTime)
	if err != nil {
		return SerialAssignment{}, fmt.Errorf("assign serial: bad slot end time %q: %w", slot.EndTime, err)
	}

	duration := slot.AppointmentDuration
	offset := (serial - 1) * duration

	if offset+duration > endMin-startMin {
		return SerialAssignment{}, httperr.ErrCapacityExceeded("slot_window_exceeded",
			"No room left inside the slot window for another appointment.")
	}

	exactStart := startMin + offset
	exactEnd := exactStart + duration

	day := atDay(appointmentDate)
	resStart := day.Add(time.Duration(exactStart) * time.Minute)
	resEnd := resStart.Add(time.Duration(duration) * time.Minute)

	return SerialAssignment{
		SerialNumber:     serial,
		ExactStartTime:   FormatHM(exactStart),
		ExactEndTime:     FormatHM(exactEnd),
		DurationMinutes:  duration,
		ReservationStart: resStart,
		ReservationEnd:   resEnd,
	}, nil
}

// Apply writes the assignment onto the appointment as one mutation: serial,
// exact time and reservation window always land together.
func (a SerialAssignment) Apply(ap *models.Appointment, now time.Time) {
	serial := a.SerialNumber
	exact := a.ExactStartTime
	resStart := a.ReservationStart
	resEnd := a.ReservationEnd
	duration := a.DurationMinutes

	ap.SerialNumber = &serial
	ap.ExactAppointmentTime = &exact
	ap.ReservationStartTime = &resStart
	ap.ReservationEndTime = &resEnd
	ap.ReservationDurationMinutes = &duration
	ap.PaymentStatus = string(PaymentPaid)
	ap.Status = string(StatusConfirmed)
	ap.PaidAt = &now
}

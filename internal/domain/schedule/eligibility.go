package schedule

import (
	"time"

	"github.com/ShasthoSeba/telemed-scheduler/internal/models"
)

type Eligibility struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

const (
	ReasonSlotUnavailable = "slot_unavailable"
	ReasonSlotFull        = "slot_full"
	ReasonAdvanceNotice   = "advance_notice_required"
)

// CheckEligibility decides whether a new booking may be created on the slot
// right now. bookedCount counts appointments with payment pending or paid
// that are not cancelled.
//
// The 48-hour gate only fires for slots dated today with same-day booking
// disabled; future-dated slots are not hour-gated beyond the day boundary.
func CheckEligibility(slot *models.AvailabilitySlot, bookedCount int, now time.Time) Eligibility {
	if !slot.IsAvailable {
		return Eligibility{Eligible: false, Reason: ReasonSlotUnavailable}
	}

	if bookedCount >= slot.MaxAppointments {
		return Eligibility{Eligible: false, Reason: ReasonSlotFull}
	}

	if sameDay(slot.SlotDate, now) && !slot.AllowSameDayBooking {
		slotStart, err := AtTime(atDay(now), slot.StartTime)
		if err != nil {
			return Eligibility{Eligible: false, Reason: ReasonSlotUnavailable}
		}
		if slotStart.Sub(now).Hours() < MinAdvanceHours {
			return Eligibility{Eligible: false, Reason: ReasonAdvanceNotice}
		}
	}

	return Eligibility{Eligible: true}
}

// PaymentDeadline computes the absolute cutoff for an unpaid booking:
// same-day slots must be paid before the appointment itself, everything
// else 48 hours before.
func PaymentDeadline(slot *models.AvailabilitySlot, appointmentStart time.Time) time.Time {
	if slot.AllowSameDayBooking {
		return appointmentStart
	}
	return appointmentStart.Add(-MinAdvanceHours * time.Hour)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func atDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

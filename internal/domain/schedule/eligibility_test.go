package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ShasthoSeba/telemed-scheduler/internal/models"
)

func testSlot() *models.AvailabilitySlot {
	return &models.AvailabilitySlot{
		ID:                  1,
		DoctorID:            1,
		SlotDate:            date(2025, 1, 10),
		StartTime:           "10:00",
		EndTime:             "12:00",
		ConsultationFee:     500,
		AppointmentDuration: 15,
		MaxAppointments:     8,
		AllowSameDayBooking: false,
		IsAvailable:         true,
	}
}

func TestCheckEligibility_Full(t *testing.T) {
	slot := testSlot()
	now := time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC)

	elig := CheckEligibility(slot, 8, now)
	assert.False(t, elig.Eligible)
	assert.Equal(t, ReasonSlotFull, elig.Reason)

	elig = CheckEligibility(slot, 9, now)
	assert.False(t, elig.Eligible)
}

func TestCheckEligibility_Unavailable(t *testing.T) {
	slot := testSlot()
	slot.IsAvailable = false
	now := time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC)

	elig := CheckEligibility(slot, 0, now)
	assert.False(t, elig.Eligible)
	assert.Equal(t, ReasonSlotUnavailable, elig.Reason)
}

func TestCheckEligibility_SameDayAdvanceNotice(t *testing.T) {
	slot := testSlot()

	// slot dated today starting 10:00, checked at 09:00: only one hour away
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	elig := CheckEligibility(slot, 0, now)
	assert.False(t, elig.Eligible)
	assert.Equal(t, ReasonAdvanceNotice, elig.Reason)

	// same moment, but the slot allows same-day booking
	slot.AllowSameDayBooking = true
	elig = CheckEligibility(slot, 0, now)
	assert.True(t, elig.Eligible)
}

func TestCheckEligibility_FutureDateNotHourGated(t *testing.T) {
	// A slot two days out is bookable regardless of hour-of-day, even with
	// same-day booking disabled. Documented behavior, not a bug.
	slot := testSlot()
	now := time.Date(2025, 1, 8, 23, 0, 0, 0, time.UTC)

	elig := CheckEligibility(slot, 0, now)
	assert.True(t, elig.Eligible)
}

func TestPaymentDeadline(t *testing.T) {
	start := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

	slot := testSlot()
	assert.Equal(t, start.Add(-48*time.Hour), PaymentDeadline(slot, start))

	slot.AllowSameDayBooking = true
	assert.Equal(t, start, PaymentDeadline(slot, start))
}

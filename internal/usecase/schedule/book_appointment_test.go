package schedule

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/ShasthoSeba/telemed-scheduler/internal/domain/schedule"
	"github.com/ShasthoSeba/telemed-scheduler/internal/httperr"
	"github.com/ShasthoSeba/telemed-scheduler/internal/models"
)

func seedSlot(t *testing.T, repo *fakeRepo, mutate func(*models.AvailabilitySlot)) models.AvailabilitySlot {
	t.Helper()

	slot := models.AvailabilitySlot{
		DoctorID:            7,
		SlotDate:            day(2026, time.March, 10),
		StartTime:           "09:00",
		EndTime:             "12:00",
		ConsultationFee:     500,
		AppointmentDuration: 15,
		MaxAppointments:     3,
		IsAvailable:         true,
	}
	if mutate != nil {
		mutate(&slot)
	}

	slots := []models.AvailabilitySlot{slot}
	require.NoError(t, repo.CreateSlots(context.Background(), slots))
	return slots[0]
}

func TestBookAppointment_CreatesProvisionalReservation(t *testing.T) {
	repo := newFakeRepo()
	slot := seedSlot(t, repo, nil)
	uc := NewBookAppointment(repo, fixedClock(), nil)

	ap, err := uc.Execute(context.Background(), BookAppointmentInput{
		PatientID: 42,
		DoctorID:  7,
		SlotID:    slot.ID,
		Notes:     "follow-up",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusReserved), ap.Status)
	assert.Equal(t, string(domain.PaymentPending), ap.PaymentStatus)
	assert.Nil(t, ap.SerialNumber)
	assert.Equal(t, 500.0, ap.AmountBDT)
	assert.Equal(t, day(2026, time.March, 10).Add(9*time.Hour), ap.AppointmentDate)
	// not a same-day booking, so the deadline is 48h before the slot opens
	assert.Equal(t, ap.AppointmentDate.Add(-48*time.Hour), ap.PaymentDeadline)
}

func TestBookAppointment_PayNowStartsPendingPayment(t *testing.T) {
	repo := newFakeRepo()
	slot := seedSlot(t, repo, nil)
	uc := NewBookAppointment(repo, fixedClock(), nil)

	ap, err := uc.Execute(context.Background(), BookAppointmentInput{
		PatientID: 42,
		DoctorID:  7,
		SlotID:    slot.ID,
		PayNow:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPendingPayment), ap.Status)
}

func TestBookAppointment_WrongDoctorLooksLikeMissingSlot(t *testing.T) {
	repo := newFakeRepo()
	slot := seedSlot(t, repo, nil)
	uc := NewBookAppointment(repo, fixedClock(), nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		PatientID: 42,
		DoctorID:  99,
		SlotID:    slot.ID,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_not_found"))
}

func TestBookAppointment_FullSlotRejected(t *testing.T) {
	repo := newFakeRepo()
	slot := seedSlot(t, repo, nil)
	uc := NewBookAppointment(repo, fixedClock(), nil)

	for i := 0; i < 3; i++ {
		_, err := uc.Execute(context.Background(), BookAppointmentInput{
			PatientID: uint(100 + i),
			DoctorID:  7,
			SlotID:    slot.ID,
		})
		require.NoError(t, err)
	}

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		PatientID: 200,
		DoctorID:  7,
		SlotID:    slot.ID,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_full"))
	assert.True(t, httperr.IsKind(err, httperr.KindCapacityExceeded))
}

func TestBookAppointment_ConcurrentBookingsNeverOverbook(t *testing.T) {
	repo := newFakeRepo()
	slot := seedSlot(t, repo, nil)
	uc := NewBookAppointment(repo, fixedClock(), nil)

	const attempts = 20
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), BookAppointmentInput{
				PatientID: uint(1000 + i),
				DoctorID:  7,
				SlotID:    slot.ID,
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, httperr.IsBusiness(err, "slot_full"))
		}
	}
	assert.Equal(t, slot.MaxAppointments, succeeded)

	active, err := repo.CountActiveAppointments(context.Background(), slot.ID)
	require.NoError(t, err)
	assert.Equal(t, slot.MaxAppointments, active)
}

func TestBookAppointment_SameDayAdvanceNotice(t *testing.T) {
	repo := newFakeRepo()
	// slot later today, same-day booking disabled
	slot := seedSlot(t, repo, func(s *models.AvailabilitySlot) {
		s.SlotDate = day(2026, time.March, 2)
		s.StartTime = "11:00"
		s.EndTime = "13:00"
	})
	uc := NewBookAppointment(repo, fixedClock(), nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		PatientID: 42,
		DoctorID:  7,
		SlotID:    slot.ID,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "advance_notice_required"))
}

func TestBookAppointment_SameDayAllowedWhenSlotPermits(t *testing.T) {
	repo := newFakeRepo()
	slot := seedSlot(t, repo, func(s *models.AvailabilitySlot) {
		s.SlotDate = day(2026, time.March, 2)
		s.StartTime = "11:00"
		s.EndTime = "13:00"
		s.AllowSameDayBooking = true
	})
	uc := NewBookAppointment(repo, fixedClock(), nil)

	ap, err := uc.Execute(context.Background(), BookAppointmentInput{
		PatientID: 42,
		DoctorID:  7,
		SlotID:    slot.ID,
	})
	require.NoError(t, err)
	// same-day booking pays by the appointment time itself
	assert.Equal(t, ap.AppointmentDate, ap.PaymentDeadline)
}

func TestBookAppointment_UnavailableSlotRejected(t *testing.T) {
	repo := newFakeRepo()
	slot := seedSlot(t, repo, func(s *models.AvailabilitySlot) {
		s.IsAvailable = false
	})
	uc := NewBookAppointment(repo, fixedClock(), nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		PatientID: 42,
		DoctorID:  7,
		SlotID:    slot.ID,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, domain.ReasonSlotUnavailable))
}

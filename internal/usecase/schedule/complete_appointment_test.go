package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/ShasthoSeba/telemed-scheduler/internal/domain/schedule"
	"github.com/ShasthoSeba/telemed-scheduler/internal/httperr"
	"github.com/ShasthoSeba/telemed-scheduler/internal/payment"
)

func TestCompleteAppointment_ConfirmedBecomesCompleted(t *testing.T) {
	repo := newFakeRepo()
	slot := seedSlot(t, repo, nil)
	ap := seedReservation(t, repo, slot, 42)

	_, err := NewCompletePayment(repo, payment.NewMockGateway(), fixedClock(), nil).
		Execute(context.Background(), CompletePaymentInput{
			PatientID: 42, AppointmentID: ap.ID, Method: payment.MethodBkash,
		})
	require.NoError(t, err)

	uc := NewCompleteAppointment(repo, fixedClock(), nil)
	done, err := uc.Execute(context.Background(), 7, ap.ID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), done.Status)
	require.NotNil(t, done.CompletedAt)
}

func TestCompleteAppointment_UnpaidRejected(t *testing.T) {
	repo := newFakeRepo()
	slot := seedSlot(t, repo, nil)
	ap := seedReservation(t, repo, slot, 42)

	uc := NewCompleteAppointment(repo, fixedClock(), nil)
	_, err := uc.Execute(context.Background(), 7, ap.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidState))
}

func TestCompleteAppointment_OtherDoctorsAppointmentHidden(t *testing.T) {
	repo := newFakeRepo()
	slot := seedSlot(t, repo, nil)
	ap := seedReservation(t, repo, slot, 42)

	uc := NewCompleteAppointment(repo, fixedClock(), nil)
	_, err := uc.Execute(context.Background(), 8, ap.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestDeleteSlot_OwnSlotOnly(t *testing.T) {
	repo := newFakeRepo()
	slot := seedSlot(t, repo, nil)

	uc := NewDeleteSlot(repo, nil)

	err := uc.Execute(context.Background(), 99, slot.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_not_found"))

	require.NoError(t, uc.Execute(context.Background(), 7, slot.ID))

	_, err = repo.GetSlotByID(context.Background(), slot.ID)
	require.Error(t, err)
}

package schedule

import (
	"context"

	"github.com/ShasthoSeba/telemed-scheduler/internal/clock"
	domain "github.com/ShasthoSeba/telemed-scheduler/internal/domain/schedule"
	"github.com/ShasthoSeba/telemed-scheduler/internal/httperr"
)

type GetJoinWindow struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewGetJoinWindow(
	repo domain.Repository,
	clk clock.Clock,
) *GetJoinWindow {
	return &GetJoinWindow{
		repo:  repo,
		clock: clk,
	}
}

// Execute reports whether the participant may enter the consultation room
// right now. Allowed from 15 minutes before the reservation start until its
// end; only the patient or the doctor of the appointment may ask.
func (uc *GetJoinWindow) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (domain.JoinWindow, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return domain.JoinWindow{}, err
	}

	if ap.PatientID != userID && ap.DoctorID != userID {
		return domain.JoinWindow{}, httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
	}

	return domain.CanJoin(ap.ReservationStartTime, ap.ReservationEndTime, uc.clock.Now()), nil
}

package schedule

import (
	"context"
	"time"

	"github.com/ShasthoSeba/telemed-scheduler/internal/audit"
	"github.com/ShasthoSeba/telemed-scheduler/internal/clock"
	domain "github.com/ShasthoSeba/telemed-scheduler/internal/domain/schedule"
	"github.com/ShasthoSeba/telemed-scheduler/internal/httperr"
	"github.com/ShasthoSeba/telemed-scheduler/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		clock: clk,
		audit: audit,
	}
}

// Execute cancels the patient's appointment. Allowed up to exactly 48 hours
// before the appointment, inclusive. Serials of other appointments on the
// slot are never renumbered. Cancelling an appointment the deadline sweep
// already expired is a no-op, not an error.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	patientID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForPatient(ctx, appointmentID, patientID)
	if err != nil {
		return nil, err
	}

	if ap.Status == string(domain.StatusCancelled) {
		return ap, nil
	}

	if err := domain.CanCancel(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if ap.AppointmentDate.Sub(now) < domain.MinAdvanceHours*time.Hour {
		return nil, httperr.ErrTooLate("cancellation_too_late",
			"Appointments cannot be cancelled less than 48 hours before the scheduled time.")
	}

	ap.Status = string(domain.StatusCancelled)
	ap.CancelledAt = &now

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &patientID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

package schedule

import (
	"context"

	"github.com/ShasthoSeba/telemed-scheduler/internal/audit"
	"github.com/ShasthoSeba/telemed-scheduler/internal/clock"
	domain "github.com/ShasthoSeba/telemed-scheduler/internal/domain/schedule"
	"github.com/ShasthoSeba/telemed-scheduler/internal/httperr"
	"github.com/ShasthoSeba/telemed-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	PatientID uint
	DoctorID  uint
	SlotID    uint

	Notes  string
	PayNow bool
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		clock: clk,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute creates a provisional (unpaid) appointment on the slot. The
// eligibility check runs inside the transaction under a slot row lock so a
// stale listing can never overbook the slot.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	now := uc.clock.Now()

	var created *models.Appointment

	err := uc.repo.InTx(ctx, func(tx domain.Repository) error {

		slot, err := tx.GetSlotForUpdate(ctx, in.SlotID)
		if err != nil {
			return err
		}

		if slot.DoctorID != in.DoctorID {
			return httperr.ErrNotFound("slot_not_found", "Slot not found.")
		}

		booked, err := tx.CountActiveAppointments(ctx, in.SlotID)
		if err != nil {
			return err
		}

		if elig := domain.CheckEligibility(slot, booked, now); !elig.Eligible {
			switch elig.Reason {
			case domain.ReasonSlotFull:
				return httperr.ErrCapacityExceeded("slot_full", "This slot is fully booked.")
			case domain.ReasonAdvanceNotice:
				return httperr.ErrTooLate("advance_notice_required", "This slot requires booking at least 48 hours in advance.")
			default:
				return httperr.ErrValidation(elig.Reason, "This slot cannot be booked.")
			}
		}

		appointmentStart, err := domain.AtTime(slot.SlotDate, slot.StartTime)
		if err != nil {
			return httperr.ErrValidation("invalid_slot_time", "Slot has an invalid start time.")
		}

		ap := &models.Appointment{
			PatientID:       in.PatientID,
			DoctorID:        in.DoctorID,
			SlotID:          slot.ID,
			AppointmentDate: appointmentStart,
			Status:          string(domain.InitialStatus(in.PayNow)),
			PaymentStatus:   string(domain.PaymentPending),
			PaymentDeadline: domain.PaymentDeadline(slot, appointmentStart),
			AmountBDT:       slot.ConsultationFee,
			PatientNotes:    in.Notes,
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		created = ap
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.PatientID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &created.ID,
		Metadata: map[string]any{
			"slot_id": in.SlotID,
			"pay_now": in.PayNow,
		},
	})

	return created, nil
}

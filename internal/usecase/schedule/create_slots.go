package schedule

import (
	"context"

	"github.com/ShasthoSeba/telemed-scheduler/internal/audit"
	"github.com/ShasthoSeba/telemed-scheduler/internal/clock"
	domain "github.com/ShasthoSeba/telemed-scheduler/internal/domain/schedule"
	"github.com/ShasthoSeba/telemed-scheduler/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type CreateSlots struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewCreateSlots(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *CreateSlots {
	return &CreateSlots{
		repo:  repo,
		clock: clk,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute expands the doctor's date range into one slot per calendar day,
// all sharing the same window, fee, duration and capacity. Validation either
// passes completely or nothing is written. Overlap with slots the doctor
// already published is not checked; correcting duplicates is on the doctor.
func (uc *CreateSlots) Execute(
	ctx context.Context,
	in domain.CreateSlotsInput,
) ([]models.AvailabilitySlot, error) {

	now := uc.clock.Now()

	if err := in.Validate(now); err != nil {
		return nil, err
	}

	days := in.Days()
	slots := make([]models.AvailabilitySlot, 0, len(days))
	for _, day := range days {
		slots = append(slots, models.AvailabilitySlot{
			DoctorID:            in.DoctorID,
			SlotDate:            day,
			StartTime:           in.StartTime,
			EndTime:             in.EndTime,
			ConsultationFee:     in.ConsultationFee,
			AppointmentDuration: in.AppointmentDuration,
			MaxAppointments:     in.MaxAppointments,
			AllowSameDayBooking: in.AllowSameDayBooking,
			IsAvailable:         true,
		})
	}

	if err := uc.repo.CreateSlots(ctx, slots); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &in.DoctorID,
		Action: "slots_created",
		Entity: "availability_slot",
		Metadata: map[string]any{
			"count":     len(slots),
			"from_date": in.FromDate.Format("2006-01-02"),
			"to_date":   in.ToDate.Format("2006-01-02"),
		},
	})

	return slots, nil
}

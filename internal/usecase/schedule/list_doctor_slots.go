package schedule

import (
	"context"
	"time"

	"github.com/ShasthoSeba/telemed-scheduler/internal/clock"
	domain "github.com/ShasthoSeba/telemed-scheduler/internal/domain/schedule"
	"github.com/ShasthoSeba/telemed-scheduler/internal/models"
)

type ListDoctorSlots struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewListDoctorSlots(
	repo domain.Repository,
	clk clock.Clock,
) *ListDoctorSlots {
	return &ListDoctorSlots{
		repo:  repo,
		clock: clk,
	}
}

// Execute lists the doctor's own upcoming slots, today included, out to the
// publishing horizon.
func (uc *ListDoctorSlots) Execute(
	ctx context.Context,
	doctorID uint,
) ([]models.AvailabilitySlot, error) {

	now := uc.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return uc.repo.ListSlotsForDoctor(
		ctx,
		doctorID,
		today,
		today.AddDate(0, 0, domain.MaxAdvanceDays),
	)
}

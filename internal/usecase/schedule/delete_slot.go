package schedule

import (
	"context"

	"github.com/ShasthoSeba/telemed-scheduler/internal/audit"
	domain "github.com/ShasthoSeba/telemed-scheduler/internal/domain/schedule"
)

type DeleteSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteSlot {
	return &DeleteSlot{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes one of the doctor's own slots. Bookings already made on
// it are left untouched; dealing with them is the doctor's responsibility.
func (uc *DeleteSlot) Execute(
	ctx context.Context,
	doctorID uint,
	slotID uint,
) error {

	if err := uc.repo.DeleteSlot(ctx, slotID, doctorID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &doctorID,
		Action:   "slot_deleted",
		Entity:   "availability_slot",
		EntityID: &slotID,
	})

	return nil
}

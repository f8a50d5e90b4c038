package schedule

import (
	"context"
	"time"

	"github.com/ShasthoSeba/telemed-scheduler/internal/clock"
	domain "github.com/ShasthoSeba/telemed-scheduler/internal/domain/schedule"
	"github.com/ShasthoSeba/telemed-scheduler/internal/models"
)

// BookableWindowDays is how far ahead a patient sees a doctor's slots.
const BookableWindowDays = 30

type SlotAvailability struct {
	Slot              models.AvailabilitySlot `json:"slot"`
	BookedCount       int                     `json:"booked_count"`
	RemainingCapacity int                     `json:"remaining_capacity"`
}

type ListAvailability struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewListAvailability(
	repo domain.Repository,
	clk clock.Clock,
) *ListAvailability {
	return &ListAvailability{
		repo:  repo,
		clock: clk,
	}
}

// Execute returns the doctor's bookable slots over the next 30 days with
// remaining capacity. Slots that are full or still inside the advance-notice
// window are filtered out; the same check runs again at booking-commit time
// under a slot lock, this listing is only a snapshot.
func (uc *ListAvailability) Execute(
	ctx context.Context,
	doctorID uint,
) ([]SlotAvailability, error) {

	now := uc.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	slots, err := uc.repo.ListSlotsForDoctor(
		ctx,
		doctorID,
		today,
		today.AddDate(0, 0, BookableWindowDays),
	)
	if err != nil {
		return nil, err
	}

	out := make([]SlotAvailability, 0, len(slots))
	for i := range slots {
		slot := slots[i]

		booked, err := uc.repo.CountActiveAppointments(ctx, slot.ID)
		if err != nil {
			return nil, err
		}

		if elig := domain.CheckEligibility(&slot, booked, now); !elig.Eligible {
			continue
		}

		out = append(out, SlotAvailability{
			Slot:              slot,
			BookedCount:       booked,
			RemainingCapacity: slot.MaxAppointments - booked,
		})
	}

	return out, nil
}

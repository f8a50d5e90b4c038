package schedule

import (
	"context"

	"github.com/ShasthoSeba/telemed-scheduler/internal/audit"
	"github.com/ShasthoSeba/telemed-scheduler/internal/clock"
	domain "github.com/ShasthoSeba/telemed-scheduler/internal/domain/schedule"
)

type ExpireUnpaid struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewExpireUnpaid(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *ExpireUnpaid {
	return &ExpireUnpaid{
		repo:  repo,
		clock: clk,
		audit: audit,
	}
}

// Execute cancels every reservation whose payment deadline has passed while
// still unpaid, releasing their capacity. One conditional update, so the
// periodic sweep needs no locking and reruns are no-ops.
func (uc *ExpireUnpaid) Execute(ctx context.Context) (int64, error) {
	now := uc.clock.Now()

	expired, err := uc.repo.ExpireUnpaidReservations(ctx, now)
	if err != nil {
		return 0, err
	}

	if expired > 0 {
		uc.audit.Dispatch(audit.Event{
			Action: "reservations_expired",
			Entity: "appointment",
			Metadata: map[string]any{
				"count": expired,
			},
		})
	}

	return expired, nil
}

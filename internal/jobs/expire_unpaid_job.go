package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	ucSchedule "github.com/ShasthoSeba/telemed-scheduler/internal/usecase/schedule"
)

// StartExpirySweep schedules the unpaid-reservation sweep. Each pass
// cancels reservations whose payment deadline has lapsed so their capacity
// returns to the pool. Returns the running cron so callers can Stop it.
func StartExpirySweep(spec string, uc *ucSchedule.ExpireUnpaid) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		expired, err := uc.Execute(ctx)
		if err != nil {
			log.Printf("expiry sweep failed: %v", err)
			return
		}
		if expired > 0 {
			log.Printf("expiry sweep: cancelled %d unpaid reservation(s)", expired)
		}
	})
	if err != nil {
		log.Fatalf("failed to schedule expiry sweep: %v", err)
	}

	c.Start()
	return c
}

package handlers

import (
	"time"

	"github.com/ShasthoSeba/telemed-scheduler/internal/timezone"
)

func parseDate(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(tz),
	)
}

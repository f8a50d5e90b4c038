package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShasthoSeba/telemed-scheduler/internal/timezone"
)

// Date columns come back from the store as midnight UTC. Without re-anchoring,
// every timestamp derived from the slot date lands six hours late as an
// instant in Asia/Dhaka.
func TestAnchorDate_RealignsStoreDates(t *testing.T) {
	dhaka := timezone.Location("Asia/Dhaka")

	fromStore := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	anchored := AnchorDate(fromStore, dhaka)

	start, err := AtTime(anchored, "09:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 10, 9, 0, 0, 0, dhaka), start)
	assert.True(t, start.Equal(time.Date(2026, time.March, 10, 3, 0, 0, 0, time.UTC)))

	naive, err := AtTime(fromStore, "09:00")
	require.NoError(t, err)
	assert.Equal(t, 6*time.Hour, naive.Sub(start))

	// the 48-hour cutoff measured by a Dhaka clock comes out exact
	now := time.Date(2026, time.March, 8, 9, 0, 0, 0, dhaka)
	assert.Equal(t, 48*time.Hour, start.Sub(now))
}

func TestAnchorDate_KeepsCalendarDay(t *testing.T) {
	dhaka := timezone.Location("Asia/Dhaka")

	d := time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)
	anchored := AnchorDate(d, dhaka)

	assert.Equal(t, 2026, anchored.Year())
	assert.Equal(t, time.December, anchored.Month())
	assert.Equal(t, 31, anchored.Day())
	assert.Zero(t, anchored.Hour())
	assert.Equal(t, dhaka, anchored.Location())
}

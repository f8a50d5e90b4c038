package clock

import (
	"time"

	"github.com/ShasthoSeba/telemed-scheduler/internal/timezone"
)

// Clock is the single time source for every "now" comparison in the
// scheduling core. Use cases take it via their constructors so tests can
// pin the current moment.
type Clock interface {
	Now() time.Time
}

type System struct {
	tz string
}

func NewSystem(tz string) System {
	return System{tz: tz}
}

func (s System) Now() time.Time {
	return timezone.NowIn(s.tz)
}

// Fixed always reports the same moment. Test helper.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}

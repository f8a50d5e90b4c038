package schedule

import (
	"fmt"
	"math"
	"time"
)

// JoinGraceMinutes is how early a participant may enter the room.
const JoinGraceMinutes = 15

type JoinWindow struct {
	CanJoin           bool   `json:"can_join"`
	Reason            string `json:"reason,omitempty"`
	MinutesUntilStart int    `json:"minutes_until_start,omitempty"`
}

// CanJoin gates entry to the consultation room: allowed from 15 minutes
// before the reservation start until its end.
func CanJoin(reservationStart, reservationEnd *time.Time, now time.Time) JoinWindow {
	if reservationStart == nil || reservationEnd == nil {
		return JoinWindow{CanJoin: false, Reason: "appointment time not set"}
	}

	opens := reservationStart.Add(-JoinGraceMinutes * time.Minute)

	if now.Before(opens) {
		minutes := int(math.Ceil(opens.Sub(now).Minutes()))
		return JoinWindow{
			CanJoin:           false,
			Reason:            fmt.Sprintf("available in %d minutes", minutes),
			MinutesUntilStart: minutes,
		}
	}

	if now.After(*reservationEnd) {
		return JoinWindow{CanJoin: false, Reason: "appointment has ended"}
	}

	return JoinWindow{CanJoin: true}
}

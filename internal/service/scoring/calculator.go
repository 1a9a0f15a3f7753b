package scoring

import (
	"time"

	"github.com/echal/gembira-sub001/internal/domain/attendance"
)

// Window is the configured check-in interval, expressed as minutes since
// midnight in the deployment timezone. It is injected from configuration and
// may change between deployments; nothing here hardcodes it.
type Window struct {
	StartMinutes int
	EndMinutes   int
	MaxScore     int
}

// Calculator converts one attendance event into a daily score and a
// qualification flag. It is pure: the same event and window always produce
// the same result, and every read surface (rankings, percentages, XP) must
// go through it so their numbers cannot drift apart.
type Calculator struct {
	loc    *time.Location
	window Window
}

func NewCalculator(loc *time.Location, window Window) *Calculator {
	return &Calculator{loc: loc, window: window}
}

// Window returns the configured check-in window.
func (c *Calculator) Window() Window {
	return c.window
}

// Location returns the deployment timezone the window is expressed in.
func (c *Calculator) Location() *time.Location {
	return c.loc
}

// Score returns the daily score for an event and whether it qualifies for
// ranking. Contract:
//   - no check-in: (0, false)
//   - check-in at or before window start: (MaxScore, true)
//   - check-in strictly after window end: (0, false); the event still exists
//     and counts as "present but late" in percentage accounting
//   - inside the window: step-linear decay per minute elapsed, never below 1
func (c *Calculator) Score(event attendance.Attendance) (int, bool) {
	if event.ClockIn == nil {
		return 0, false
	}

	clockInLocal := event.ClockIn.In(c.loc)
	minuteOfDay := clockInLocal.Hour()*60 + clockInLocal.Minute()

	if minuteOfDay <= c.window.StartMinutes {
		return c.window.MaxScore, true
	}
	if minuteOfDay > c.window.EndMinutes {
		return 0, false
	}

	elapsed := minuteOfDay - c.window.StartMinutes
	length := c.window.EndMinutes - c.window.StartMinutes
	score := c.window.MaxScore - elapsed*(c.window.MaxScore-1)/length
	if score < 1 {
		score = 1
	}
	return score, true
}

// Qualifies reports whether the event earns a place in ranking lists.
func (c *Calculator) Qualifies(event attendance.Attendance) bool {
	_, ok := c.Score(event)
	return ok
}

// IsPresentLate reports whether the event is present but checked in after the
// window end. Present-late and absent are distinct categories in attendance
// percentage accounting.
func (c *Calculator) IsPresentLate(event attendance.Attendance) bool {
	if event.ClockIn == nil {
		return false
	}
	return !c.Qualifies(event)
}

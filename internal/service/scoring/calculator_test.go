package scoring

import (
	"testing"
	"time"

	"github.com/echal/gembira-sub001/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCalculator(t *testing.T) *Calculator {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Makassar")
	require.NoError(t, err)
	// 07:00 - 08:15, max 100
	return NewCalculator(loc, Window{StartMinutes: 7 * 60, EndMinutes: 8*60 + 15, MaxScore: 100})
}

func eventAt(t *testing.T, clock string) attendance.Attendance {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Makassar")
	require.NoError(t, err)
	parsed, err := time.ParseInLocation("2006-01-02 15:04", "2025-03-10 "+clock, loc)
	require.NoError(t, err)
	utc := parsed.UTC()
	return attendance.Attendance{EmployeeID: "emp-1", Date: parsed.Truncate(24 * time.Hour), ClockIn: &utc}
}

func TestScore_NoCheckIn(t *testing.T) {
	c := testCalculator(t)

	score, qualifies := c.Score(attendance.Attendance{EmployeeID: "emp-1"})

	assert.Equal(t, 0, score)
	assert.False(t, qualifies)
}

func TestScore_AtOrBeforeWindowStart(t *testing.T) {
	c := testCalculator(t)

	for _, clock := range []string{"05:30", "06:59", "07:00"} {
		score, qualifies := c.Score(eventAt(t, clock))
		assert.Equal(t, 100, score, "clock %s", clock)
		assert.True(t, qualifies, "clock %s", clock)
	}
}

func TestScore_AfterWindowEnd(t *testing.T) {
	c := testCalculator(t)

	for _, clock := range []string{"08:16", "09:00", "13:45"} {
		score, qualifies := c.Score(eventAt(t, clock))
		assert.Equal(t, 0, score, "clock %s", clock)
		assert.False(t, qualifies, "clock %s", clock)
	}
}

func TestScore_WithinWindowMonotonicallyNonIncreasing(t *testing.T) {
	c := testCalculator(t)

	prev := 101
	for minute := 7 * 60; minute <= 8*60+15; minute++ {
		clock := time.Date(2025, 3, 10, minute/60, minute%60, 0, 0, time.UTC).Format("15:04")
		score, qualifies := c.Score(eventAt(t, clock))

		assert.True(t, qualifies, "clock %s", clock)
		assert.GreaterOrEqual(t, score, 1, "clock %s", clock)
		assert.LessOrEqual(t, score, prev, "score must not increase at %s", clock)
		prev = score
	}
}

func TestScore_WindowEndStillQualifies(t *testing.T) {
	c := testCalculator(t)

	score, qualifies := c.Score(eventAt(t, "08:15"))

	assert.True(t, qualifies)
	assert.GreaterOrEqual(t, score, 1)
}

func TestIsPresentLate(t *testing.T) {
	c := testCalculator(t)

	assert.False(t, c.IsPresentLate(attendance.Attendance{EmployeeID: "emp-1"}), "absent is not late")
	assert.False(t, c.IsPresentLate(eventAt(t, "07:30")), "qualifying is not late")
	assert.True(t, c.IsPresentLate(eventAt(t, "09:00")))
}

func TestScore_WindowIsParameterNotConstant(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Makassar")
	require.NoError(t, err)
	narrow := NewCalculator(loc, Window{StartMinutes: 9 * 60, EndMinutes: 9*60 + 30, MaxScore: 50})

	score, qualifies := narrow.Score(eventAt(t, "09:00"))
	assert.Equal(t, 50, score)
	assert.True(t, qualifies)

	score, qualifies = narrow.Score(eventAt(t, "09:31"))
	assert.Equal(t, 0, score)
	assert.False(t, qualifies)
}

package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/echal/gembira-sub001/internal/domain/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) ListByMonth(ctx context.Context, year int, month int) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if h.Date.Year() == year && int(h.Date.Month()) == month {
			out = append(out, h)
		}
	}
	return out, nil
}

func testProvider(t *testing.T, holidays ...holiday.Holiday) *Provider {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Makassar")
	require.NoError(t, err)
	return NewProvider(loc, &fakeHolidayRepo{holidays: holidays})
}

func TestDaysInMonth(t *testing.T) {
	p := testProvider(t)

	assert.Equal(t, 31, p.DaysInMonth(2025, 1))
	assert.Equal(t, 28, p.DaysInMonth(2025, 2))
	assert.Equal(t, 29, p.DaysInMonth(2024, 2))
	assert.Equal(t, 30, p.DaysInMonth(2025, 4))
}

func TestWorkingDays_NoHolidays(t *testing.T) {
	p := testProvider(t)
	ctx := context.Background()

	// March 2025: 31 days, 10 weekend days
	got, err := p.WorkingDays(ctx, 2025, 3)
	require.NoError(t, err)
	assert.Equal(t, 21, got)
}

func TestWorkingDays_ExcludesHolidays(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Makassar")
	p := testProvider(t,
		holiday.Holiday{Date: time.Date(2025, 3, 31, 0, 0, 0, 0, loc), Name: "Nyepi"},     // Monday
		holiday.Holiday{Date: time.Date(2025, 3, 29, 0, 0, 0, 0, loc), Name: "Cuti"},      // Saturday, already non-working
	)
	ctx := context.Background()

	got, err := p.WorkingDays(ctx, 2025, 3)
	require.NoError(t, err)
	assert.Equal(t, 20, got, "weekday holiday excluded once, weekend holiday not double-counted")
}

func TestWorkingDaysSimple_AgreesWhenNoHolidays(t *testing.T) {
	p := testProvider(t)
	ctx := context.Background()

	for month := 1; month <= 12; month++ {
		detailed, err := p.WorkingDays(ctx, 2025, month)
		require.NoError(t, err)
		assert.Equal(t, detailed, p.WorkingDaysSimple(2025, month), "month %d", month)
	}
}

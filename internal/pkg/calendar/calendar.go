package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/echal/gembira-sub001/internal/domain/holiday"
)

// Provider supplies calendar arithmetic in the deployment's fixed civil
// timezone. Holidays come from the holidays table; weekends are Saturday and
// Sunday.
type Provider struct {
	loc         *time.Location
	holidayRepo holiday.HolidayRepository
}

func NewProvider(loc *time.Location, holidayRepo holiday.HolidayRepository) *Provider {
	return &Provider{loc: loc, holidayRepo: holidayRepo}
}

// Location returns the deployment timezone.
func (p *Provider) Location() *time.Location {
	return p.loc
}

// Now returns the current instant in the deployment timezone.
func (p *Provider) Now() time.Time {
	return time.Now().In(p.loc)
}

// DaysInMonth returns the number of calendar days in a month.
func (p *Provider) DaysInMonth(year int, month int) int {
	// day 0 of the next month is the last day of this month
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, p.loc).Day()
}

// IsWeekend reports whether a civil date falls on Saturday or Sunday.
func (p *Provider) IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// WorkingDays returns the number of required working days in a month:
// calendar days minus weekends and configured holidays. Holidays falling on
// a weekend are not double-counted.
func (p *Provider) WorkingDays(ctx context.Context, year int, month int) (int, error) {
	holidays, err := p.holidayRepo.ListByMonth(ctx, year, month)
	if err != nil {
		return 0, fmt.Errorf("failed to list holidays: %w", err)
	}

	holidayDays := make(map[int]bool, len(holidays))
	for _, h := range holidays {
		holidayDays[h.Date.Day()] = true
	}

	count := 0
	for day := 1; day <= p.DaysInMonth(year, month); day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.loc)
		if p.IsWeekend(date) || holidayDays[day] {
			continue
		}
		count++
	}
	return count, nil
}

// WorkingDaysSimple returns working days ignoring the holiday table. It is
// the fast path for multi-month comparisons and must equal WorkingDays for
// any month without holidays.
func (p *Provider) WorkingDaysSimple(year int, month int) int {
	count := 0
	for day := 1; day <= p.DaysInMonth(year, month); day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.loc)
		if p.IsWeekend(date) {
			continue
		}
		count++
	}
	return count
}

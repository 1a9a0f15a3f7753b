package holiday

import "context"

type HolidayRepository interface {
	// ListByMonth retrieves holidays falling in the given month
	ListByMonth(ctx context.Context, year int, month int) ([]Holiday, error)
}

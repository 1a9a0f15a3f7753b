package holiday

import "time"

// Holiday is a configured non-working day, dated in the deployment timezone.
type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	CreatedAt time.Time
}

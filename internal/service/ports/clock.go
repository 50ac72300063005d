package ports

import "time"

// Clock abstracts "now" so the past-date check stays testable.
type Clock interface {
	Now() time.Time
}

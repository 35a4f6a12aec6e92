package ports

import "time"

// Clock supplies the current local time.
type Clock interface {
	Now() time.Time
}

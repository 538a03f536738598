package adapter

import "time"

// Clock abstracts the current time so plan calculations can be tested
// against fixed dates.
type Clock interface {
	Now() time.Time
}

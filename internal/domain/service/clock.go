package service

import "time"

// Clock is the time source of use cases. Tests pass a fixed clock.
type Clock interface {
	Now() time.Time
}

package util

import (
	"time"

	"github.com/google/uuid"
)

// Clock reports the current instant. Services take one so tests can pin "today".
type Clock func() time.Time

// IDGenerator returns a fresh unique entity id.
type IDGenerator func() string

func SystemClock() time.Time {
	return time.Now()
}

func NewUUID() string {
	return uuid.NewString()
}

func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// Today is the calendar date of the clock's current instant in its local zone.
func (c Clock) Today() Date {
	return DateOf(c())
}

func (c Clock) Now() time.Time {
	return c()
}

// Package timer provides randomized, growing delays for retry loops.
package timer

import (
	"errors"
	"math/rand"
	"time"
)

var (
	errNegativeValue = errors.New("timer: negative min value")
	errMinMax        = errors.New("timer: min not lower than max")
)

// Jitter returns a random duration in the interval [min, max).
// It panics if min is negative or not lower than max.
func Jitter(min, max time.Duration) time.Duration {
	if min < 0 {
		panic(errNegativeValue)
	}
	if min >= max {
		panic(errMinMax)
	}

	return min + time.Duration(rand.Int63n(int64(max-min)))
}

// Backoff produces retry delays of at least Min.
// The upper bound starts at twice Min and doubles on every call,
// until it reaches Max. The zero value is not usable: Max must exceed Min.
type Backoff struct {
	Min, Max time.Duration

	ceiling time.Duration
}

func (b *Backoff) grow() {
	switch {
	case b.ceiling == 0:
		b.ceiling = 2 * b.Min
		if b.ceiling <= b.Min {
			b.ceiling = b.Min + time.Millisecond
		}
	case b.ceiling < b.Max:
		b.ceiling *= 2
	}
	if b.ceiling > b.Max {
		b.ceiling = b.Max
	}
}

// Next returns a Jitter between Min and the grown upper bound.
// It panics under the same conditions as Jitter.
func (b *Backoff) Next() time.Duration {
	b.grow()
	return Jitter(b.Min, b.ceiling)
}

// After waits for the Next delay and then sends the current time on the returned channel.
func (b *Backoff) After() <-chan time.Time {
	return time.After(b.Next())
}

// Reset restarts the upper bound at twice Min.
func (b *Backoff) Reset() {
	b.ceiling = 0
}

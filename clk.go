package tec

/*
clk.go contains the package clock, the single source of "now" and of
the current local UTC offset.
*/

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

var (
	cmu   sync.RWMutex
	clock clockwork.Clock = clockwork.NewRealClock()
)

/*
SetClock replaces the package clock with c and returns a function which
restores the previous one. A nil c installs the real clock.

The location of the instants returned by c decides the local offset
seen by [LocalOffset], [NewDateTime] and [DateTime.String]. Tests
typically install a fake clock:

	restore := SetClock(clockwork.NewFakeClockAt(
		time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("", -7*3600))))
	defer restore()
*/
func SetClock(c clockwork.Clock) (restore func()) {
	if c == nil {
		c = clockwork.NewRealClock()
	}

	cmu.Lock()
	defer cmu.Unlock()
	orig := clock
	clock = c

	return func() {
		cmu.Lock()
		defer cmu.Unlock()
		clock = orig
	}
}

func now() time.Time {
	cmu.RLock()
	defer cmu.RUnlock()
	return clock.Now()
}

/*
LocalOffset returns the UTC [Offset] currently in effect according to
the package clock.
*/
func LocalOffset() Offset { return OffsetOf(now()) }

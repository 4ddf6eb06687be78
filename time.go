package tec

/*
time.go implements the decimal clock units: Time (a time of day) and
Duration (a span), both counted in fracs.
*/

import "time"

/*
Time implements a TEC time of day in fracs. A full day is roughly
[FracsPerDay] fracs; larger values are representable and never
clamped.
*/
type Time uint32

/*
TimeFromHMS returns the [Time] equivalent of the wall clock reading
hour:minute:second, scaled through [TimeScale] and truncated.
*/
func TimeFromHMS(hour, minute, second uint32) Time {
	secs := hour*3600 + minute*60 + second
	return Time(sat32(float32(secs) * TimeScale))
}

/*
TimeFromHour returns the [Time] at the top of the given hour.
*/
func TimeFromHour(hour uint32) Time {
	return Time(sat32(float32(hour*3600) * TimeScale))
}

/*
TimeFromTime returns the [Time] of t's wall clock, read in t's own
location. Sub-second precision is discarded.
*/
func TimeFromTime(t time.Time) Time {
	return TimeFromHMS(uint32(t.Hour()), uint32(t.Minute()), uint32(t.Second()))
}

/*
TimeNow returns the current [Time] of the package clock.
*/
func TimeNow() Time { return TimeFromTime(now()) }

/*
ParseTime returns an instance of [Time] alongside an error following an
attempt to parse s. A single leading colon is permitted and ignored; the
remainder is a plain count of fracs, e.g.: ":38302" or "38302".
*/
func ParseTime(s string) (Time, error) {
	s = trimPfx(s, ":")
	n, err := puint(s, 10, 32)
	if err != nil {
		return 0, errorBadNumber("TIME", s, err)
	}
	return Time(n), nil
}

// Add returns the sum of the receiver and o.
func (r Time) Add(o Time) Time { return r + o }

// Sub returns the difference of the receiver and o.
func (r Time) Sub(o Time) Time { return r - o }

/*
Secs returns the number of seconds since midnight denoted by the
receiver, the inverse of [TimeFromHMS] up to truncation.
*/
func (r Time) Secs() uint32 {
	return sat32(float32(r) / TimeScale)
}

/*
String returns the receiver zero-padded to five digits, with at most one
trailing zero removed: Time(50000) yields "5000", Time(50001) "50001" and
Time(0) "0000".
*/
func (r Time) String() string {
	s := padLeft(fmtUint(uint64(r), 10), 5)
	if hasSfx(s, "0") {
		s = s[:len(s)-1]
	}
	return s
}

/*
MarshalText returns the unpadded decimal fracs of the receiver. Unlike
[Time.String], the result always parses back to the same value.
*/
func (r Time) MarshalText() ([]byte, error) {
	return []byte(fmtUint(uint64(r), 10)), nil
}

/*
UnmarshalText decodes b through [ParseTime].
*/
func (r *Time) UnmarshalText(b []byte) (err error) {
	*r, err = ParseTime(string(b))
	return
}

/*
Duration implements a span of time in fracs.
*/
type Duration uint64

/*
DurationFromSecs returns the [Duration] of secs seconds, scaled
through [DurationScale] and truncated.
*/
func DurationFromSecs(secs uint64) Duration {
	return Duration(sat64(float64(secs) * DurationScale))
}

/*
DurationFromStd returns the [Duration] of d. Sub-second precision is
discarded, and negative values are treated as zero.
*/
func DurationFromStd(d time.Duration) Duration {
	if d < 0 {
		return 0
	}
	return DurationFromSecs(uint64(d / time.Second))
}

/*
ParseDuration returns an instance of [Duration] alongside an error
following an attempt to parse s. The trailing unit is matched without
regard to case:

  - "360s" denotes 360 seconds, converted through [DurationFromSecs]
  - "417f" denotes 417 fracs
  - "417" also denotes 417 fracs
*/
func ParseDuration(s string, constraints ...Constraint[Duration]) (Duration, error) {
	var (
		n   uint64
		err error
		d   Duration
	)

	low := lc(s)
	switch {
	case hasSfx(low, "s"):
		if n, err = puint(trimSfx(low, "s"), 10, 64); err == nil {
			d = DurationFromSecs(n)
		}
	case hasSfx(low, "f"):
		if n, err = puint(trimSfx(low, "f"), 10, 64); err == nil {
			d = Duration(n)
		}
	default:
		if n, err = puint(s, 10, 64); err == nil {
			d = Duration(n)
		}
	}

	if err != nil {
		return 0, errorBadNumber("DURATION", s, err)
	}

	debugEvent(EventParse, "ParseDuration", s, d)
	if err = constrain(d, constraints); err != nil {
		return 0, err
	}

	return d, nil
}

/*
Secs returns the number of whole seconds denoted by the receiver. The
conversion is lossy but monotonic.
*/
func (r Duration) Secs() uint64 {
	return sat64(float64(r) / DurationScale)
}

/*
Std returns the receiver as a [time.Duration] of whole seconds.
*/
func (r Duration) Std() time.Duration {
	return time.Duration(r.Secs()) * time.Second
}

// Add returns the sum of the receiver and o.
func (r Duration) Add(o Duration) Duration { return r + o }

// Sub returns the difference of the receiver and o.
func (r Duration) Sub(o Duration) Duration { return r - o }

/*
Lt returns true if the receiver is strictly less than o.
*/
func (r Duration) Lt(o Duration) bool { return r < o }

/*
Le returns true if the receiver is less than or equal to o.
*/
func (r Duration) Le(o Duration) bool { return r <= o }

/*
Compare returns -1, 0 or +1 depending on whether the receiver is less
than, equal to or greater than o.
*/
func (r Duration) Compare(o Duration) int {
	switch {
	case r < o:
		return -1
	case r > o:
		return 1
	}
	return 0
}

func (r Duration) String() string { return fmtUint(uint64(r), 10) }

/*
MarshalText returns the receiver in its plain fracs form.
*/
func (r Duration) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

/*
UnmarshalText decodes b through [ParseDuration].
*/
func (r *Duration) UnmarshalText(b []byte) (err error) {
	*r, err = ParseDuration(string(b))
	return
}

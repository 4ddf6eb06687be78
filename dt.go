package tec

/*
dt.go implements the TEC DateTime composite, its textual grammar and
the fallback onto Gregorian free-text input.
*/

import (
	"time"

	"github.com/araddon/dateparse"
)

/*
DateTime implements a TEC [Date] and [Time] observed at a fixed UTC
[Offset].
*/
type DateTime struct {
	date   Date
	time   Time
	offset Offset
}

/*
NewDateTime returns an instance of [DateTime] composed of the input
values. When no [Offset] is given, the [LocalOffset] at the moment of
construction is used. Only the first offset is significant.
*/
func NewDateTime(date Date, t Time, offset ...Offset) DateTime {
	var off Offset
	if len(offset) > 0 {
		off = offset[0]
	} else {
		off = LocalOffset()
	}

	return DateTime{date: date, time: t, offset: off}
}

/*
DateTimeFromTime returns the [DateTime] of t. The date and time of day
are read in t's own location, whose offset is retained.
*/
func DateTimeFromTime(t time.Time) DateTime {
	dt := NewDateTime(DateFromTime(t), TimeFromTime(t), OffsetOf(t))
	debugEvent(EventConvert, "DateTimeFromTime", t, dt.offset, dt.date, dt.time)
	return dt
}

/*
Now returns the current [DateTime] of the package clock.
*/
func Now() DateTime { return DateTimeFromTime(now()) }

/*
Epoch returns the first instant of the TEC calendar: 0.0.0 at Time(0),
UTC.
*/
func Epoch() DateTime { return NewDateTime(EpochDate(), 0, UTC) }

/*
ParseDateTime returns an instance of [DateTime] alongside an error
following an attempt to parse s. The notation is resolved in the
following order:

  - A trailing "@O" is split off at the first "@" and O is parsed by
    [ParseOffset]; without it, the [LocalOffset] applies
  - "Y.M.D:F" (a colon and no hyphen) denotes a [Date] and a [Time]
  - "Y.M.D" (a dot) denotes a [Date] at [Midday]
  - anything else is handed to a Gregorian free-text parser, and the
    resulting instant is converted as by [DateTimeFromTime] at UTC

For example:

	83.A.5:83402
	23.4.17:5@-60
	23.4.17
	2024-03-01T10:15:00+02:00
*/
func ParseDateTime(s string, constraints ...Constraint[DateTime]) (DateTime, error) {
	var (
		dt  DateTime
		off Offset
		err error
	)

	rem := s
	if i := stridxb(s, '@'); i >= 0 {
		rem = s[:i]
		if off, err = ParseOffset(s[i+1:]); err != nil {
			return dt, err
		}
	} else {
		off = LocalOffset()
	}

	switch {
	case cntns(rem, ":") && !cntns(rem, "-"):
		debugEvent(EventParse, "ParseDateTime", s, "date+time")
		dt, err = parseDateAndTime(rem, off)
	case cntns(rem, "."):
		debugEvent(EventParse, "ParseDateTime", s, "date")
		var d Date
		if d, err = ParseDate(rem); err == nil {
			dt = NewDateTime(d, Midday, off)
		}
	default:
		debugEvent(EventParse, "ParseDateTime", s, "gregorian")
		dt, err = parseGregorian(rem)
	}

	if err == nil {
		err = constrain(dt, constraints)
	}
	if err != nil {
		return DateTime{}, err
	}

	return dt, nil
}

func parseDateAndTime(s string, off Offset) (dt DateTime, err error) {
	i := stridxb(s, ':')

	var d Date
	var t Time
	if d, err = ParseDate(s[:i]); err == nil {
		if t, err = ParseTime(s[i+1:]); err == nil {
			dt = NewDateTime(d, t, off)
		}
	}

	return
}

/*
parseGregorian reads s as free-form Gregorian text. Zone-less input is
read in the location of the package clock; the instant is then moved
to UTC before conversion. Text which names no year (e.g. "Jan 1") is
rejected.
*/
func parseGregorian(s string) (DateTime, error) {
	t, err := dateparse.ParseIn(s, now().Location())
	if err != nil {
		return DateTime{}, gregorianErrorf(quote(s), " is not a gregorian datetime: ", err)
	} else if t.Year() == 0 {
		return DateTime{}, gregorianErrorf(quote(s), " names no year")
	}
	return DateTimeFromTime(t.UTC()), nil
}

// Date returns the date of the receiver.
func (r DateTime) Date() Date { return r.date }

// Time returns the time of day of the receiver.
func (r DateTime) Time() Time { return r.time }

// Offset returns the UTC offset of the receiver.
func (r DateTime) Offset() Offset { return r.offset }

/*
Cast returns the Gregorian instant denoted by the receiver at its own
offset. The fracs of the receiver are truncated to whole seconds.
*/
func (r DateTime) Cast() time.Time {
	midnight := r.date.Cast(r.offset.Location())
	return midnight.Add(time.Duration(r.time.Secs()) * time.Second)
}

/*
Compare returns -1, 0 or +1 following a comparison of the Gregorian
instants denoted by the receiver and o.
*/
func (r DateTime) Compare(o DateTime) int { return r.Cast().Compare(o.Cast()) }

/*
String returns "Y.M.D:F" when the offset of the receiver matches the
[LocalOffset] at the moment of the call, and "Y.M.D:F@+HH:MM" when it
does not. The same value may therefore print differently once the
local offset changes, e.g. across a daylight saving transition.
*/
func (r DateTime) String() string {
	b := newStrBuilder()
	b.WriteString(r.date.String())
	b.WriteByte(':')
	b.WriteString(r.time.String())

	if local := LocalOffset(); local != r.offset {
		debugEvent(EventDisplay, "DateTime.String", local, r.offset)
		b.WriteByte('@')
		b.WriteString(r.offset.String())
	}

	return b.String()
}

/*
MarshalText returns a "Y.M.D:F@O" encoding of the receiver: the fracs
are written unpadded and the offset in the minutes-west notation of
[ParseOffset]. Unlike [DateTime.String], the result depends neither on
the local offset nor on the sign of the year.

The minutes-west notation cannot carry seconds, so an [Offset] which is
not a whole number of minutes (e.g. +01:01:01) is truncated toward
zero to whole minutes and does not survive a round trip unchanged.
*/
func (r DateTime) MarshalText() ([]byte, error) {
	off, _ := r.offset.MarshalText()
	tm, _ := r.time.MarshalText()

	b := newStrBuilder()
	b.WriteString(r.date.String())
	b.WriteByte(':')
	b.Write(tm)
	b.WriteByte('@')
	b.Write(off)

	return []byte(b.String()), nil
}

/*
UnmarshalText decodes the output of [DateTime.MarshalText]. The grammar
is strict: all three parts are required and no Gregorian fallback is
attempted.
*/
func (r *DateTime) UnmarshalText(b []byte) error {
	s := string(b)

	at := stridxb(s, '@')
	if at < 0 {
		return underspecErrorf("DATETIME ", quote(s), " lacks an offset")
	}
	off, err := ParseOffset(s[at+1:])
	if err != nil {
		return err
	}

	colon := stridxb(s[:at], ':')
	if colon < 0 {
		return underspecErrorf("DATETIME ", quote(s), " lacks a time")
	}

	dt, err := parseDateAndTime(s[:at], off)
	if err == nil {
		*r = dt
	}

	return err
}

package tec

/*
off.go implements fixed UTC offsets and their textual grammar.
*/

import "time"

/*
Offset implements a fixed UTC offset in seconds east of UTC, so that
UTC-07:00 is Offset(-25200). Valid offsets lie strictly within one day
either side of UTC.
*/
type Offset int32

/*
OffsetOf returns the [Offset] in effect for t.
*/
func OffsetOf(t time.Time) Offset {
	_, secs := t.Zone()
	return Offset(secs)
}

/*
ParseOffset returns an instance of [Offset] alongside an error following
an attempt to parse s as a signed number of minutes WEST of UTC. Colons
are ignored wherever they appear. Thus "420" and "4:20" are both seven
hours behind UTC, while "-60" is one hour ahead of it.
*/
func ParseOffset(s string) (Offset, error) {
	raw := replaceAll(s, ":", "")
	mins, err := pint(raw, 10, 32)
	if err != nil {
		return 0, offsetErrorf("invalid OFFSET ", quote(s), ": ", err)
	}

	secs := mins * 60
	if secs <= -secondsPerDay || secs >= secondsPerDay {
		return 0, offsetErrorf("OFFSET ", quote(s), " exceeds one day")
	}

	return Offset(-secs), nil
}

/*
Location returns a fixed [time.Location] for the receiver.
*/
func (r Offset) Location() *time.Location {
	if r == UTC {
		return time.UTC
	}
	return time.FixedZone(r.String(), int(r))
}

/*
String returns the receiver in the form "+HH:MM", or "+HH:MM:SS" when
the offset is not a whole number of minutes.
*/
func (r Offset) String() string {
	sign, n := "+", int(r)
	if n < 0 {
		sign, n = "-", -n
	}

	b := newStrBuilder()
	b.WriteString(sign)
	b.WriteString(padLeft(itoa(n/3600), 2))
	b.WriteByte(':')
	b.WriteString(padLeft(itoa(n/60%60), 2))
	if sec := n % 60; sec != 0 {
		b.WriteByte(':')
		b.WriteString(padLeft(itoa(sec), 2))
	}

	return b.String()
}

/*
MarshalText returns the receiver in the minutes-west notation accepted
by [ParseOffset]. Seconds beyond whole minutes are dropped.
*/
func (r Offset) MarshalText() ([]byte, error) {
	return []byte(itoa(-int(r) / 60)), nil
}

/*
UnmarshalText decodes b through [ParseOffset].
*/
func (r *Offset) UnmarshalText(b []byte) (err error) {
	*r, err = ParseOffset(string(b))
	return
}

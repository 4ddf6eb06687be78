package tec

/*
date.go implements the TEC Date composite and its "Y.M.D" notation.
*/

import "time"

/*
Date implements a TEC calendar date. Fields are never validated on
construction: a Date may hold a [Day] that its [Month] cannot contain.
Use [ValidDate] where such values must be refused.
*/
type Date struct {
	year  Year
	month Month
	day   Day
}

/*
NewDate returns an instance of [Date] composed of the input values.
*/
func NewDate(year Year, month Month, day Day) Date {
	return Date{year: year, month: month, day: day}
}

/*
EpochDate returns the first TEC date, 0.0.0, which begins on the first
of January 2001.
*/
func EpochDate() Date { return Date{} }

/*
DateFromTime returns the [Date] on which t falls, read in t's own
location. The time of day of t is ignored.
*/
func DateFromTime(t time.Time) Date {
	d := NewDate(YearOf(t), MonthOf(t), DayOf(t))
	debugEvent(EventConvert, "DateFromTime", t, d)
	return d
}

/*
DateNow returns the current [Date] of the package clock.
*/
func DateNow() Date { return DateFromTime(now()) }

/*
ParseDate returns an instance of [Date] alongside an error following an
attempt to parse s in "Y.M.D" form, e.g.: "23.4.17" or "-11.A.3". The
[Year] is signed, the [Month] is either decimal or "A" and the [Day] is
unsigned. Exactly three fields are required.
*/
func ParseDate(s string, constraints ...Constraint[Date]) (Date, error) {
	var d Date

	f := split(s, ".")
	if len(f) != 3 {
		return d, errorFieldCount("DATE", 3, len(f), s)
	}

	year, err := ParseYear(f[0])
	if err != nil {
		return d, err
	}
	month, err := ParseMonth(f[1])
	if err != nil {
		return d, err
	}
	day, err := ParseDay(f[2])
	if err != nil {
		return d, err
	}

	d = NewDate(year, month, day)
	debugEvent(EventParse, "ParseDate", s, d)
	if err = constrain(d, constraints); err != nil {
		return Date{}, err
	}

	return d, nil
}

// Year returns the year of the receiver.
func (r Date) Year() Year { return r.year }

// Month returns the month (decan) of the receiver.
func (r Date) Month() Month { return r.month }

// Day returns the day of the receiver.
func (r Date) Day() Day { return r.day }

/*
Add returns a new [Date] whose fields are the fieldwise sums of the
receiver and o. No carrying takes place between fields.
*/
func (r Date) Add(o Date) Date {
	return NewDate(r.year.Add(o.year), r.month.Add(o.month), r.day.Add(o.day))
}

/*
Sub returns a new [Date] whose fields are the fieldwise differences of
the receiver and o. No borrowing takes place between fields.
*/
func (r Date) Sub(o Date) Date {
	return NewDate(r.year.Sub(o.year), r.month.Sub(o.month), r.day.Sub(o.day))
}

/*
Compare returns -1, 0 or +1 following a comparison of the receiver to o
ordered by year, then month, then day.
*/
func (r Date) Compare(o Date) int {
	switch {
	case r.year != o.year:
		return cmpOrdered(r.year, o.year)
	case r.month != o.month:
		return cmpOrdered(r.month, o.month)
	}
	return cmpOrdered(r.day, o.day)
}

/*
Ordinal returns the 1-based Gregorian day of the year denoted by the
receiver. Both 0.0 and 0.1 name the first of January.
*/
func (r Date) Ordinal() int {
	if o := int(r.month)*DecanDays + int(r.day); o > 0 {
		return o
	}
	return 1
}

/*
Cast returns the Gregorian midnight, in loc, which begins the receiver.
A nil loc is taken to mean UTC. Out-of-range fields roll over into the
following Gregorian days and years.
*/
func (r Date) Cast(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(r.year.Gregorian(), time.January, r.Ordinal(), 0, 0, 0, 0, loc)
}

/*
String returns the "Y.M.D" notation of the receiver, rendering the
[RemainderDecan] as "A".
*/
func (r Date) String() string {
	b := newStrBuilder()
	b.WriteString(r.year.String())
	b.WriteByte('.')
	b.WriteString(r.month.String())
	b.WriteByte('.')
	b.WriteString(r.day.String())
	return b.String()
}

/*
MarshalText returns the "Y.M.D" notation of the receiver.
*/
func (r Date) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

/*
UnmarshalText decodes b through [ParseDate].
*/
func (r *Date) UnmarshalText(b []byte) (err error) {
	*r, err = ParseDate(string(b))
	return
}

package tec

/*
unit.go implements the calendar units Year, Month and Day.
*/

import "time"

/*
Year implements a TEC year, expressed as a signed offset from the
Gregorian year [EpochYear]. Gregorian 2001 is Year(0), 1990 is Year(-11).
*/
type Year int32

/*
YearOf returns the [Year] in which t falls, read in t's own location.
*/
func YearOf(t time.Time) Year { return Year(t.Year() - EpochYear) }

/*
ParseYear returns an instance of [Year] alongside an error following
an attempt to parse s as a signed decimal integer.
*/
func ParseYear(s string) (Year, error) {
	n, err := pint(s, 10, 32)
	if err != nil {
		return 0, errorBadNumber("YEAR", s, err)
	}
	return Year(n), nil
}

// Add returns the sum of the receiver and o.
func (r Year) Add(o Year) Year { return r + o }

// Sub returns the difference of the receiver and o.
func (r Year) Sub(o Year) Year { return r - o }

/*
Gregorian returns the Gregorian year number underlying the receiver.
*/
func (r Year) Gregorian() int { return int(r) + EpochYear }

/*
IsLeap returns true if the underlying Gregorian year is a leap year,
meaning the remainder decan of the receiver holds an extra day.
*/
func (r Year) IsLeap() bool {
	y := r.Gregorian()
	return y%4 == 0 && y%100 != 0 || y%400 == 0
}

func (r Year) String() string { return fmtInt(int64(r), 10) }

/*
Month implements a TEC month, better known as a decan. Values zero (0)
through nine (9) are regular decans of [DecanDays] days, while ten (10)
is the [RemainderDecan] which closes the year.

Arithmetic never carries into [Year]: Month(9).Add(Month(5)) is Month(14).
*/
type Month uint32

/*
MonthOf returns the [Month] in which t falls, read in t's own location.
*/
func MonthOf(t time.Time) Month { return Month(uint32(t.YearDay()) / DecanDays) }

/*
ParseMonth returns an instance of [Month] alongside an error following
an attempt to parse s as an unsigned decimal integer. The literal "A"
is also accepted and denotes the [RemainderDecan].
*/
func ParseMonth(s string) (Month, error) {
	n, err := puint(s, 10, 32)
	if err == nil {
		return Month(n), nil
	} else if s == "A" {
		return RemainderDecan, nil
	}
	return 0, errorBadNumber("MONTH", s, err)
}

// Add returns the sum of the receiver and o.
func (r Month) Add(o Month) Month { return r + o }

// Sub returns the difference of the receiver and o.
func (r Month) Sub(o Month) Month { return r - o }

/*
Days returns the number of days held by the receiver within year y:
[DecanDays] for a regular decan, six (6) or seven (7) for the
[RemainderDecan], and zero for any value beyond it.
*/
func (r Month) Days(y Year) uint32 {
	switch {
	case r < RemainderDecan:
		return DecanDays
	case r == RemainderDecan && y.IsLeap():
		return 7
	case r == RemainderDecan:
		return 6
	}
	return 0
}

/*
String returns the decimal form of the receiver, or "A" for the
[RemainderDecan].
*/
func (r Month) String() string {
	if r == RemainderDecan {
		return "A"
	}
	return fmtUint(uint64(r), 10)
}

/*
Day implements a TEC day within its decan.
*/
type Day uint32

/*
DayOf returns the [Day] on which t falls, read in t's own location.

The first day of the Gregorian year is Day(0) of Month(0); every other
ordinal day is re-based within its decan.
*/
func DayOf(t time.Time) Day {
	o := uint32(t.YearDay())
	if o == 1 {
		return 0
	}
	return Day(o - (o/DecanDays)*DecanDays)
}

/*
ParseDay returns an instance of [Day] alongside an error following
an attempt to parse s as an unsigned decimal integer.
*/
func ParseDay(s string) (Day, error) {
	n, err := puint(s, 10, 32)
	if err != nil {
		return 0, errorBadNumber("DAY", s, err)
	}
	return Day(n), nil
}

// Add returns the sum of the receiver and o.
func (r Day) Add(o Day) Day { return r + o }

// Sub returns the difference of the receiver and o.
func (r Day) Sub(o Day) Day { return r - o }

func (r Day) String() string { return fmtUint(uint64(r), 10) }

package tec

/*
var.go contains global variables and constants used throughout this package.
*/

/*
Calendar geometry. A TEC year begins on the first of January of its
Gregorian counterpart and is cut into ten regular decans of [DecanDays]
days, followed by the short remainder decan ([RemainderDecan]).
*/
const (
	EpochYear      = 2001
	DecanDays      = 36
	RemainderDecan = Month(10)
)

/*
Clock geometry. A day holds roughly [FracsPerDay] fracs.
*/
const (
	FracsPerDay = 100000
	Midday      = Time(50000)
)

/*
Seconds-to-fracs scales. [Time] and [Duration] use independent
constants which are NOT numerically consistent with one another:
[TimeScale] carries one more significant digit than [DurationScale].
*/
const (
	TimeScale     float32 = 1.15741
	DurationScale float64 = 1.1574
)

/*
UTC is the zero [Offset].
*/
const UTC = Offset(0)

const secondsPerDay = 86400

package tec

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func ExampleTime_String() {
	fmt.Println(Time(50000))
	fmt.Println(Time(50001))
	fmt.Println(Time(380))
	// Output:
	// 5000
	// 50001
	// 0038
}

func ExampleParseDuration() {
	for _, s := range []string{"417", "417f", "360s"} {
		d, err := ParseDuration(s)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%s => %s fracs\n", s, d)
	}
	// Output:
	// 417 => 417 fracs
	// 417f => 417 fracs
	// 360s => 416 fracs
}

func TestTime_midnight(t *testing.T) {
	dt := rfc3339(t, "2002-01-01T00:00:00Z")
	correct := Time(0)

	require.Equal(t, correct, TimeFromTime(dt))
	require.Equal(t, correct, TimeFromHMS(0, 0, 0))
	require.Equal(t, correct, TimeFromHour(0))
}

func TestTime_noon(t *testing.T) {
	dt := rfc3339(t, "2002-01-01T12:00:00Z")
	correct := Time(50000)

	require.Equal(t, correct, TimeFromTime(dt), "TimeFromTime failed")
	require.Equal(t, correct, TimeFromHMS(12, 0, 0), "TimeFromHMS failed")
	require.Equal(t, correct, TimeFromHour(12), "TimeFromHour failed")
}

func TestTime_fromHMS(t *testing.T) {
	for _, tc := range []struct {
		h, m, s uint32
		want    Time
	}{
		{9, 11, 33, 38302},
		{20, 1, 0, 83402},
		{1, 0, 0, 4166},
		{23, 59, 59, 99999},
		{24, 0, 0, 100000},
	} {
		if got := TimeFromHMS(tc.h, tc.m, tc.s); got != tc.want {
			t.Errorf("%s failed [%02d:%02d:%02d]:\n\twant: %d\n\tgot:  %d",
				t.Name(), tc.h, tc.m, tc.s, tc.want, got)
		}
	}
}

func TestTime_String(t *testing.T) {
	for in, want := range map[Time]string{
		0:      "0000",
		5:      "00005",
		10:     "0001",
		38302:  "38302",
		50000:  "5000",
		50001:  "50001",
		83400:  "8340",
		100000: "10000",
		123456: "123456",
	} {
		if got := in.String(); got != want {
			t.Errorf("%s failed [%d]:\n\twant: %s\n\tgot:  %s", t.Name(), uint32(in), want, got)
		}
	}
}

func TestParseTime(t *testing.T) {
	for in, want := range map[string]Time{
		"38302":  38302,
		":38302": 38302,
		"0":      0,
		"150000": 150000,
	} {
		got, err := ParseTime(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	for _, in := range []string{"", ":", "::5", "12:00:00", "-1", "fracs"} {
		_, err := ParseTime(in)
		require.ErrorIs(t, err, ErrMalformedNumber, in)
	}
}

func TestTime_arithmetic(t *testing.T) {
	require.Equal(t, Time(150000), Time(100000).Add(50000))
	require.Equal(t, Time(1), Time(50001).Sub(50000))
	require.Equal(t, uint32(43199), Midday.Secs())
	require.Equal(t, uint32(33092), Time(38302).Secs())

	b, err := Midday.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "50000", string(b))

	var tm Time
	require.NoError(t, tm.UnmarshalText([]byte(":123")))
	require.Equal(t, Time(123), tm)
}

func TestDuration_secs(t *testing.T) {
	require.Equal(t, Duration(4166), DurationFromSecs(3600))
	require.Equal(t, uint64(3599), DurationFromSecs(3600).Secs())
	require.Equal(t, Duration(11574), DurationFromSecs(10000))
	require.Equal(t, uint64(10000), Duration(11574).Secs())
	require.Equal(t, Duration(0), DurationFromSecs(0))
}

func TestDuration_secsMonotonic(t *testing.T) {
	var prevD Duration
	var prevS uint64
	for x := uint64(0); x <= 20000; x++ {
		d := DurationFromSecs(x)
		s := d.Secs()
		if d < prevD || s < prevS {
			t.Fatalf("%s failed at %d: %d/%d after %d/%d", t.Name(), x, d, s, prevD, prevS)
		}
		if s > x {
			t.Fatalf("%s failed at %d: round trip grew to %d", t.Name(), x, s)
		}
		prevD, prevS = d, s
	}
}

func TestDuration_std(t *testing.T) {
	require.Equal(t, DurationFromSecs(60), DurationFromStd(time.Minute))
	require.Equal(t, DurationFromSecs(60), DurationFromStd(time.Minute+900*time.Millisecond))
	require.Equal(t, Duration(0), DurationFromStd(-time.Hour))
	require.Equal(t, 59*time.Second, DurationFromSecs(60).Std())
}

func TestParseDuration(t *testing.T) {
	for in, want := range map[string]Duration{
		"417":   417,
		"417f":  417,
		"417F":  417,
		"360s":  DurationFromSecs(360),
		"360S":  DurationFromSecs(360),
		"0":     0,
		"8000f": 8000,
	} {
		got, err := ParseDuration(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "s", "f", "12x", "-5", "1.5s", "5m"} {
		_, err := ParseDuration(in)
		require.ErrorIs(t, err, ErrMalformedNumber, in)
	}
}

func TestParseDuration_constraintViolation(t *testing.T) {
	limit := RangeConstraint[Duration](0, 1000)

	_, err := ParseDuration("2000", limit)
	require.ErrorIs(t, err, ErrConstraintViolation)

	d, err := ParseDuration("100s", limit)
	require.NoError(t, err)
	require.Equal(t, Duration(115), d)
}

func TestDuration_ordering(t *testing.T) {
	a, b := Duration(10), Duration(20)

	require.True(t, a.Lt(b))
	require.False(t, b.Lt(a))
	require.True(t, a.Le(a))
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a))
	require.Equal(t, Duration(30), a.Add(b))
	require.Equal(t, Duration(10), b.Sub(a))
	require.Equal(t, "20", b.String())

	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("60s")))
	require.Equal(t, Duration(69), d)
	txt, err := d.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "69", string(txt))
}

package tec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseOffset(t *testing.T) {
	for in, want := range map[string]Offset{
		"0":     UTC,
		"-0":    UTC,
		"420":   -25200,
		"4:20":  -25200,
		"42:0":  -25200,
		"-60":   3600,
		"-330":  19800,
		"-5:30": 31800, // colons are dropped, not read as hours
		"1439":  -86340,
		"-1439": 86340,
	} {
		got, err := ParseOffset(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	for _, in := range []string{"", ":", "+", "7h", "1440", "-1440", "99999999999", "+07:00:00"} {
		_, err := ParseOffset(in)
		require.ErrorIs(t, err, ErrMalformedOffset, in)
	}
}

func TestOffset_String(t *testing.T) {
	for in, want := range map[Offset]string{
		UTC:    "+00:00",
		-25200: "-07:00",
		19800:  "+05:30",
		3661:   "+01:01:01",
		-45:    "-00:00:45",
		-86340: "-23:59",
	} {
		if got := in.String(); got != want {
			t.Errorf("%s failed [%d]:\n\twant: %s\n\tgot:  %s", t.Name(), int32(in), want, got)
		}
	}
}

func TestOffset_Location(t *testing.T) {
	require.Equal(t, time.UTC, UTC.Location())

	_, secs := time.Date(2024, 1, 1, 0, 0, 0, 0, Offset(19800).Location()).Zone()
	require.Equal(t, 19800, secs)
	require.Equal(t, Offset(19800), OffsetOf(time.Date(2024, 1, 1, 0, 0, 0, 0, Offset(19800).Location())))
}

func TestOffset_text(t *testing.T) {
	for _, off := range []Offset{UTC, -25200, 3600, 19800, -86340} {
		b, err := off.MarshalText()
		require.NoError(t, err)

		var got Offset
		require.NoError(t, got.UnmarshalText(b), string(b))
		require.Equal(t, off, got, string(b))
	}

	b, _ := Offset(-25200).MarshalText()
	require.Equal(t, "420", string(b))
}

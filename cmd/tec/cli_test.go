package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	tec "github.com/JesseCoretta/go-tec"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var input CLIInput
	parser, err := kong.New(&input,
		kong.Name("tec"),
		kong.Exit(func(int) { t.Fatalf("%s: unexpected exit for %v", t.Name(), args) }),
	)
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	require.NoError(t, err)

	var out bytes.Buffer
	err = ctx.Run(&runEnv{out: &out, log: zaptest.NewLogger(t)})
	return out.String(), err
}

func TestCommands(t *testing.T) {
	noon := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	t.Cleanup(tec.SetClock(clockwork.NewFakeClockAt(noon)))

	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"now"}, "23.1.25:5000\n"},
		{[]string{"epoch"}, "0.0.0:0000\n"},
		{[]string{"from-hms", "9", "11", "33"}, "Current time is :38302\n"},
		{[]string{"from-hms", "12", "0", "0"}, "Current time is :5000\n"},
		{[]string{"convert", "2084-12-30T20:01:00Z"}, "83.A.5:83402\n"},
		{[]string{"convert", "83.A.5:83402@420"}, "83.A.5:83402@-07:00\n"},
		{[]string{"convert", "23.4.17"}, "23.4.17:5000\n"},
		{[]string{"duration", "3600s"}, "4166F (3599s)\n"},
		{[]string{"duration", "417"}, "417F (360s)\n"},
	} {
		got, err := run(t, tc.args...)
		require.NoError(t, err, tc.args)
		require.Equal(t, tc.want, got, tc.args)
	}
}

func TestCommands_errors(t *testing.T) {
	t.Cleanup(tec.SetClock(clockwork.NewFakeClock()))

	_, err := run(t, "convert", "not a date")
	require.ErrorIs(t, err, tec.ErrMalformedGregorianText)

	_, err = run(t, "convert", "83.5")
	require.ErrorIs(t, err, tec.ErrUnderspecifiedField)

	_, err = run(t, "duration", "5m")
	require.ErrorIs(t, err, tec.ErrMalformedNumber)
}

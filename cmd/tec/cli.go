package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	tec "github.com/JesseCoretta/go-tec"
)

// CLIInput stores all commands and arguments that can be passed to the application
type CLIInput struct {
	Version kong.VersionFlag `short:"v" name:"version" help:"Get version number."`

	Now      NowCmd      `cmd:"" help:"Prints current TEC."`
	Convert  ConvertCmd  `cmd:"" help:"Converts from TEC or Gregorian text to TEC."`
	FromHMS  FromHMSCmd  `cmd:"" name:"from-hms" help:"Makes Time from hour, minute and second."`
	Epoch    EpochCmd    `cmd:"" help:"Prints TEC epoch."`
	Duration DurationCmd `cmd:"" help:"Converts a duration in fracs (f) or seconds (s)."`
}

type runEnv struct {
	out io.Writer
	log *zap.Logger
}

type NowCmd struct{}

func (NowCmd) Run(env *runEnv) error {
	_, err := fmt.Fprintln(env.out, tec.Now())
	return err
}

type ConvertCmd struct {
	// Text is either TEC notation or Gregorian free text
	Text string `arg:"" name:"text" help:"Date and time to convert."`
}

func (c ConvertCmd) Run(env *runEnv) error {
	dt, err := tec.ParseDateTime(c.Text)
	if err != nil {
		return err
	}
	env.log.Info("converted", zap.String("text", c.Text), zap.Stringer("tec", dt))
	_, err = fmt.Fprintln(env.out, dt)
	return err
}

type FromHMSCmd struct {
	Hour   uint32 `arg:"" help:"Hour of the day."`
	Minute uint32 `arg:"" help:"Minute of the hour."`
	Second uint32 `arg:"" help:"Second of the minute."`
}

func (c FromHMSCmd) Run(env *runEnv) error {
	_, err := fmt.Fprintf(env.out, "Current time is :%s\n",
		tec.TimeFromHMS(c.Hour, c.Minute, c.Second))
	return err
}

type EpochCmd struct{}

func (EpochCmd) Run(env *runEnv) error {
	_, err := fmt.Fprintln(env.out, tec.Epoch())
	return err
}

type DurationCmd struct {
	// Text is a count of fracs, optionally suffixed by f, or of seconds suffixed by s
	Text string `arg:"" name:"text" help:"Duration such as 360s, 417f or 417."`
}

func (c DurationCmd) Run(env *runEnv) error {
	d, err := tec.ParseDuration(c.Text)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(env.out, "%sF (%ds)\n", d, d.Secs())
	return err
}

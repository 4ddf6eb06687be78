package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	tec "github.com/JesseCoretta/go-tec"
)

var version string = "unknown"

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing configuration from environment variables: %s\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building logger: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Debug {
		tec.EnableDebug(tec.NewZapTracer(logger))
	}

	var input CLIInput
	ctx := kong.Parse(&input,
		kong.Name("tec"),
		kong.Description("Triangular Earth Calendar."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	logger.Info("program started", zap.String("command", ctx.Command()))
	if err = ctx.Run(&runEnv{out: os.Stdout, log: logger}); err != nil {
		logger.Error("command failed", zap.String("command", ctx.Command()), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

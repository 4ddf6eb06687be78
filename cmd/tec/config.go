package main

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the settings read from the environment
type Config struct {
	// LogLevel is the minimum level written by the logger
	LogLevel string `env:"TEC_LOG_LEVEL" env-default:"warn"`
	// LogFormat selects the zap encoding, either console or json
	LogFormat string `env:"TEC_LOG_FORMAT" env-default:"console"`
	// Debug routes the calendar's parse and conversion events to the logger
	Debug bool `env:"TEC_DEBUG" env-default:"false"`
}

func loadConfig() (Config, error) {
	var cfg Config

	// a missing .env file is not an error
	_ = godotenv.Load()

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if cfg.Debug {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = cfg.LogFormat
	zc.Sampling = nil
	if cfg.LogFormat == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	return zc.Build()
}

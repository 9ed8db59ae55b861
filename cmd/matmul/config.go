package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

// Config holds the CLI defaults, loaded from the environment.
type Config struct {
	// Workers sizes the multiply pools; 0 means the CPU count.
	Workers int `envconfig:"MATMUL_WORKERS" default:"0"`
	// LogLevel is the zap level for progress output.
	LogLevel string `envconfig:"MATMUL_LOG_LEVEL" default:"info"`
	// GenDelay paces the stream generators in the demo.
	GenDelay time.Duration `envconfig:"MATMUL_GEN_DELAY" default:"100ms"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// workersOrDefault resolves an explicit flag value against the config, then
// against the CPU count.
func (c Config) workersOrDefault(flag int) int {
	if flag > 0 {
		return flag
	}
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = lvl
	zapCfg.Encoding = "console"
	zapCfg.DisableStacktrace = true
	return zapCfg.Build()
}

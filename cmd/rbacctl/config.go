package main

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/rbackit/pkg/config"
	"github.com/dmitrymomot/rbackit/pkg/logger"
	"github.com/dmitrymomot/rbackit/pkg/validator"
)

const envPrefix = "RBACCTL_"

// Config is read from RBACCTL_* environment variables and an optional .env file.
type Config struct {
	Env              string        `env:"ENV" envDefault:"development"`
	LogLevel         string        `env:"LOG_LEVEL"`
	LogFormat        string        `env:"LOG_FORMAT"`
	Timeout          time.Duration `env:"TIMEOUT" envDefault:"10s"`
	MetricsNamespace string        `env:"METRICS_NAMESPACE" envDefault:"rbackit"`
}

var errInvalidConfig = errors.New("rbacctl.invalid_config")

func loadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix(envPrefix)); err != nil {
		return cfg, err
	}
	if err := validator.Apply(
		validator.InList("log_format", cfg.LogFormat, []string{"", string(logger.FormatText), string(logger.FormatJSON)}),
		validator.RequiredString("metrics_namespace", cfg.MetricsNamespace),
		validator.Rule{
			Check: func() bool { return cfg.Timeout > 0 },
			Error: validator.ValidationError{Field: "timeout", Message: "must be positive", Code: "positive"},
		},
	); err != nil {
		return cfg, errors.Join(errInvalidConfig, err)
	}
	return cfg, nil
}

// newLogger applies the environment defaults first so explicit level and format win.
func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "rbacctl"),
		logger.WithOutput(w),
		logger.WithContextValue("manifest", manifestKey{}),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, errors.Join(errInvalidConfig, err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	return logger.New(opts...), nil
}

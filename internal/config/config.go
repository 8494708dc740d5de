// Package config reads the configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config is the configuration of the daemon.
type Config struct {
	DataBackend          string        `envconfig:"DATA_BACKEND" default:"sqlite" validate:"oneof=sqlite file memory"`
	DataPath             string        `envconfig:"DATA_PATH" default:"data/questbook.db" validate:"required_unless=DataBackend memory"`
	DocumentKey          string        `envconfig:"DOCUMENT_KEY" default:"budget" validate:"required"`
	LogFormat            string        `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json human"`
	LogLevel             string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=trace debug info warn error"`
	BadgeCheckInterval   time.Duration `envconfig:"BADGE_CHECK_INTERVAL" default:"5s" validate:"gt=0"`
	QuestRefreshSchedule string        `envconfig:"QUEST_REFRESH_SCHEDULE" default:"@hourly" validate:"cron"`
}

var ErrInvalid = errors.New("invalid configuration")

// Load reads the configuration from the environment. Variables from the
// given .env files, or ./.env if none are given, are loaded first but never
// override variables that are already set.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded, using the environment only")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if err := validate().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return &cfg, nil
}

// validate returns a validator that knows cron schedules.
func validate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for empty tags or builtin names
	_ = v.RegisterValidation("cron", func(fl validator.FieldLevel) bool {
		_, err := cron.ParseStandard(fl.Field().String())
		return err == nil
	})

	return v
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/envelope-zero/questbook/internal/config"
	"github.com/envelope-zero/questbook/internal/display"
	"github.com/envelope-zero/questbook/pkg/database"
	"github.com/envelope-zero/questbook/pkg/metrics"
	"github.com/envelope-zero/questbook/pkg/persistence"
	"github.com/envelope-zero/questbook/pkg/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Log format can be explicitly set.
	// It defaults to JSON, "human" gives human readable output
	output := io.Writer(os.Stdout)
	if cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(output).With().Timestamp().Logger()

	backend, closeBackend, err := openBackend(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer closeBackend()

	m, err := metrics.New(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	saver := persistence.NewAutoSaver(backend, log.With().Str("component", "autosave").Logger(), m.Save)
	defer saver.Close()

	ctx := context.Background()
	st, err := store.Open(ctx, backend,
		store.WithSaver(saver),
		store.WithMetrics(m),
		store.WithLogger(log.With().Str("component", "store").Logger()),
	)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Opening the app counts as activity for the day
	st.CheckStreak()
	st.RefreshDailyQuests()
	st.CheckAndAwardBadges()

	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", cfg.BadgeCheckInterval), func() { st.CheckAndAwardBadges() }); err != nil {
		log.Fatal().Msg(err.Error())
	}
	if _, err := c.AddFunc(cfg.QuestRefreshSchedule, func() {
		if st.RefreshDailyQuests() {
			log.Info().Msg("daily quests refreshed")
		}
	}); err != nil {
		log.Fatal().Msg(err.Error())
	}
	c.Start()

	display.Status(os.Stdout, st.State(), st.SafeToSpend())
	log.Info().Str("backend", cfg.DataBackend).Str("path", cfg.DataPath).Msg("questbook is running")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	<-c.Stop().Done()
	st.Flush()
}

// openBackend returns the storage backend configured in cfg and a function
// releasing its resources.
func openBackend(cfg *config.Config) (persistence.Backend, func(), error) {
	switch cfg.DataBackend {
	case config.BackendMemory:
		return &persistence.Memory{}, func() {}, nil

	case config.BackendFile:
		b, err := persistence.NewFile(cfg.DataPath)
		return b, func() {}, err

	case config.BackendSQLite:
		// Create data directory
		if err := os.MkdirAll(filepath.Dir(cfg.DataPath), os.ModePerm); err != nil {
			return nil, nil, err
		}

		db, err := database.Connect(cfg.DataPath + "?_pragma=journal_mode(WAL)")
		if err != nil {
			return nil, nil, err
		}

		b, err := persistence.NewSQLite(db, cfg.DocumentKey, log.With().Str("component", "sqlite").Logger())
		if err != nil {
			database.Close(db)
			return nil, nil, err
		}

		return b, func() {
			if err := database.Close(db); err != nil {
				log.Error().Err(err).Msg("could not close database")
			}
		}, nil
	}

	return nil, nil, fmt.Errorf("unknown data backend %q", cfg.DataBackend)
}

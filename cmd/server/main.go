package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"holdem-server/internal/config"
	"holdem-server/internal/mux"
	"holdem-server/internal/natsbus"
	"holdem-server/pkg/playable/poker/texasholdem"
	"holdem-server/pkg/room"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10
const shutdownTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var cli struct {
	Config string `short:"c" help:"Path to the YAML configuration file (defaults to HOLDEM_CONFIG_FILE)"`
	Addr   string `short:"a" help:"The listen address (overrides config)"`
}

func main() {
	kctx := kong.Parse(&cli, kong.Description("Texas Hold'em rooms over HTTP and WebSockets"))

	if err := config.Load(cli.Config); err != nil {
		logrus.WithError(err).Error("could not load configuration")
		kctx.Exit(1)
	}

	cfg := config.Instance()
	if cli.Addr != "" {
		cfg.Addr = cli.Addr
	}

	setupLogger(cfg.Log)

	if err := run(cfg); err != nil {
		logrus.WithError(err).Error("server stopped")
		kctx.Exit(1)
	}
}

// run serves until SIGINT or SIGTERM
// Every resource it opens is released before it returns.
func run(cfg config.Config) error {
	opts, err := roomOptions(cfg.Room)
	if err != nil {
		return fmt.Errorf("invalid room configuration: %w", err)
	}

	var notifier room.Notifier
	if cfg.NATS.URL != "" {
		publisher, err := natsbus.Connect(logrus.StandardLogger(), cfg.NATS.URL, cfg.NATS.SubjectPrefix)
		if err != nil {
			return fmt.Errorf("could not connect to NATS: %w", err)
		}

		defer func() {
			if err := publisher.Close(); err != nil {
				logrus.WithError(err).Warn("could not drain NATS connection")
			}
		}()
		notifier = publisher
	}

	pitBoss := room.NewPitBoss(logrus.StandardLogger(), quartz.NewReal(), opts, notifier)

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      loggingHandler(cfg.Log, c.Handler(mux.NewMux(Version, pitBoss))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.WithField("addr", srv.Addr).Info("listening")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		return pitBoss.StartShift(ctx, cfg.Room.PruneInterval)
	})

	g.Go(func() error {
		<-ctx.Done()
		logrus.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// roomOptions validates the room configuration
func roomOptions(cfg config.Room) (room.Options, error) {
	bustPolicy, err := texasholdem.ParseBustPolicy(cfg.BustPolicy)
	if err != nil {
		return room.Options{}, err
	}

	if cfg.PruneInterval <= 0 {
		return room.Options{}, fmt.Errorf("prune interval must be positive, got %s", cfg.PruneInterval)
	}

	if cfg.MaxAnte < 1 {
		return room.Options{}, fmt.Errorf("max ante must be at least 1, got %d", cfg.MaxAnte)
	}

	return room.Options{
		MaxAnte:    cfg.MaxAnte,
		ListWindow: cfg.ListWindow,
		StaleAfter: cfg.StaleAfter,
		BustPolicy: bustPolicy,
	}, nil
}

func loggingHandler(cfg config.Log, next http.Handler) http.Handler {
	if cfg.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger(cfg config.Log) {
	if lvl := cfg.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Format) == "json" || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

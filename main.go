package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/JacquesMo/PlayoffsFantasyHype/config"
	"github.com/JacquesMo/PlayoffsFantasyHype/controller"
	"github.com/JacquesMo/PlayoffsFantasyHype/db"
	"github.com/JacquesMo/PlayoffsFantasyHype/logger"
	"github.com/JacquesMo/PlayoffsFantasyHype/platforms/tank01"
	"github.com/JacquesMo/PlayoffsFantasyHype/web"
	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const envFileFlag = "env-file"

// app is everything a command needs, built from the environment.
type app struct {
	cfg  *config.Config
	log  *logrus.Logger
	db   db.DB
	ctrl controller.C
}

func main() {
	cliApp := &cli.App{
		Name:  "playoffs",
		Usage: "Scores a playoff fantasy league from tank01 box scores",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  envFileFlag,
				Usage: "Optional file of environment variables to load first",
				Value: ".env",
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the dashboard and run scheduled refreshes",
				Action: serve,
			},
			{
				Name:   "refresh",
				Usage:  "Refresh every round once and print the report",
				Action: refresh,
			},
			{
				Name:   "reset",
				Usage:  "Replace the stored scoreboard with an all zero one",
				Action: reset,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(cCtx *cli.Context) (*app, error) {
	err := godotenv.Load(cCtx.String(envFileFlag))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading env file: %w", err)
	}

	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return nil, err
	}

	league, err := config.LoadLeague(cfg.LeagueFile)
	if err != nil {
		return nil, err
	}

	if cfg.Tank01APIKey == "" {
		log.Warn("TANK01_API_KEY is not set, refreshes will fail")
	}

	clock := clock.New()
	var store db.DB
	if cfg.PostgresConnStr != "" {
		store, err = db.New(cCtx.Context, cfg.PostgresConnStr, db.DefaultSlot, clock)
		if err != nil {
			return nil, fmt.Errorf("cannot connect to DB: %w", err)
		}
		log.Info("scoreboard is stored in postgres")
	} else {
		store = db.NewFileDB(cfg.StorePath)
		log.WithField("path", cfg.StorePath).Info("scoreboard is stored in a file")
	}

	tank01Client := tank01.New(cfg.Tank01APIKey, cfg.UpstreamTimeout, log)

	ctrl, err := controller.New(clock, league, tank01Client, store, log)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("error creating a new controller: %w", err)
	}

	return &app{cfg: cfg, log: log, db: store, ctrl: ctrl}, nil
}

func serve(cCtx *cli.Context) error {
	a, err := newApp(cCtx)
	if err != nil {
		return err
	}
	defer a.db.Close()

	// A store this binary can't read is not served, it would be overwritten
	// by the next refresh.
	if _, err := a.ctrl.Scoreboard(cCtx.Context); err != nil {
		return err
	}

	server, err := web.NewServer(a.cfg, a.ctrl, a.log)
	if err != nil {
		return fmt.Errorf("error creating new web server: %w", err)
	}
	if !a.cfg.AdminEnabled() {
		a.log.Info("ADMIN_PASSWORD is not set, admin routes are disabled")
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			a.log.Error("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	if a.cfg.RefreshSchedule != "" {
		if err := a.ctrl.StartScheduledRefreshes(a.cfg.RefreshSchedule, shutdown, wg); err != nil {
			return err
		}
	}

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	a.log.Info("server shutdown")
	return nil
}

func refresh(cCtx *cli.Context) error {
	a, err := newApp(cCtx)
	if err != nil {
		return err
	}
	defer a.db.Close()

	ctx, cancel := signal.NotifyContext(cCtx.Context, os.Interrupt)
	defer cancel()

	report, err := a.ctrl.Refresh(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "    ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	if failed := report.Failed(); len(failed) > 0 {
		a.log.WithField("failed", len(failed)).Warn("some rounds could not be refreshed")
	}
	return nil
}

func reset(cCtx *cli.Context) error {
	a, err := newApp(cCtx)
	if err != nil {
		return err
	}
	defer a.db.Close()

	return a.ctrl.Reset(cCtx.Context)
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}

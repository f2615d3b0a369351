package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/saulo-duarte/quiz-lambda/internal/config"
	"github.com/saulo-duarte/quiz-lambda/internal/container"
	"github.com/saulo-duarte/quiz-lambda/internal/seed"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.App{
		Name:  "quizapp",
		Usage: "serve and maintain the quiz API",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP server",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Usage: "listen address, overrides ADDR"},
				},
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the database schema",
				Action: migrate,
			},
			{
				Name:  "seed",
				Usage: "load questions from a YAML file into the bank",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "YAML question file", Required: true},
				},
				Action: seedQuestions,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		config.Logger.WithError(err).Fatal("quizapp failed")
	}
}

func serve(c *cli.Context) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	if addr := c.String("addr"); addr != "" {
		settings.Addr = addr
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctr, err := container.New(ctx, settings)
	if err != nil {
		return err
	}
	defer ctr.Close()

	srv := &http.Server{
		Addr:              settings.Addr,
		Handler:           ctr.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		config.Logger.WithField("addr", settings.Addr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	config.Logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func migrate(c *cli.Context) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	config.InitLogger(settings.LogLevel, settings.LogFormat)

	if err := config.Connect(c.Context, settings.DBDriver, settings.DatabaseDSN); err != nil {
		return err
	}
	if err := config.Migrate(config.DB, container.Models()...); err != nil {
		return err
	}

	config.Logger.Info("Schema migrated")
	return nil
}

func seedQuestions(c *cli.Context) error {
	entries, err := seed.LoadFile(c.String("file"))
	if err != nil {
		return err
	}

	settings, err := config.Load()
	if err != nil {
		return err
	}
	settings.RedisAddr = ""

	ctr, err := container.New(c.Context, settings)
	if err != nil {
		return err
	}
	defer ctr.Close()

	n, err := seed.Run(c.Context, ctr.QuestionContainer.Service, entries)
	if err != nil {
		return fmt.Errorf("seeded %d of %d questions: %w", n, len(entries), err)
	}

	config.Logger.WithField("count", n).Info("Questions seeded")
	return nil
}

package main

import (
	"context"
	"fmt"
	mathrand "math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/carefacility/shiftgen/internal/config"
	"github.com/carefacility/shiftgen/internal/generator"
	"github.com/carefacility/shiftgen/internal/httpapi"
)

var (
	serveHost      string
	servePort      string
	serveCronSpec  string
	serveCronYear  int
	serveCronMonth int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, optionally regenerating on a cron schedule",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", config.DefaultServeHost, "bind host")
	serveCmd.Flags().StringVar(&servePort, "port", config.DefaultServePort, "bind port")
	serveCmd.Flags().StringVar(&serveCronSpec, "cron", "", "optional 5-field cron spec to regenerate and log a fresh schedule on a timer")
	serveCmd.Flags().IntVar(&serveCronYear, "cron-year", 0, "year the cron job regenerates; defaults to the current year")
	serveCmd.Flags().IntVar(&serveCronMonth, "cron-month", 0, "month the cron job regenerates; defaults to the current month")
}

func runServe(cmd *cobra.Command, args []string) error {
	srv := httpapi.NewServer(log.WithComponent("httpapi"))
	addr := config.ListenAddr(serveHost, servePort)
	httpSrv := &http.Server{Addr: addr, Handler: srv}

	var c *cron.Cron
	if serveCronSpec != "" {
		c = cron.New()
		if _, err := c.AddFunc(serveCronSpec, regenerateJob); err != nil {
			return fmt.Errorf("invalid --cron spec %q: %w", serveCronSpec, err)
		}
		c.Start()
		log.Info("cron regeneration scheduled", "spec", serveCronSpec)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sig:
		log.Info("shutting down")
	}

	if c != nil {
		c.Stop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(ctx)
}

// regenerateJob reloads the configured roster, regenerates the cron
// target month against a time-seeded PRNG, and logs the warning count.
// It does not persist the result anywhere; operators watching the log
// are expected to pull a fresh copy via POST /generate when they see one.
func regenerateJob() {
	rf, err := loadRoster(rosterPath)
	if err != nil {
		log.Error("cron regeneration: roster load failed", "error", err)
		return
	}
	settings, err := loadSettings(settingsPath)
	if err != nil {
		log.Error("cron regeneration: settings load failed", "error", err)
		return
	}

	year, month := serveCronYear, serveCronMonth
	if year == 0 || month == 0 {
		now := time.Now()
		if year == 0 {
			year = now.Year()
		}
		if month == 0 {
			month = int(now.Month())
		}
	}

	rng := mathrand.New(mathrand.NewSource(time.Now().UnixNano()))
	_, warnings := generator.Generate(rf.Staff, year, month, rf.RequestSet(), settings, rng)
	log.Info("cron regeneration complete", "year", year, "month", month, "warnings", len(warnings))
}

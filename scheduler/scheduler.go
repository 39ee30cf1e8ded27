// Package scheduler runs the recurring background jobs: refreshing the FX
// rate table and pre-warming the in-process caches.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"globehunters/config"
	"globehunters/currency"
)

type Scheduler struct {
	cfg   *config.Config
	rates *currency.LiveRates
	cron  *cron.Cron
}

func New(cfg *config.Config, rates *currency.LiveRates) *Scheduler {
	return &Scheduler{
		cfg:   cfg,
		rates: rates,
		cron:  cron.New(),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	spec := s.cfg.FX.RefreshCron
	if spec == "" {
		log.Println("No FX refresh schedule configured, rates refresh lazily on use")
		return nil
	}

	log.Printf("Starting FX refresh with cron: %s", spec)
	_, err := s.cron.AddFunc(spec, func() {
		s.refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}
	s.cron.Start()

	// Warm the table once at startup so the first request doesn't pay
	// for the fetch.
	go s.refresh(ctx)

	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) refresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := s.rates.Refresh(refreshCtx); err != nil {
		log.Printf("Scheduled FX refresh error: %v", err)
	}
}

// Package scheduler fires the birthday announcements once a day.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	"github.com/diegoclair/birthday-bot/internal/logger"
	"github.com/diegoclair/birthday-bot/internal/metrics"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

type Scheduler struct {
	announcer   contract.AnnouncementService
	loc         *time.Location
	metrics     metrics.Recorder
	log         *logrus.Entry
	spec        string
	stopTimeout time.Duration
	clock       func() time.Time

	mu      sync.Mutex
	cron    *cron.Cron
	cancel  context.CancelFunc
	running bool
}

func New(announcer contract.AnnouncementService, loc *time.Location, recorder metrics.Recorder) *Scheduler {
	if recorder == nil {
		recorder = metrics.Nop()
	}
	return &Scheduler{
		announcer:   announcer,
		loc:         loc,
		metrics:     recorder,
		log:         logger.WithComponent("scheduler"),
		spec:        domain.FireSpec,
		stopTimeout: domain.StopTimeout,
		clock:       time.Now,
	}
}

// Start registers the daily job and starts the engine. Calling it twice is a no-op.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	var cronLogger cron.Logger = cron.PrintfLogger(s.log)
	if s.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		cronLogger = cron.VerbosePrintfLogger(s.log)
	}

	c := cron.New(
		cron.WithLocation(s.loc),
		cron.WithSeconds(),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	ctx, cancel := context.WithCancel(context.Background())
	if _, err := c.AddFunc(s.spec, func() { s.fire(ctx) }); err != nil {
		cancel()
		return fmt.Errorf("failed to add announcement job %q: %w", s.spec, err)
	}

	c.Start()
	s.cron = c
	s.cancel = cancel
	s.running = true

	now := s.clock().In(s.loc)
	next := NextFire(now, s.loc)
	s.log.WithFields(logrus.Fields{
		"timezone":  s.loc.String(),
		"next_fire": next.Format(time.RFC3339),
		"in":        next.Sub(now).Round(time.Second).String(),
	}).Info("Scheduler started")

	return nil
}

// Stop prevents new firings and waits up to the stop timeout for one in flight. After that the
// firing's context is cancelled.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false

	s.log.Info("Scheduler stopping...")
	done := s.cron.Stop()

	select {
	case <-done.Done():
		s.log.Info("Scheduler stopped")
	case <-time.After(s.stopTimeout):
		s.log.WithField("timeout", s.stopTimeout.String()).Warn("Firing still running, cancelling it")
	}
	s.cancel()
}

func (s *Scheduler) fire(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	now := s.clock().In(s.loc)
	log := s.log.WithFields(logrus.Fields{
		"firing_id": uuid.NewString(),
		"date":      now.Format(time.DateOnly),
	})
	log.Info("Firing announcements")

	start := time.Now()
	err := s.announcer.RunFiring(ctx, now)
	s.metrics.RecordFiring(err == nil)

	if err != nil {
		log.WithError(err).Error("Firing finished with errors")
		return
	}
	log.WithField("duration", time.Since(start).String()).Info("Firing finished")
}

// NextFire returns today's fire time in loc, or tomorrow's when it has already passed.
func NextFire(now time.Time, loc *time.Location) time.Time {
	now = now.In(loc)
	fire := time.Date(now.Year(), now.Month(), now.Day(), domain.FireHour, domain.FireMinute, domain.FireSecond, 0, loc)
	if now.After(fire) {
		fire = time.Date(now.Year(), now.Month(), now.Day()+1, domain.FireHour, domain.FireMinute, domain.FireSecond, 0, loc)
	}
	return fire
}

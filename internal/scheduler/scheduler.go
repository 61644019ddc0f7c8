// Package scheduler keeps the availability cache warm. A cron job recomputes
// the rolling month windows the booking picker polls, so client requests are
// normally served straight from Redis.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"mobile-recovery-booking/internal/availability"
	"mobile-recovery-booking/internal/model"
	pkgLog "mobile-recovery-booking/pkg/log"
)

type Scheduler struct {
	l      pkgLog.Logger
	uc     availability.UseCase
	loc    *time.Location
	spec   string // cron spec, e.g. "@every 15s"
	months int    // rolling window length in calendar months

	cron   *cron.Cron
	cancel context.CancelFunc
}

// New creates a Scheduler refreshing availability for the current month and
// the following months-1 calendar months on the given cron spec.
func New(l pkgLog.Logger, uc availability.UseCase, loc *time.Location, spec string, months int) *Scheduler {
	if months < 1 {
		months = 1
	}
	return &Scheduler{
		l:      l,
		uc:     uc,
		loc:    loc,
		spec:   spec,
		months: months,
	}
}

// Start schedules the refresh job and performs one immediate warm-up in the
// background. It returns an error when the cron spec does not parse.
func (s *Scheduler) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)

	c := cron.New()
	if _, err := c.AddFunc(s.spec, func() { s.refresh(runCtx) }); err != nil {
		cancel()
		return err
	}
	c.Start()

	s.cron = c
	s.cancel = cancel

	go s.refresh(runCtx)
	return nil
}

// Stop cancels in-flight refreshes and waits for the running job to finish.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

// refresh recomputes one snapshot per month window. A failed window is logged
// and skipped; the next tick tries again, there is no internal retry.
func (s *Scheduler) refresh(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	now := time.Now().In(s.loc)
	for i := 0; i < s.months; i++ {
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.loc).AddDate(0, i, 0)
		last := first.AddDate(0, 1, -1)

		input := availability.QueryInput{
			StartDate: first.Format(model.DateKeyFormat),
			EndDate:   last.Format(model.DateKeyFormat),
		}
		if _, err := s.uc.Query(ctx, input); err != nil {
			s.l.Warnf(ctx, "scheduler.refresh: window %s..%s: %v", input.StartDate, input.EndDate, err)
		}
	}
}

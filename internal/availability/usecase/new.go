package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"mobile-recovery-booking/internal/availability/engine"
	"mobile-recovery-booking/internal/block/repository"
	"mobile-recovery-booking/pkg/cache"
	"mobile-recovery-booking/pkg/gcalendar"
	pkgLog "mobile-recovery-booking/pkg/log"
)

// EventsSource lists external calendar busy events overlapping a window.
type EventsSource interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// Config tunes the availability use case.
type Config struct {
	CalendarID    string
	CacheTTL      time.Duration // snapshot lifetime, matches the picker poll interval
	LeadTime      time.Duration // minimum notice before a session may start
	LookaheadDays int           // how far ahead a session may be booked
	TwelveHour    bool          // slot display labels as "8:30 AM" instead of "08:30"
}

type implUseCase struct {
	l      pkgLog.Logger
	events EventsSource
	repo   repository.Repository
	cache  cache.Cache
	engine *engine.Engine
	cfg    Config

	seq atomic.Uint64
	now func() time.Time
}

// New creates a new availability UseCase instance.
func New(l pkgLog.Logger, events EventsSource, repo repository.Repository, c cache.Cache, eng *engine.Engine, cfg Config) *implUseCase {
	return &implUseCase{
		l:      l,
		events: events,
		repo:   repo,
		cache:  c,
		engine: eng,
		cfg:    cfg,
		now:    time.Now,
	}
}

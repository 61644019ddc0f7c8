package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver "pgx"
	"github.com/redis/go-redis/v9"

	"mobile-recovery-booking/config"
	_ "mobile-recovery-booking/docs" // Swagger docs
	"mobile-recovery-booking/internal/availability/engine"
	availUC "mobile-recovery-booking/internal/availability/usecase"
	blockPostgre "mobile-recovery-booking/internal/block/repository/postgre"
	"mobile-recovery-booking/internal/httpserver"
	"mobile-recovery-booking/internal/scheduler"
	"mobile-recovery-booking/pkg/cache"
	"mobile-recovery-booking/pkg/gcalendar"
	"mobile-recovery-booking/pkg/log"
)

// noEvents serves the availability use case when no Google Calendar
// credentials are configured: only manual blocks constrain availability.
type noEvents struct{}

func (noEvents) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return nil, nil
}

// @title       Mobile Recovery Booking API
// @description Booking availability for a mobile recovery service: merges Google Calendar busy events and operator blocks into bookable 30-minute slots.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Mobile Recovery Booking...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Business timezone: %s", cfg.Availability.BusinessTimezone)

	// 3. Postgres (manual block store)
	db, err := sql.Open("pgx", cfg.Postgres.DSN())
	if err != nil {
		logger.Error(ctx, "Failed to open postgres: ", err)
		return
	}
	defer db.Close()

	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		cancelPing()
		logger.Error(ctx, "Failed to ping postgres: ", err)
		return
	}
	cancelPing()

	// 4. Redis (availability snapshot cache, optional)
	var snapshotCache cache.Cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warnf(ctx, "Redis not available, every poll recomputes: %v", err)
	} else {
		snapshotCache = cache.NewRedis(redisClient)
		defer redisClient.Close()
	}

	// 5. Google Calendar client (optional)
	var events availUC.EventsSource = noEvents{}
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			events = calendarClient
		}
	} else {
		logger.Warn(ctx, "No Google Calendar credentials configured, availability uses manual blocks only")
	}

	// 6. Availability use case, shared by HTTP delivery and the refresher
	eng, err := engine.New(cfg.Availability.BusinessTimezone)
	if err != nil {
		logger.Error(ctx, "Failed to build availability engine: ", err)
		return
	}

	blockRepo := blockPostgre.New(db, logger)
	availabilityUC := availUC.New(logger, events, blockRepo, snapshotCache, eng, availUC.Config{
		CalendarID:    cfg.GoogleCalendar.CalendarID,
		CacheTTL:      cfg.Availability.RefreshInterval,
		LeadTime:      time.Duration(cfg.Availability.LeadTimeHours) * time.Hour,
		LookaheadDays: cfg.Availability.LookaheadDays,
		TwelveHour:    cfg.Availability.TwelveHour,
	})

	// 7. Cache refresher
	refresher := scheduler.New(logger, availabilityUC, eng.Location(),
		"@every "+cfg.Availability.RefreshInterval.String(), cfg.Availability.WarmupMonths)
	if err := refresher.Start(ctx); err != nil {
		logger.Error(ctx, "Failed to start cache refresher: ", err)
		return
	}
	defer refresher.Stop()

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		PostgresDB:      db,
		AvailabilityUC:  availabilityUC,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

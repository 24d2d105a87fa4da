package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/gulfwash/carwash-scheduler/internal/config"
	dbpkg "github.com/gulfwash/carwash-scheduler/internal/db"
	infraRepo "github.com/gulfwash/carwash-scheduler/internal/infra/repository"
	"github.com/gulfwash/carwash-scheduler/internal/notify"
	"github.com/gulfwash/carwash-scheduler/internal/opzone"
	"github.com/gulfwash/carwash-scheduler/internal/reminder"
	"github.com/gulfwash/carwash-scheduler/internal/routes"
	"github.com/gulfwash/carwash-scheduler/internal/slots"
)

func main() {

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	zone := opzone.New(cfg.OperatingTimezone)
	catalog := slots.Default()

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	notifySvc := notify.New(db)
	dispatcher := notify.NewDispatcher(notifySvc, logger)
	defer dispatcher.Close()

	bookingRepo := infraRepo.NewBookingGormRepository(db)

	reminderCfg := reminder.Config{
		Tick:          time.Duration(cfg.ReminderTickSeconds) * time.Second,
		LeadMinutes:   float64(cfg.ReminderLeadMinutes),
		WindowMinutes: cfg.ReminderWindowMinutes,
	}
	reminders := reminder.NewDispatcher(bookingRepo, dispatcher, catalog, zone, reminderCfg, logger, rdb)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go reminders.Start(ctx)
	defer reminders.Stop()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, zone, catalog, dispatcher, notifySvc)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		logger.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown")
	}
}

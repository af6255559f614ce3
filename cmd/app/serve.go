package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dharma-pro/temple-booking/internal/api"
	"github.com/dharma-pro/temple-booking/internal/config"
	"github.com/dharma-pro/temple-booking/internal/db"
	"github.com/dharma-pro/temple-booking/internal/job"
	"github.com/dharma-pro/temple-booking/internal/notification"
	"github.com/dharma-pro/temple-booking/internal/repository"
	"github.com/dharma-pro/temple-booking/internal/repository/dao"
	"github.com/dharma-pro/temple-booking/internal/service"
)

func serveCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "create or update the schema before serving")

	return cmd
}

func runServe(cmd *cobra.Command, migrate bool) error {
	conf, err := setup()
	if err != nil {
		return err
	}

	postgresDB, err := openDatabase(conf)
	if err != nil {
		return err
	}

	if migrate {
		if err = dao.InitTables(postgresDB); err != nil {
			return fmt.Errorf("dao.InitTables -> %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := db.OpenRedis(ctx, conf.Redis)
	if err != nil {
		// Rate limiting and caching are optional.
		zap.L().Warn("redis unavailable, rate limiting and caching disabled", zap.Error(err))
	}
	if rdb != nil {
		defer rdb.Close()
	}

	s := api.NewServer(conf, postgresDB, rdb)
	s.Start(ctx)

	if conf.Jobs.RemindersEnabled {
		scheduler, err := job.NewScheduler(conf.Jobs, newReminderService(conf, postgresDB))
		if err != nil {
			return fmt.Errorf("failed to initialize scheduler -> %w", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	addr := ":" + s.Config.API.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown -> %w", err)
	}

	return nil
}

func newNotifier(conf *config.AppConfig, postgresDB *gorm.DB) *notification.SMSClient {
	logs := repository.NewSMSLogRepository(dao.NewSMSLogDAO(postgresDB))

	return notification.NewSMSClient(conf.SMS, logs)
}

func newReminderService(conf *config.AppConfig, postgresDB *gorm.DB) *service.ReminderService {
	slotRepo := repository.NewSlotRepository(dao.NewSlotDAO(postgresDB))
	bookingRepo := repository.NewBookingRepository(dao.NewBookingDAO(postgresDB))
	templeRepo := repository.NewTempleRepository(dao.NewTempleDAO(postgresDB))

	return service.NewReminderService(
		slotRepo,
		bookingRepo,
		templeRepo,
		newNotifier(conf, postgresDB),
		conf.Jobs.ReminderLead,
		conf.Jobs.ReminderWindow,
	)
}

package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dharma-pro/temple-booking/internal/event"
	"github.com/dharma-pro/temple-booking/internal/repository"
	"github.com/dharma-pro/temple-booking/internal/repository/dao"
	"github.com/dharma-pro/temple-booking/internal/service"
)

var errNoBroker = errors.New("rabbitmq.url is not configured")

func workerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Consume payment.confirmed events and send receipts",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := setup()
			if err != nil {
				return err
			}
			if conf.RabbitMQ.URL == "" {
				return errNoBroker
			}

			postgresDB, err := openDatabase(conf)
			if err != nil {
				return err
			}

			bookingRepo := repository.NewBookingRepository(dao.NewBookingDAO(postgresDB))
			receipts := service.NewReceiptService(bookingRepo, newNotifier(conf, postgresDB))
			consumer := event.NewConsumer(conf.RabbitMQ, receipts.HandlePaymentConfirmed)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			zap.L().Info("worker consuming", zap.String("queue", conf.RabbitMQ.Queue))
			if err = consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("consumer.Run -> %w", err)
			}

			return nil
		},
	}
}

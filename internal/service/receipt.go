package service

import (
	"context"
	"fmt"

	"github.com/dharma-pro/temple-booking/internal/domain"
)

// ReceiptService reacts to confirmed payments consumed from the broker.
type ReceiptService struct {
	bookings PaymentBookingFinder
	notifier Notifier
}

func NewReceiptService(bookings PaymentBookingFinder, notifier Notifier) *ReceiptService {
	return &ReceiptService{
		bookings: bookings,
		notifier: notifier,
	}
}

func (s *ReceiptService) HandlePaymentConfirmed(ctx context.Context, event domain.PaymentConfirmedEvent) error {
	booking, err := s.bookings.FindByID(ctx, event.BookingID)
	if err != nil {
		return fmt.Errorf("s.bookings.FindByID -> %w", err)
	}
	if booking.MobileNumber == "" {
		return nil
	}

	message := fmt.Sprintf("Payment of %.2f received for booking %d.\nTransaction ID: %s\nThank you for using Dharma.",
		event.Amount, booking.ID, event.TransactionID)
	if err = s.notifier.Send(ctx, booking.UserID, booking.MobileNumber, message); err != nil {
		return fmt.Errorf("s.notifier.Send -> %w", err)
	}

	return nil
}

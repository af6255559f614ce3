package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/service"
)

var (
	errInvalidBookingDate = errors.New("must be an RFC 3339 timestamp, a local date-time or a YYYY-MM-DD date")

	bookingDateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", domain.DateLayout}
)

// parseBookingDate accepts zone-less timestamps, read in the server's zone.
func parseBookingDate(s string) (time.Time, error) {
	for _, layout := range bookingDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errInvalidBookingDate
}

var isBookingDate = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, err := parseBookingDate(s)

	return err
})

type CreateBookingRequest struct {
	UserID       uint                       `json:"userId"`
	TempleID     uint                       `json:"templeId"`
	SlotID       *uint                      `json:"slotId"`
	BookingDate  string                     `json:"bookingDate"`
	Special      bool                       `json:"special"`
	Participants []BookingParticipantFields `json:"participants"`
}

func (req *CreateBookingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.TempleID, validation.Required),
		validation.Field(&req.BookingDate, validation.Required, isBookingDate),
		validation.Field(&req.Participants),
	)
}

func (req *CreateBookingRequest) ToParams() service.CreateBookingParams {
	bookingDate, _ := parseBookingDate(req.BookingDate)

	participants := make([]domain.Participant, 0, len(req.Participants))
	for _, p := range req.Participants {
		participants = append(participants, p.toDomain(0))
	}

	return service.CreateBookingParams{
		UserID:       req.UserID,
		TempleID:     req.TempleID,
		SlotID:       req.SlotID,
		BookingDate:  bookingDate,
		Special:      req.Special,
		Participants: participants,
	}
}

type KioskBookingRequest struct {
	TempleID             uint   `json:"templeId"`
	SlotID               *uint  `json:"slotId"`
	MobileNumber         string `json:"mobileNumber"`
	NumberOfParticipants int    `json:"numberOfParticipants"`
	BookingDate          string `json:"bookingDate"`
	Special              bool   `json:"special"`
}

func (req *KioskBookingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TempleID, validation.Required),
		validation.Field(&req.MobileNumber, validation.Required, is.Digit, validation.Length(10, 15)),
		validation.Field(&req.NumberOfParticipants, validation.Required, validation.Min(1), validation.Max(100)),
		validation.Field(&req.BookingDate, isBookingDate),
	)
}

func (req *KioskBookingRequest) ToParams() service.KioskBookingParams {
	var bookingDate time.Time
	if req.BookingDate != "" {
		bookingDate, _ = parseBookingDate(req.BookingDate)
	}

	return service.KioskBookingParams{
		TempleID:             req.TempleID,
		SlotID:               req.SlotID,
		MobileNumber:         req.MobileNumber,
		NumberOfParticipants: req.NumberOfParticipants,
		BookingDate:          bookingDate,
		Special:              req.Special,
	}
}

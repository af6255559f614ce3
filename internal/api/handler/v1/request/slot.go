package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/service"
)

var (
	errInvalidDate = errors.New("must be a date in YYYY-MM-DD format")
)

var isDate = validation.By(func(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	}
	if s == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return errInvalidDate
	}

	return nil
})

type CreateSlotRequest struct {
	TempleID               uint              `json:"templeId"`
	Date                   string            `json:"date"`
	StartTime              *domain.TimeOfDay `json:"startTime"`
	EndTime                *domain.TimeOfDay `json:"endTime"`
	Capacity               int               `json:"capacity"`
	ReservedOfflineTickets *int              `json:"reservedOfflineTickets"`
	Remaining              *int              `json:"remaining"`
}

// Validate checks presence and format only; capacity rules belong to the
// slot service.
func (req *CreateSlotRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TempleID, validation.Required),
		validation.Field(&req.Date, validation.Required, isDate),
		validation.Field(&req.StartTime, validation.NotNil),
		validation.Field(&req.EndTime, validation.NotNil),
	)
}

func (req *CreateSlotRequest) ToParams() service.CreateSlotParams {
	return service.CreateSlotParams{
		TempleID:               req.TempleID,
		Date:                   req.Date,
		StartTime:              *req.StartTime,
		EndTime:                *req.EndTime,
		Capacity:               req.Capacity,
		ReservedOfflineTickets: req.ReservedOfflineTickets,
		Remaining:              req.Remaining,
	}
}

type UpdateSlotRequest struct {
	Date                   *string           `json:"date"`
	StartTime              *domain.TimeOfDay `json:"startTime"`
	EndTime                *domain.TimeOfDay `json:"endTime"`
	Capacity               *int              `json:"capacity"`
	ReservedOfflineTickets *int              `json:"reservedOfflineTickets"`
	Remaining              *int              `json:"remaining"`
}

func (req *UpdateSlotRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Date, isDate),
	)
}

func (req *UpdateSlotRequest) ToDomain() domain.SlotUpdate {
	return domain.SlotUpdate{
		Date:                   req.Date,
		StartTime:              req.StartTime,
		EndTime:                req.EndTime,
		Capacity:               req.Capacity,
		ReservedOfflineTickets: req.ReservedOfflineTickets,
		Remaining:              req.Remaining,
	}
}

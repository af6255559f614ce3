package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/dharma-pro/temple-booking/internal/domain"
)

// BookingParticipantFields is shared by participant creation and inline
// participants of a new booking.
type BookingParticipantFields struct {
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	Category      string `json:"participant_by_category"`
	PhotoIDType   string `json:"photoIdType"`
	PhotoIDNumber string `json:"photoIdNumber"`
}

func (f BookingParticipantFields) Validate() error {
	return validation.ValidateStruct(
		&f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&f.Age, validation.Min(0), validation.Max(150)),
		validation.Field(&f.Gender, validation.Required),
		validation.Field(&f.PhotoIDNumber, validation.Length(0, 50)),
	)
}

func (f BookingParticipantFields) toDomain(bookingID uint) domain.Participant {
	return domain.Participant{
		BookingID:     bookingID,
		Name:          f.Name,
		Age:           f.Age,
		Gender:        f.Gender,
		Category:      f.Category,
		PhotoIDType:   f.PhotoIDType,
		PhotoIDNumber: f.PhotoIDNumber,
	}
}

type AddParticipantRequest struct {
	BookingID uint `json:"bookingId"`
	BookingParticipantFields
}

func (req *AddParticipantRequest) Validate() error {
	if err := validation.ValidateStruct(req, validation.Field(&req.BookingID, validation.Required)); err != nil {
		return err
	}

	return req.BookingParticipantFields.Validate()
}

func (req *AddParticipantRequest) ToDomain() domain.Participant {
	return req.toDomain(req.BookingID)
}

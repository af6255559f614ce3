package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/dharma-pro/temple-booking/internal/domain"
)

// UpdateProfileRequest changes only the fields present in the body. The user
// name is fixed at registration.
type UpdateProfileRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	MobileNumber *string `json:"mobileNumber"`
	Email        *string `json:"email"`
	Gender       *string `json:"gender"`
	State        *string `json:"state"`
	City         *string `json:"city"`
	ProfilePhoto *string `json:"profilePhoto"`
	Password     *string `json:"password"`
}

func (req *UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.NilOrNotEmpty),
		validation.Field(&req.LastName, validation.NilOrNotEmpty),
		validation.Field(&req.MobileNumber, validation.NilOrNotEmpty, is.Digit, validation.Length(10, 15)),
		validation.Field(&req.Email, validation.NilOrNotEmpty, is.Email),
		validation.Field(&req.ProfilePhoto, is.URL),
		validation.Field(&req.Password, validation.By(func(value interface{}) error {
			password, _ := value.(*string)
			if password == nil {
				return nil
			}

			return validatePassword(*password)
		})),
	)
}

func (req *UpdateProfileRequest) ToDomain() domain.UserUpdate {
	return domain.UserUpdate{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
		Gender:       req.Gender,
		State:        req.State,
		City:         req.City,
		ProfilePhoto: req.ProfilePhoto,
		Password:     req.Password,
	}
}

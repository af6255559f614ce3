package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/dharma-pro/temple-booking/internal/domain"
)

type CreateTempleRequest struct {
	TempleName string `json:"templeName"`
	Location   string `json:"location"`
}

func (req *CreateTempleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TempleName, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Location, validation.Required, validation.Length(1, 255)),
	)
}

func (req *CreateTempleRequest) ToDomain() domain.Temple {
	return domain.Temple{
		Name:     req.TempleName,
		Location: req.Location,
	}
}

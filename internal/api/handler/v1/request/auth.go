package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/dharma-pro/temple-booking/internal/domain"
)

const (
	passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{6,72}$`
)

var (
	errInvalidPassword = errors.New("the password must be 6 to 72 characters and contain at least 1 letter and 1 number")
	errMissingLogin    = errors.New("email or userName is required")

	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)
)

func validatePassword(password string) error {
	ok, err := passwordExp.MatchString(password)
	if err != nil {
		return err
	}
	if !ok {
		return errInvalidPassword
	}

	return nil
}

type RegisterUserRequest struct {
	UserName     string `json:"userName"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	MobileNumber string `json:"mobileNumber"`
	Email        string `json:"email"`
	Gender       string `json:"gender"`
	State        string `json:"state"`
	City         string `json:"city"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
	Password     string `json:"password"`
}

func (req *RegisterUserRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.UserName, validation.Required, validation.Length(3, 50)),
		validation.Field(&req.FirstName, validation.Required),
		validation.Field(&req.LastName, validation.Required),
		validation.Field(&req.MobileNumber, validation.Required, is.Digit, validation.Length(10, 15)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Gender, validation.Required),
		validation.Field(&req.State, validation.Required),
		validation.Field(&req.City, validation.Required),
		validation.Field(&req.ProfilePhoto, is.URL),
		validation.Field(&req.Password, validation.Required),
	)
	if err != nil {
		return err
	}

	return validatePassword(req.Password)
}

func (req *RegisterUserRequest) ToDomain() domain.User {
	return domain.User{
		UserName:     req.UserName,
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

// LoginRequest takes an email address or a user name as identifier.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Identifier, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}

type RegisterAdminRequest struct {
	AdminName string `json:"adminName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (req *RegisterAdminRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.AdminName, validation.Required),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
	if err != nil {
		return err
	}

	return validatePassword(req.Password)
}

// AdminLoginRequest accepts the email in either field; some front-ends send
// it as userName.
type AdminLoginRequest struct {
	UserName string `json:"userName" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (req *AdminLoginRequest) Login() string {
	if req.Email != "" {
		return req.Email
	}

	return req.UserName
}

func (req *AdminLoginRequest) Validate() error {
	if req.Login() == "" {
		return errMissingLogin
	}

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Password, validation.Required),
	)
}

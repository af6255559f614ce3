package domain

import "time"

type User struct {
	ID           uint      `json:"userId"`
	UserName     string    `json:"userName"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	MobileNumber string    `json:"mobileNumber"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	Gender       string    `json:"gender"`
	State        string    `json:"state"`
	City         string    `json:"city"`
	ProfilePhoto string    `json:"profilePhoto,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// HasPassword is false for accounts created through OAuth2 login.
func (u User) HasPassword() bool {
	return u.Password != ""
}

// UserUpdate carries the profile fields a user may change; nil fields are
// left alone. Password is the new plain-text password.
type UserUpdate struct {
	FirstName    *string
	LastName     *string
	MobileNumber *string
	Email        *string
	Gender       *string
	State        *string
	City         *string
	ProfilePhoto *string
	Password     *string
}

// Apply copies the set fields except Password, which must be hashed first.
func (u *User) Apply(update UserUpdate) {
	set := func(dst, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	set(&u.FirstName, update.FirstName)
	set(&u.LastName, update.LastName)
	set(&u.MobileNumber, update.MobileNumber)
	set(&u.Email, update.Email)
	set(&u.Gender, update.Gender)
	set(&u.State, update.State)
	set(&u.City, update.City)
	set(&u.ProfilePhoto, update.ProfilePhoto)
}

type Admin struct {
	ID        uint      `json:"adminId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

package dao

import (
	"context"
	"errors"
	"slices"
	"time"

	"gorm.io/gorm"
)

var (
	ErrUserEmailExists  = errors.New("email already registered")
	ErrUserNameExists   = errors.New("username already taken")
	ErrUserNotFound     = errors.New("user not found")
	ErrAdminEmailExists = errors.New("admin email already registered")
	ErrAdminNotFound    = errors.New("admin not found")
)

type User struct {
	ID uint `gorm:"primaryKey"`

	UserName string  `gorm:"unique;not null"`
	Email    string  `gorm:"unique;not null"`
	Password *string // nil for OAuth2-only accounts

	FirstName    string
	LastName     string
	MobileNumber string
	Gender       string
	State        string
	City         string
	ProfilePhoto string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Admin struct {
	ID uint `gorm:"primaryKey"`

	Name     string `gorm:"not null"`
	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_users_email") {
			return User{}, ErrUserEmailExists
		}
		if isUniqueViolation(result.Error, "uni_users_user_name") {
			return User{}, ErrUserNameExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) Update(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Save(&user)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_users_email") {
			return User{}, ErrUserEmailExists
		}
		if isUniqueViolation(result.Error, "uni_users_user_name") {
			return User{}, ErrUserNameExists
		}

		return User{}, result.Error
	}

	return user, nil
}

// Delete removes the user with their bookings and everything those bookings
// own, handing the booked seats back to their slots. It returns the IDs of
// the slots that got seats back. SMS log rows are kept with the user cleared.
func (d *UserDAO) Delete(ctx context.Context, id uint) ([]uint, error) {
	var released []uint

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}

			return err
		}

		var bookings []Booking
		if err := tx.Where("user_id = ?", id).Order("id").Find(&bookings).Error; err != nil {
			return err
		}

		bookingIDs := make([]uint, 0, len(bookings))
		for _, b := range bookings {
			bookingIDs = append(bookingIDs, b.ID)
			if b.SlotID == nil || b.Seats <= 0 {
				continue
			}
			if err := releaseSeats(tx, *b.SlotID, b.Seats); err != nil {
				return err
			}
			if !slices.Contains(released, *b.SlotID) {
				released = append(released, *b.SlotID)
			}
		}
		if err := deleteBookingsTx(tx, bookingIDs); err != nil {
			return err
		}

		if err := tx.Model(&SMSLog{}).Where("user_id = ?", id).Update("user_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
	if err != nil {
		return nil, err
	}

	return released, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	return d.findOne(ctx, "id = ?", id)
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	return d.findOne(ctx, "email = ?", email)
}

func (d *UserDAO) FindByUserName(ctx context.Context, userName string) (User, error) {
	return d.findOne(ctx, "user_name = ?", userName)
}

// FindByIdentifier matches either the email or the username.
func (d *UserDAO) FindByIdentifier(ctx context.Context, identifier string) (User, error) {
	return d.findOne(ctx, "email = ? OR user_name = ?", identifier, identifier)
}

func (d *UserDAO) findOne(ctx context.Context, query string, args ...any) (User, error) {
	var user User

	result := d.db.WithContext(ctx).Where(query, args...).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

type AdminDAO struct {
	db *gorm.DB
}

func NewAdminDAO(db *gorm.DB) *AdminDAO {
	return &AdminDAO{
		db: db,
	}
}

func (d *AdminDAO) Insert(ctx context.Context, admin Admin) (Admin, error) {
	result := d.db.WithContext(ctx).Create(&admin)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_admins_email") {
			return Admin{}, ErrAdminEmailExists
		}

		return Admin{}, result.Error
	}

	return admin, nil
}

func (d *AdminDAO) FindByID(ctx context.Context, id uint) (Admin, error) {
	var admin Admin

	result := d.db.WithContext(ctx).First(&admin, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Admin{}, ErrAdminNotFound
		}

		return Admin{}, result.Error
	}

	return admin, nil
}

func (d *AdminDAO) FindByEmail(ctx context.Context, email string) (Admin, error) {
	var admin Admin

	result := d.db.WithContext(ctx).First(&admin, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Admin{}, ErrAdminNotFound
		}

		return Admin{}, result.Error
	}

	return admin, nil
}

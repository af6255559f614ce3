package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type SMSLog struct {
	ID uint `gorm:"primaryKey"`

	UserID       *uint  `gorm:"index"`
	MobileNumber string `gorm:"not null"`
	Message      string `gorm:"type:text;not null"`
	Status       string `gorm:"type:varchar(16);not null;default:PENDING"`

	CreatedAt time.Time `gorm:"not null"`
}

type SMSLogDAO struct {
	db *gorm.DB
}

func NewSMSLogDAO(db *gorm.DB) *SMSLogDAO {
	return &SMSLogDAO{
		db: db,
	}
}

func (d *SMSLogDAO) Insert(ctx context.Context, log SMSLog) (SMSLog, error) {
	result := d.db.WithContext(ctx).Create(&log)
	if result.Error != nil {
		return SMSLog{}, result.Error
	}

	return log, nil
}

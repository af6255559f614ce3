package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Temple{},
		&Slot{},
		&User{},
		&Admin{},
		&Booking{},
		&BookingParticipant{},
		&Payment{},
		&SMSLog{},
		&ParkingZone{},
		&ParkingSlot{},
	)
}

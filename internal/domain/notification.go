package domain

import "time"

type SMSStatus string

const (
	SMSSent    SMSStatus = "SENT"
	SMSFailed  SMSStatus = "FAILED"
	SMSSkipped SMSStatus = "SKIPPED"
)

type SMSLog struct {
	ID           uint      `json:"id"`
	UserID       *uint     `json:"userId"`
	MobileNumber string    `json:"mobileNumber"`
	Message      string    `json:"message"`
	Status       SMSStatus `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

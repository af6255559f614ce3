package domain

import "time"

type BookingType string

const (
	BookingOnline  BookingType = "ONLINE"
	BookingOffline BookingType = "OFFLINE"
)

type Booking struct {
	ID                   uint          `json:"bookingId"`
	UserID               *uint         `json:"userId"`
	TempleID             uint          `json:"templeId"`
	SlotID               *uint         `json:"slotId"`
	BookingType          BookingType   `json:"bookingType"`
	Special              bool          `json:"special"`
	BookingDate          time.Time     `json:"bookingDate"`
	MobileNumber         string        `json:"mobileNumber"`
	NumberOfParticipants int           `json:"numberOfParticipants"`
	Seats                int           `json:"seats"`
	Participants         []Participant `json:"participants,omitempty"`
	CreatedAt            time.Time     `json:"createdAt"`
}

// SeatsFor returns how many slot seats a party occupies. A booking without
// named participants still occupies one seat.
func SeatsFor(participants int) int {
	return max(1, participants)
}

type Participant struct {
	ID            uint   `json:"participantId"`
	BookingID     uint   `json:"bookingId"`
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	Category      string `json:"category"`
	PhotoIDType   string `json:"photoIdType,omitempty"`
	PhotoIDNumber string `json:"photoIdNumber,omitempty"`
}

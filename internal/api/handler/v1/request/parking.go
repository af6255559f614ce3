package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/dharma-pro/temple-booking/internal/domain"
)

// statusOrDefault treats a missing status as active.
func statusOrDefault(status *bool) bool {
	return status == nil || *status
}

type CreateParkingZoneRequest struct {
	TempleID    uint  `json:"templeId"`
	TotalSlots  int   `json:"totalSlots"`
	FreeSlots   int   `json:"freeSlots"`
	FilledSlots int   `json:"filledSlots"`
	TwoWheeler  int   `json:"twoWheeler"`
	FourWheeler int   `json:"fourWheeler"`
	CCTVCount   int   `json:"cctvCount"`
	Status      *bool `json:"status"`
}

func (req *CreateParkingZoneRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TempleID, validation.Required),
		validation.Field(&req.TotalSlots, validation.Min(0)),
		validation.Field(&req.FreeSlots, validation.Min(0)),
		validation.Field(&req.FilledSlots, validation.Min(0)),
		validation.Field(&req.TwoWheeler, validation.Min(0)),
		validation.Field(&req.FourWheeler, validation.Min(0)),
		validation.Field(&req.CCTVCount, validation.Min(0)),
	)
}

func (req *CreateParkingZoneRequest) ToDomain() domain.ParkingZone {
	return domain.ParkingZone{
		TempleID:    req.TempleID,
		TotalSlots:  req.TotalSlots,
		FreeSlots:   req.FreeSlots,
		FilledSlots: req.FilledSlots,
		TwoWheeler:  req.TwoWheeler,
		FourWheeler: req.FourWheeler,
		CCTVCount:   req.CCTVCount,
		Status:      statusOrDefault(req.Status),
	}
}

type UpdateParkingZoneRequest struct {
	TotalSlots  *int  `json:"totalSlots"`
	FreeSlots   *int  `json:"freeSlots"`
	FilledSlots *int  `json:"filledSlots"`
	TwoWheeler  *int  `json:"twoWheeler"`
	FourWheeler *int  `json:"fourWheeler"`
	CCTVCount   *int  `json:"cctvCount"`
	Status      *bool `json:"status"`
}

func (req *UpdateParkingZoneRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TotalSlots, validation.Min(0)),
		validation.Field(&req.FreeSlots, validation.Min(0)),
		validation.Field(&req.FilledSlots, validation.Min(0)),
		validation.Field(&req.TwoWheeler, validation.Min(0)),
		validation.Field(&req.FourWheeler, validation.Min(0)),
		validation.Field(&req.CCTVCount, validation.Min(0)),
	)
}

func (req *UpdateParkingZoneRequest) ToDomain() domain.ParkingZoneUpdate {
	return domain.ParkingZoneUpdate{
		TotalSlots:  req.TotalSlots,
		FreeSlots:   req.FreeSlots,
		FilledSlots: req.FilledSlots,
		TwoWheeler:  req.TwoWheeler,
		FourWheeler: req.FourWheeler,
		CCTVCount:   req.CCTVCount,
		Status:      req.Status,
	}
}

type CreateParkingSlotRequest struct {
	ParkingID        uint  `json:"parkingId"`
	SlotAvailability *bool `json:"slotAvailability"`
	Status           *bool `json:"status"`
	SlotCapacity     int   `json:"slotCapacity"`
}

func (req *CreateParkingSlotRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ParkingID, validation.Required),
		validation.Field(&req.SlotAvailability, validation.NotNil),
		validation.Field(&req.SlotCapacity, validation.Required, validation.Min(1)),
	)
}

func (req *CreateParkingSlotRequest) ToDomain() domain.ParkingSlot {
	return domain.ParkingSlot{
		ParkingZoneID: req.ParkingID,
		Available:     req.SlotAvailability != nil && *req.SlotAvailability,
		Status:        statusOrDefault(req.Status),
		Capacity:      req.SlotCapacity,
	}
}

type UpdateParkingSlotRequest struct {
	ParkingID        *uint `json:"parkingId"`
	SlotAvailability *bool `json:"slotAvailability"`
	Status           *bool `json:"status"`
	SlotCapacity     *int  `json:"slotCapacity"`
}

func (req *UpdateParkingSlotRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ParkingID, validation.NilOrNotEmpty),
		validation.Field(&req.SlotCapacity, validation.NilOrNotEmpty, validation.Min(1)),
	)
}

func (req *UpdateParkingSlotRequest) ToDomain() domain.ParkingSlotUpdate {
	return domain.ParkingSlotUpdate{
		ParkingZoneID: req.ParkingID,
		Available:     req.SlotAvailability,
		Status:        req.Status,
		Capacity:      req.SlotCapacity,
	}
}

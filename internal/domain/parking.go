package domain

import "time"

// ParkingZone is a temple's parking area. The counts are maintained by the
// temple staff; they are not derived from the zone's slots.
type ParkingZone struct {
	ID          uint      `json:"parkingId"`
	TempleID    uint      `json:"templeId"`
	TotalSlots  int       `json:"totalSlots"`
	FreeSlots   int       `json:"freeSlots"`
	FilledSlots int       `json:"filledSlots"`
	TwoWheeler  int       `json:"twoWheeler"`
	FourWheeler int       `json:"fourWheeler"`
	CCTVCount   int       `json:"cctvCount"`
	Status      bool      `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CountsFit reports whether free and filled slots fit in the zone.
func (z ParkingZone) CountsFit() bool {
	return z.FreeSlots+z.FilledSlots <= z.TotalSlots
}

type ParkingZoneUpdate struct {
	TotalSlots  *int
	FreeSlots   *int
	FilledSlots *int
	TwoWheeler  *int
	FourWheeler *int
	CCTVCount   *int
	Status      *bool
}

func (z *ParkingZone) Apply(update ParkingZoneUpdate) {
	setInt(&z.TotalSlots, update.TotalSlots)
	setInt(&z.FreeSlots, update.FreeSlots)
	setInt(&z.FilledSlots, update.FilledSlots)
	setInt(&z.TwoWheeler, update.TwoWheeler)
	setInt(&z.FourWheeler, update.FourWheeler)
	setInt(&z.CCTVCount, update.CCTVCount)
	if update.Status != nil {
		z.Status = *update.Status
	}
}

type ParkingSlot struct {
	ID            uint      `json:"slotId"`
	ParkingZoneID uint      `json:"parkingId"`
	Available     bool      `json:"slotAvailability"`
	Status        bool      `json:"status"`
	Capacity      int       `json:"slotCapacity"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ParkingSlotUpdate may move the slot to another zone.
type ParkingSlotUpdate struct {
	ParkingZoneID *uint
	Available     *bool
	Status        *bool
	Capacity      *int
}

func (s *ParkingSlot) Apply(update ParkingSlotUpdate) {
	if update.ParkingZoneID != nil {
		s.ParkingZoneID = *update.ParkingZoneID
	}
	if update.Available != nil {
		s.Available = *update.Available
	}
	if update.Status != nil {
		s.Status = *update.Status
	}
	setInt(&s.Capacity, update.Capacity)
}

func setInt(dst, src *int) {
	if src != nil {
		*dst = *src
	}
}

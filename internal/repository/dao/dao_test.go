package dao_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dharma-pro/temple-booking/internal/pkg/testdb"
	"github.com/dharma-pro/temple-booking/internal/repository/dao"
)

func uintPtr(u uint) *uint { return &u }

func seedTemple(t *testing.T, db *gorm.DB, name string) dao.Temple {
	t.Helper()

	temple, err := dao.NewTempleDAO(db).Insert(context.Background(), dao.Temple{Name: name, Location: "Somnath"})
	require.NoError(t, err)

	return temple
}

func seedSlot(t *testing.T, db *gorm.DB, templeID uint, remaining int) dao.Slot {
	t.Helper()

	slot, err := dao.NewSlotDAO(db).InsertLocked(context.Background(), templeID, func(siblings []dao.Slot) (dao.Slot, error) {
		return dao.Slot{
			Date:          "2024-01-01",
			StartTime:     9 * 3600,
			EndTime:       10 * 3600,
			Capacity:      remaining,
			OnlineTickets: remaining,
			Remaining:     remaining,
			SlotNumber:    len(siblings) + 1,
		}, nil
	})
	require.NoError(t, err)

	return slot
}

func TestSlotDAO_InsertLocked(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	temple := seedTemple(t, db, "Somnath")
	slots := dao.NewSlotDAO(db)

	first := seedSlot(t, db, temple.ID, 10)
	assert.Equal(t, temple.ID, first.TempleID)
	assert.Equal(t, 1, first.SlotNumber)
	assert.False(t, first.CreatedAt.IsZero())

	var seen []dao.Slot
	second, err := slots.InsertLocked(ctx, temple.ID, func(siblings []dao.Slot) (dao.Slot, error) {
		seen = siblings
		return dao.Slot{Date: "2024-01-02", StartTime: 0, EndTime: 60, Capacity: 1, OnlineTickets: 1, Remaining: 1, SlotNumber: 2}, nil
	})
	require.NoError(t, err)
	assert.Len(t, seen, 1)
	assert.Equal(t, 2, second.SlotNumber)

	errBuild := errors.New("rejected")
	_, err = slots.InsertLocked(ctx, temple.ID, func([]dao.Slot) (dao.Slot, error) {
		return dao.Slot{}, errBuild
	})
	assert.ErrorIs(t, err, errBuild)

	_, err = slots.InsertLocked(ctx, 999, func([]dao.Slot) (dao.Slot, error) {
		t.Fatal("builder must not run for a missing temple")
		return dao.Slot{}, nil
	})
	assert.ErrorIs(t, err, dao.ErrTempleNotFound)

	all, err := slots.Find(ctx, temple.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := slots.Find(ctx, 0, "2024-01-02")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, second.ID, filtered[0].ID)
}

func TestSlotDAO_UpdateLocked(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	temple := seedTemple(t, db, "Somnath")
	slot := seedSlot(t, db, temple.ID, 10)
	slots := dao.NewSlotDAO(db)

	updated, err := slots.UpdateLocked(ctx, slot.ID, func(current dao.Slot, siblings []dao.Slot) (dao.Slot, error) {
		assert.Empty(t, siblings)
		current.Capacity = 20
		current.CreatedAt = time.Time{}
		return current, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 20, updated.Capacity)

	found, err := slots.FindByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, found.Capacity)
	assert.WithinDuration(t, slot.CreatedAt, found.CreatedAt, time.Second)

	_, err = slots.UpdateLocked(ctx, 999, func(current dao.Slot, _ []dao.Slot) (dao.Slot, error) { return current, nil })
	assert.ErrorIs(t, err, dao.ErrSlotNotFound)
}

func TestBookingDAO_SeatAccounting(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	temple := seedTemple(t, db, "Somnath")
	slot := seedSlot(t, db, temple.ID, 3)
	bookings := dao.NewBookingDAO(db)
	slots := dao.NewSlotDAO(db)

	booking, err := bookings.Insert(ctx, dao.Booking{
		TempleID:             temple.ID,
		SlotID:               uintPtr(slot.ID),
		BookingType:          "ONLINE",
		BookingDate:          time.Now(),
		NumberOfParticipants: 2,
		Seats:                2,
		Participants: []dao.BookingParticipant{
			{Name: "Asha", Age: 30},
			{Name: "Ravi", Age: 32},
		},
	})
	require.NoError(t, err)

	found, err := slots.FindByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.Remaining)

	_, err = bookings.Insert(ctx, dao.Booking{
		TempleID:    temple.ID,
		SlotID:      uintPtr(slot.ID),
		BookingType: "ONLINE",
		BookingDate: time.Now(),
		Seats:       2,
	})
	assert.ErrorIs(t, err, dao.ErrSlotFull)

	all, err := bookings.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "a rejected booking must not be persisted")

	loaded, err := bookings.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Participants, 2)

	_, err = bookings.Delete(ctx, booking.ID)
	require.NoError(t, err)

	found, err = slots.FindByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, found.Remaining)

	participants, err := dao.NewParticipantDAO(db).FindByBookingID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Empty(t, participants)

	_, err = bookings.Delete(ctx, booking.ID)
	assert.ErrorIs(t, err, dao.ErrBookingNotFound)
}

func TestTempleDAO_DeleteCascades(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	temple := seedTemple(t, db, "Somnath")
	other := seedTemple(t, db, "Dwarka")
	slot := seedSlot(t, db, temple.ID, 10)
	otherSlot := seedSlot(t, db, other.ID, 10)

	booking, err := dao.NewBookingDAO(db).Insert(ctx, dao.Booking{
		TempleID:     temple.ID,
		SlotID:       uintPtr(slot.ID),
		BookingType:  "ONLINE",
		BookingDate:  time.Now(),
		Participants: []dao.BookingParticipant{{Name: "Asha"}},
	})
	require.NoError(t, err)
	_, err = dao.NewPaymentDAO(db).Insert(ctx, dao.Payment{BookingID: booking.ID, Amount: 500, Status: "PENDING", PaymentDate: time.Now()})
	require.NoError(t, err)
	kept, err := dao.NewBookingDAO(db).Insert(ctx, dao.Booking{
		TempleID:    other.ID,
		SlotID:      uintPtr(otherSlot.ID),
		BookingType: "ONLINE",
		BookingDate: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, dao.NewTempleDAO(db).Delete(ctx, temple.ID))

	_, err = dao.NewTempleDAO(db).FindByID(ctx, temple.ID)
	assert.ErrorIs(t, err, dao.ErrTempleNotFound)
	_, err = dao.NewSlotDAO(db).FindByID(ctx, slot.ID)
	assert.ErrorIs(t, err, dao.ErrSlotNotFound)
	_, err = dao.NewBookingDAO(db).FindByID(ctx, booking.ID)
	assert.ErrorIs(t, err, dao.ErrBookingNotFound)
	_, err = dao.NewPaymentDAO(db).FindByBookingID(ctx, booking.ID)
	assert.ErrorIs(t, err, dao.ErrPaymentNotFound)

	var participants int64
	require.NoError(t, db.Model(&dao.BookingParticipant{}).Count(&participants).Error)
	assert.Zero(t, participants)

	_, err = dao.NewBookingDAO(db).FindByID(ctx, kept.ID)
	assert.NoError(t, err)
	_, err = dao.NewSlotDAO(db).FindByID(ctx, otherSlot.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, dao.NewTempleDAO(db).Delete(ctx, temple.ID), dao.ErrTempleNotFound)
}

func TestUserDAO_DeleteCascades(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	temple := seedTemple(t, db, "Somnath")
	slot := seedSlot(t, db, temple.ID, 3)
	users := dao.NewUserDAO(db)
	bookings := dao.NewBookingDAO(db)

	asha, err := users.Insert(ctx, dao.User{UserName: "asha", Email: "asha@example.com"})
	require.NoError(t, err)
	ravi, err := users.Insert(ctx, dao.User{UserName: "ravi", Email: "ravi@example.com"})
	require.NoError(t, err)

	booking, err := bookings.Insert(ctx, dao.Booking{
		UserID:       uintPtr(asha.ID),
		TempleID:     temple.ID,
		SlotID:       uintPtr(slot.ID),
		BookingType:  "ONLINE",
		BookingDate:  time.Now(),
		Seats:        2,
		Participants: []dao.BookingParticipant{{Name: "Asha"}, {Name: "Meera"}},
	})
	require.NoError(t, err)
	_, err = dao.NewPaymentDAO(db).Insert(ctx, dao.Payment{BookingID: booking.ID, Amount: 500, Status: "PENDING", PaymentDate: time.Now()})
	require.NoError(t, err)
	kept, err := bookings.Insert(ctx, dao.Booking{
		UserID:      uintPtr(ravi.ID),
		TempleID:    temple.ID,
		SlotID:      uintPtr(slot.ID),
		BookingType: "ONLINE",
		BookingDate: time.Now(),
		Seats:       1,
	})
	require.NoError(t, err)
	sms, err := dao.NewSMSLogDAO(db).Insert(ctx, dao.SMSLog{UserID: uintPtr(asha.ID), MobileNumber: "9876543210", Message: "hi", CreatedAt: time.Now()})
	require.NoError(t, err)

	released, err := users.Delete(ctx, asha.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{slot.ID}, released)

	_, err = users.FindByID(ctx, asha.ID)
	assert.ErrorIs(t, err, dao.ErrUserNotFound)
	_, err = bookings.FindByID(ctx, booking.ID)
	assert.ErrorIs(t, err, dao.ErrBookingNotFound)
	_, err = dao.NewPaymentDAO(db).FindByBookingID(ctx, booking.ID)
	assert.ErrorIs(t, err, dao.ErrPaymentNotFound)
	participants, err := dao.NewParticipantDAO(db).FindByBookingID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Empty(t, participants)

	found, err := dao.NewSlotDAO(db).FindByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.Remaining)
	_, err = bookings.FindByID(ctx, kept.ID)
	assert.NoError(t, err)

	var log dao.SMSLog
	require.NoError(t, db.First(&log, sms.ID).Error)
	assert.Nil(t, log.UserID)

	_, err = users.Delete(ctx, asha.ID)
	assert.ErrorIs(t, err, dao.ErrUserNotFound)
}

func TestSlotDAO_DeleteClearsBookings(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	temple := seedTemple(t, db, "Somnath")
	slot := seedSlot(t, db, temple.ID, 10)

	booking, err := dao.NewBookingDAO(db).Insert(ctx, dao.Booking{
		TempleID:    temple.ID,
		SlotID:      uintPtr(slot.ID),
		BookingType: "ONLINE",
		BookingDate: time.Now(),
	})
	require.NoError(t, err)

	_, err = dao.NewSlotDAO(db).Delete(ctx, slot.ID)
	require.NoError(t, err)

	found, err := dao.NewBookingDAO(db).FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Nil(t, found.SlotID)

	_, err = dao.NewSlotDAO(db).Delete(ctx, slot.ID)
	assert.ErrorIs(t, err, dao.ErrSlotNotFound)
}

func TestPaymentDAO_UpdateLocked(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	payments := dao.NewPaymentDAO(db)

	payment, err := payments.Insert(ctx, dao.Payment{BookingID: 1, Amount: 500, Status: "PENDING", PaymentDate: time.Now()})
	require.NoError(t, err)

	updated, err := payments.UpdateLocked(ctx, payment.ID, func(p *dao.Payment) (bool, error) {
		p.Status = "CONFIRMED"
		p.TransactionID = "tx1"
		return true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", updated.Status)

	_, err = payments.UpdateLocked(ctx, payment.ID, func(p *dao.Payment) (bool, error) {
		p.Status = "CANCELLED"
		return false, nil
	})
	require.NoError(t, err)

	found, err := payments.FindByID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", found.Status)
	assert.Equal(t, "tx1", found.TransactionID)

	_, err = payments.UpdateLocked(ctx, 999, func(*dao.Payment) (bool, error) { return true, nil })
	assert.ErrorIs(t, err, dao.ErrPaymentNotFound)
}

func TestUserDAO_FindByIdentifier(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	users := dao.NewUserDAO(db)

	created, err := users.Insert(ctx, dao.User{UserName: "asha", Email: "asha@example.com", MobileNumber: "9999"})
	require.NoError(t, err)

	byEmail, err := users.FindByIdentifier(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byName, err := users.FindByIdentifier(ctx, "asha")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
	assert.Nil(t, byName.Password)

	_, err = users.FindByIdentifier(ctx, "nobody")
	assert.ErrorIs(t, err, dao.ErrUserNotFound)
}

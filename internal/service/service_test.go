package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/pkg/testdb"
	"github.com/dharma-pro/temple-booking/internal/repository"
	"github.com/dharma-pro/temple-booking/internal/repository/dao"
	"github.com/dharma-pro/temple-booking/internal/service"
)

func intPtr(i int) *int    { return &i }
func uintPtr(u uint) *uint { return &u }

type sentMessage struct {
	UserID       *uint
	MobileNumber string
	Message      string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (n *fakeNotifier) Send(_ context.Context, userID *uint, mobileNumber, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, sentMessage{UserID: userID, MobileNumber: mobileNumber, Message: message})

	return nil
}

type fakePublisher struct {
	mu        sync.Mutex
	published []domain.SlotAvailability
}

func (p *fakePublisher) Publish(availability domain.SlotAvailability) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.published = append(p.published, availability)
}

func (p *fakePublisher) last() domain.SlotAvailability {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.published[len(p.published)-1]
}

type repos struct {
	db           *gorm.DB
	temples      *repository.TempleRepository
	slots        *repository.SlotRepository
	users        *repository.UserRepository
	admins       *repository.AdminRepository
	bookings     *repository.BookingRepository
	participants *repository.ParticipantRepository
	payments     *repository.PaymentRepository
	parking      *repository.ParkingRepository
}

func newRepos(t *testing.T) repos {
	t.Helper()

	db := testdb.New(t)

	return repos{
		db:           db,
		temples:      repository.NewTempleRepository(dao.NewTempleDAO(db)),
		slots:        repository.NewSlotRepository(dao.NewSlotDAO(db)),
		users:        repository.NewUserRepository(dao.NewUserDAO(db)),
		admins:       repository.NewAdminRepository(dao.NewAdminDAO(db)),
		bookings:     repository.NewBookingRepository(dao.NewBookingDAO(db)),
		participants: repository.NewParticipantRepository(dao.NewParticipantDAO(db)),
		payments:     repository.NewPaymentRepository(dao.NewPaymentDAO(db)),
		parking:      repository.NewParkingRepository(dao.NewParkingDAO(db)),
	}
}

func (r repos) seedTemple(t *testing.T, name string) domain.Temple {
	t.Helper()

	temple, err := service.NewTempleService(r.temples).CreateTemple(context.Background(), domain.Temple{Name: name, Location: "Gujarat"})
	require.NoError(t, err)

	return temple
}

func (r repos) seedSlot(t *testing.T, templeID uint, date string, startHour, capacity int) domain.Slot {
	t.Helper()

	slot, err := service.NewSlotService(r.slots, nil).CreateSlot(context.Background(), service.CreateSlotParams{
		TempleID:  templeID,
		Date:      date,
		StartTime: domain.NewTimeOfDay(startHour, 0, 0),
		EndTime:   domain.NewTimeOfDay(startHour+1, 0, 0),
		Capacity:  capacity,
	})
	require.NoError(t, err)

	return slot
}

func (r repos) seedUser(t *testing.T, userName, email string) domain.User {
	t.Helper()

	user, err := service.NewAuthService(r.users).Register(context.Background(), domain.User{
		UserName:     userName,
		FirstName:    "Asha",
		LastName:     "Patel",
		Email:        email,
		MobileNumber: "9876543210",
		Password:     "secret123",
	})
	require.NoError(t, err)

	return user
}

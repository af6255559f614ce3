//go:build integration

package db_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dharma-pro/temple-booking/internal/db"
	"github.com/dharma-pro/temple-booking/internal/repository/dao"
)

func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	require.NoError(t, pool.Client.Ping())

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_DB=dharma",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	_ = resource.Expire(120)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	url := fmt.Sprintf("postgres://postgres:postgres@%s/dharma?sslmode=disable", resource.GetHostPort("5432/tcp"))

	var conn *gorm.DB
	require.NoError(t, pool.Retry(func() error {
		conn, err = db.OpenPostgresWithURL(url)
		return err
	}))
	require.NoError(t, dao.InitTables(conn))

	return conn
}

func TestPostgres(t *testing.T) {
	conn := startPostgres(t)
	ctx := context.Background()

	t.Run("unique violations map to sentinels", func(t *testing.T) {
		users := dao.NewUserDAO(conn)

		_, err := users.Insert(ctx, dao.User{UserName: "asha", Email: "asha@example.com"})
		require.NoError(t, err)

		_, err = users.Insert(ctx, dao.User{UserName: "asha2", Email: "asha@example.com"})
		assert.ErrorIs(t, err, dao.ErrUserEmailExists)

		_, err = users.Insert(ctx, dao.User{UserName: "asha", Email: "other@example.com"})
		assert.ErrorIs(t, err, dao.ErrUserNameExists)

		ravi, err := users.Insert(ctx, dao.User{UserName: "ravi", Email: "ravi@example.com"})
		require.NoError(t, err)
		ravi.Email = "asha@example.com"
		_, err = users.Update(ctx, ravi)
		assert.ErrorIs(t, err, dao.ErrUserEmailExists)

		admins := dao.NewAdminDAO(conn)
		_, err = admins.Insert(ctx, dao.Admin{Name: "root", Email: "admin@dharma.in", Password: "x"})
		require.NoError(t, err)
		_, err = admins.Insert(ctx, dao.Admin{Name: "root", Email: "admin@dharma.in", Password: "x"})
		assert.ErrorIs(t, err, dao.ErrAdminEmailExists)
	})

	t.Run("concurrent bookings never oversell", func(t *testing.T) {
		temple, err := dao.NewTempleDAO(conn).Insert(ctx, dao.Temple{Name: "Somnath", Location: "Gujarat"})
		require.NoError(t, err)

		slot, err := dao.NewSlotDAO(conn).InsertLocked(ctx, temple.ID, func([]dao.Slot) (dao.Slot, error) {
			return dao.Slot{
				Date:          "2024-01-01",
				StartTime:     9 * 3600,
				EndTime:       10 * 3600,
				Capacity:      5,
				OnlineTickets: 5,
				Remaining:     5,
				SlotNumber:    1,
			}, nil
		})
		require.NoError(t, err)

		bookings := dao.NewBookingDAO(conn)
		var (
			wg     sync.WaitGroup
			mu     sync.Mutex
			booked int
			full   int
		)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				_, err := bookings.Insert(ctx, dao.Booking{
					TempleID:    temple.ID,
					SlotID:      &slot.ID,
					BookingType: "ONLINE",
					Seats:       1,
				})

				mu.Lock()
				defer mu.Unlock()
				if err == nil {
					booked++
				} else if assert.ErrorIs(t, err, dao.ErrSlotFull) {
					full++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 5, booked)
		assert.Equal(t, 15, full)

		got, err := dao.NewSlotDAO(conn).FindByID(ctx, slot.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Remaining)
	})

	t.Run("concurrent slot creation keeps numbers unique", func(t *testing.T) {
		temple, err := dao.NewTempleDAO(conn).Insert(ctx, dao.Temple{Name: "Dwarka", Location: "Gujarat"})
		require.NoError(t, err)

		slots := dao.NewSlotDAO(conn)
		var wg sync.WaitGroup
		for i := 0; i < 6; i++ {
			wg.Add(1)
			go func(hour int) {
				defer wg.Done()

				_, err := slots.InsertLocked(ctx, temple.ID, func(siblings []dao.Slot) (dao.Slot, error) {
					return dao.Slot{
						Date:          "2024-01-01",
						StartTime:     hour * 3600,
						EndTime:       (hour + 1) * 3600,
						Capacity:      1,
						OnlineTickets: 1,
						Remaining:     1,
						SlotNumber:    len(siblings) + 1,
					}, nil
				})
				assert.NoError(t, err)
			}(6 + i)
		}
		wg.Wait()

		all, err := slots.Find(ctx, temple.ID, "")
		require.NoError(t, err)
		require.Len(t, all, 6)

		seen := make(map[int]bool)
		for _, s := range all {
			assert.False(t, seen[s.SlotNumber], "duplicate slot number %d", s.SlotNumber)
			seen[s.SlotNumber] = true
		}
	})
}

package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() RegisterUserRequest {
	return RegisterUserRequest{
		UserName:     "asha",
		FirstName:    "Asha",
		LastName:     "Patel",
		MobileNumber: "9876543210",
		Email:        "asha@example.com",
		Gender:       "F",
		State:        "Gujarat",
		City:         "Veraval",
		Password:     "secret123",
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		wantErr  bool
	}{
		{password: "secret123"},
		{password: "a1b2c3"},
		{password: "12345678", wantErr: true},
		{password: "password", wantErr: true},
		{password: "a1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := validatePassword(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidPassword)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRegisterUserRequest_Validate(t *testing.T) {
	req := validUser()
	require.NoError(t, req.Validate())

	tests := map[string]func(r *RegisterUserRequest){
		"short user name":  func(r *RegisterUserRequest) { r.UserName = "as" },
		"bad email":        func(r *RegisterUserRequest) { r.Email = "asha" },
		"letters in phone": func(r *RegisterUserRequest) { r.MobileNumber = "98765abcde" },
		"short phone":      func(r *RegisterUserRequest) { r.MobileNumber = "98765" },
		"missing city":     func(r *RegisterUserRequest) { r.City = "" },
		"photo not a url":  func(r *RegisterUserRequest) { r.ProfilePhoto = "://bad" },
		"weak password":    func(r *RegisterUserRequest) { r.Password = "abcdefgh" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			r := validUser()
			mutate(&r)
			assert.Error(t, r.Validate())
		})
	}
}

func TestAdminLoginRequest(t *testing.T) {
	req := AdminLoginRequest{UserName: "admin@dharma.in", Password: "x"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "admin@dharma.in", req.Login())

	req.Email = "root@dharma.in"
	assert.Equal(t, "root@dharma.in", req.Login())

	req = AdminLoginRequest{Password: "x"}
	assert.ErrorIs(t, req.Validate(), errMissingLogin)
}

func TestParseBookingDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{in: "2024-01-01", want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)},
		{in: "2024-01-01T09:30", want: time.Date(2024, 1, 1, 9, 30, 0, 0, time.Local)},
		{in: "2024-01-01T09:30:15", want: time.Date(2024, 1, 1, 9, 30, 15, 0, time.Local)},
		{in: "2024-01-01T09:30:00Z", want: time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseBookingDate(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	_, err := parseBookingDate("01/01/2024")
	assert.ErrorIs(t, err, errInvalidBookingDate)
}

func TestCreateBookingRequest_Validate(t *testing.T) {
	req := CreateBookingRequest{
		UserID:      1,
		TempleID:    1,
		BookingDate: "2024-01-01",
		Participants: []BookingParticipantFields{
			{Name: "Asha", Age: 31, Gender: "F", Category: "adult"},
		},
	}
	require.NoError(t, req.Validate())

	params := req.ToParams()
	require.Len(t, params.Participants, 1)
	assert.Equal(t, "adult", params.Participants[0].Category)
	assert.Equal(t, 2024, params.BookingDate.Year())

	req.Participants[0].Gender = ""
	assert.Error(t, req.Validate())

	req.Participants = nil
	req.BookingDate = ""
	assert.Error(t, req.Validate())
}

func TestKioskBookingRequest_Validate(t *testing.T) {
	req := KioskBookingRequest{TempleID: 1, MobileNumber: "9123456780", NumberOfParticipants: 2}
	require.NoError(t, req.Validate())
	assert.True(t, req.ToParams().BookingDate.IsZero())

	req.NumberOfParticipants = 101
	assert.Error(t, req.Validate())

	req.NumberOfParticipants = 0
	assert.Error(t, req.Validate())
}

func TestCreateSlotRequest_Validate(t *testing.T) {
	req := CreateSlotRequest{TempleID: 1, Date: "2024-13-01"}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestUpdateProfileRequest_Validate(t *testing.T) {
	str := func(s string) *string { return &s }

	req := UpdateProfileRequest{}
	require.NoError(t, req.Validate())

	req = UpdateProfileRequest{City: str("Dwarka"), Email: str("asha@dharma.in"), Password: str("newpass42")}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Dwarka", *req.ToDomain().City)

	tests := map[string]UpdateProfileRequest{
		"empty email":    {Email: str("")},
		"bad email":      {Email: str("asha")},
		"short phone":    {MobileNumber: str("98765")},
		"empty name":     {FirstName: str("")},
		"photo not url":  {ProfilePhoto: str("://bad")},
		"weak password":  {Password: str("abcdefgh")},
		"empty password": {Password: str("")},
	}
	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, req.Validate())
		})
	}
}

func TestParkingRequests(t *testing.T) {
	zone := CreateParkingZoneRequest{TempleID: 1, TotalSlots: 10}
	require.NoError(t, zone.Validate())
	assert.True(t, zone.ToDomain().Status)

	inactive := false
	zone.Status = &inactive
	assert.False(t, zone.ToDomain().Status)

	zone.FreeSlots = -1
	assert.Error(t, zone.Validate())

	assert.Error(t, (&CreateParkingZoneRequest{TotalSlots: 10}).Validate())

	negative := -3
	assert.Error(t, (&UpdateParkingZoneRequest{CCTVCount: &negative}).Validate())
	require.NoError(t, (&UpdateParkingZoneRequest{}).Validate())

	available := true
	slot := CreateParkingSlotRequest{ParkingID: 1, SlotAvailability: &available, SlotCapacity: 2}
	require.NoError(t, slot.Validate())
	assert.True(t, slot.ToDomain().Available)
	assert.True(t, slot.ToDomain().Status)

	slot.SlotAvailability = nil
	assert.Error(t, slot.Validate(), "slotAvailability is required")

	slot = CreateParkingSlotRequest{ParkingID: 1, SlotAvailability: &available}
	assert.Error(t, slot.Validate(), "slotCapacity is required")

	zero := 0
	assert.Error(t, (&UpdateParkingSlotRequest{SlotCapacity: &zero}).Validate())
	require.NoError(t, (&UpdateParkingSlotRequest{SlotAvailability: &available}).Validate())
}

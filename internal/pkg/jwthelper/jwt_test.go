package jwthelper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var key = []byte("test-signing-key")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(key, 42, RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(key, token)
	require.NoError(t, err)

	id, err := claims.ID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestParseToken_Rejects(t *testing.T) {
	expired, err := GenerateToken(key, 1, RoleUser, -time.Minute)
	require.NoError(t, err)

	valid, err := GenerateToken(key, 1, RoleUser, time.Hour)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1"}).SignedString(key)
	require.NoError(t, err)

	otherAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(key)
	require.NoError(t, err)

	tests := []struct {
		name  string
		key   []byte
		token string
	}{
		{name: "expired", key: key, token: expired},
		{name: "wrong key", key: []byte("other"), token: valid},
		{name: "missing exp", key: key, token: noExpiry},
		{name: "unexpected algorithm", key: key, token: otherAlg},
		{name: "garbage", key: key, token: "not-a-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.key, tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

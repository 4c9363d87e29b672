package models_test

import (
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/patievi/models"
)

func TestNewSessionTokenFormat(t *testing.T) {
	s, err := models.NewSession(1, time.Hour)
	require.NoError(t, err)

	token := s.TokenString()
	assert.Len(t, token, 128)
	assert.Equal(t, strings.ToLower(token), token)

	// Hex decode, orijinal byte'ları geri vermeli.
	raw, err := hex.DecodeString(token)
	require.NoError(t, err)
	assert.Equal(t, s.Token[:], raw)
}

func TestNewSessionTokensAreUnique(t *testing.T) {
	a, err := models.NewSession(1, time.Hour)
	require.NoError(t, err)
	b, err := models.NewSession(1, time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, a.TokenString(), b.TokenString())
}

func TestSessionExpiredAt(t *testing.T) {
	s, err := models.NewSession(1, time.Hour)
	require.NoError(t, err)

	assert.False(t, s.ExpiredAt(time.Now()))
	assert.True(t, s.ExpiredAt(s.ExpiresAt))
	assert.True(t, s.ExpiredAt(s.ExpiresAt.Add(time.Minute)))
}

func TestSessionRefreshedKeepsIdentity(t *testing.T) {
	s, err := models.NewSession(7, time.Minute)
	require.NoError(t, err)

	refreshed := s.Refreshed(time.Hour)

	assert.Equal(t, s.Token, refreshed.Token)
	assert.Equal(t, s.UserID, refreshed.UserID)
	assert.True(t, refreshed.ExpiresAt.After(s.ExpiresAt))
}

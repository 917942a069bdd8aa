package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital-physician-backend/database"
	"digital-physician-backend/logger"
)

const testKey = "sk-test-1234567890abcdef"

type brokenSettingsStore struct{}

func (brokenSettingsStore) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("connection refused")
}

func (brokenSettingsStore) Set(ctx context.Context, key, value string) error {
	return errors.New("connection refused")
}

func TestOracleCredentialSeed(t *testing.T) {
	ctx := context.Background()

	s := NewSettingsService(database.NewMemorySettingsStore(), " "+testKey+" ", logger.NewNop())
	assert.Equal(t, testKey, s.OracleCredential(ctx))

	s = NewSettingsService(database.NewMemorySettingsStore(), PlaceholderCredential, logger.NewNop())
	assert.Empty(t, s.OracleCredential(ctx))

	s = NewSettingsService(brokenSettingsStore{}, testKey, logger.NewNop())
	assert.Equal(t, testKey, s.OracleCredential(ctx))
}

func TestUpdateOracleCredential(t *testing.T) {
	ctx := context.Background()
	s := NewSettingsService(database.NewMemorySettingsStore(), "", logger.NewNop())

	assert.ErrorIs(t, s.UpdateOracleCredential(ctx, "short"), ErrInvalidCredential)
	assert.ErrorIs(t, s.UpdateOracleCredential(ctx, PlaceholderCredential), ErrInvalidCredential)
	assert.ErrorIs(t, s.UpdateOracleCredential(ctx, "sk-has a space-123"), ErrInvalidCredential)

	require.NoError(t, s.UpdateOracleCredential(ctx, testKey))
	assert.Equal(t, testKey, s.OracleCredential(ctx))
	assert.Equal(t, "sk-test...cdef", s.MaskedCredential(ctx))

	// clearing does not bring the seed back
	require.NoError(t, s.UpdateOracleCredential(ctx, ""))
	assert.Empty(t, s.OracleCredential(ctx))
}

func TestUpdateOracleCredentialStoreError(t *testing.T) {
	s := NewSettingsService(brokenSettingsStore{}, "", logger.NewNop())
	assert.Error(t, s.UpdateOracleCredential(context.Background(), testKey))
}

func TestMaskCredential(t *testing.T) {
	assert.Equal(t, "[HIDDEN]", MaskCredential(""))
	assert.Equal(t, "[HIDDEN]", MaskCredential("sk-abc"))
	assert.Equal(t, "sk-test...cdef", MaskCredential(testKey))
}

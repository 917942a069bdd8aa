package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"digital-physician-backend/database"
	"digital-physician-backend/logger"
)

// PlaceholderCredential is the value shipped in sample configuration
const PlaceholderCredential = "YOUR_OPENAI_API_KEY_HERE"

const minCredentialLength = 10

var ErrInvalidCredential = errors.New("invalid oracle credential")

// SettingsService manages the persisted oracle credential
type SettingsService struct {
	store database.SettingsStore
	seed  string
	log   logger.Logger
}

// NewSettingsService uses seed (usually from the environment) until a
// credential has been stored
func NewSettingsService(store database.SettingsStore, seed string, log logger.Logger) *SettingsService {
	return &SettingsService{store: store, seed: strings.TrimSpace(seed), log: log}
}

// OracleCredential returns the usable credential, or "" when none is set or
// the stored value is malformed
func (s *SettingsService) OracleCredential(ctx context.Context) string {
	key, err := s.store.Get(ctx, database.SettingOracleAPIKey)
	switch {
	case errors.Is(err, database.ErrSettingNotFound):
		key = s.seed
	case err != nil:
		s.log.Warn("settings", "Failed to read oracle credential, using seed", map[string]interface{}{
			"error": err.Error(),
		})
		key = s.seed
	}

	if !validCredential(key) {
		return ""
	}
	return key
}

// UpdateOracleCredential stores a new credential. An empty value clears it.
func (s *SettingsService) UpdateOracleCredential(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key != "" && !validCredential(key) {
		return ErrInvalidCredential
	}
	if err := s.store.Set(ctx, database.SettingOracleAPIKey, key); err != nil {
		return fmt.Errorf("failed to update oracle credential: %w", err)
	}
	s.log.Info("settings", "Oracle credential updated", map[string]interface{}{
		"key": MaskCredential(key),
	})
	return nil
}

// MaskedCredential returns the current credential safe for display
func (s *SettingsService) MaskedCredential(ctx context.Context) string {
	return MaskCredential(s.OracleCredential(ctx))
}

// MaskCredential keeps the first seven and last four characters
func MaskCredential(key string) string {
	if len(key) < minCredentialLength {
		return "[HIDDEN]"
	}
	return key[:7] + "..." + key[len(key)-4:]
}

func validCredential(key string) bool {
	if key == "" || key == PlaceholderCredential || len(key) < minCredentialLength {
		return false
	}
	return strings.IndexFunc(key, unicode.IsSpace) < 0
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUsesDefaults(t *testing.T) {
	t.Setenv("DB_TYPE", "memory")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, 15*time.Second, c.AI.Timeout)
	assert.Equal(t, 20*time.Second, c.AI.ImageTimeout)
	assert.Equal(t, 0.5, c.Matching.DiagnoseThreshold)
	assert.Equal(t, 0.6, c.Matching.ClarifyBelow)
	assert.Equal(t, 3, c.Matching.ClarifyMaxSymptoms)
	assert.Same(t, c, Get())
}

func TestLoadReadsOverrides(t *testing.T) {
	t.Setenv("DB_TYPE", "memory")
	t.Setenv("CLARIFY_BELOW", "0.7")
	t.Setenv("AI_TIMEOUT", "2s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.7, c.Matching.ClarifyBelow)
	assert.Equal(t, 2*time.Second, c.AI.Timeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.AllowedOrigins)
}

func TestLoadRejectsInvalidThresholds(t *testing.T) {
	t.Setenv("DB_TYPE", "memory")
	t.Setenv("DIAGNOSE_THRESHOLD", "0.8")
	t.Setenv("CLARIFY_BELOW", "0.6")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "threshold above one", mutate: func(c *Config) { c.Matching.DiagnoseThreshold = 1.5 }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.AI.Timeout = 0 }, wantErr: true},
		{name: "unknown database", mutate: func(c *Config) { c.Database.Type = "postgresql" }, wantErr: true},
		{name: "bad base url", mutate: func(c *Config) { c.AI.BaseURL = "not a url" }, wantErr: true},
		{name: "pool inverted", mutate: func(c *Config) {
			c.Database.MinConnections = 20
			c.Database.MaxConnections = 10
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBuildDatabaseURI(t *testing.T) {
	c := Default()
	c.Database.Host = "db"
	c.Database.Port = "27017"
	assert.Equal(t, "mongodb://db:27017/digital_physician", c.BuildDatabaseURI())

	c.Database.Username = "u"
	c.Database.Password = "p"
	assert.Equal(t, "mongodb://u:p@db:27017/digital_physician", c.BuildDatabaseURI())

	c.Database.URI = "mongodb://elsewhere"
	assert.Equal(t, "mongodb://elsewhere", c.BuildDatabaseURI())
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		envName    string
		apiURL     string
		wantName   string
		wantProd   bool
		wantAPIURL string
	}{
		{"empty name falls back to development", "", "", "Development", false, defaultAPIURL},
		{"unknown name falls back to development", "qa", "", "Development", false, defaultAPIURL},
		{"production", "production", "", "Production", true, defaultAPIURL},
		{"staging", "staging", "", "Staging", false, defaultAPIURL},
		{"case and whitespace tolerated", "  Production ", "", "Production", true, defaultAPIURL},
		{"override replaces url", "production", "http://localhost:3001/api", "Production", true, "http://localhost:3001/api"},
		{"override applies to fallback too", "nope", "http://localhost:3001/api", "Development", false, "http://localhost:3001/api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := Resolve(tt.envName, tt.apiURL)
			assert.Equal(t, tt.wantName, env.Name)
			assert.Equal(t, tt.wantProd, env.IsProduction)
			assert.Equal(t, tt.wantAPIURL, env.APIURL)
		})
	}
}

func TestFeatureFlags(t *testing.T) {
	dev := Resolve("development", "")
	assert.True(t, dev.Features.RealTimeUpdates)
	assert.False(t, dev.Features.EmailNotifications)
	assert.False(t, dev.Features.Analytics)

	prod := Resolve("production", "")
	assert.True(t, prod.Features.RealTimeUpdates)
	assert.True(t, prod.Features.EmailNotifications)
	assert.True(t, prod.Features.Analytics)

	staging := Resolve("staging", "")
	assert.True(t, staging.Features.RealTimeUpdates)
	assert.True(t, staging.Features.EmailNotifications)
	assert.False(t, staging.Features.Analytics)
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("FERMENTO_ENV", "")
	t.Setenv("FERMENTO_API_URL", "")
	t.Setenv("STATUS_POLL_SECONDS", "")
	t.Setenv("COOKIE_HASH_KEY", "")

	cfg, err := FromEnv()
	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "Development", cfg.Env.Name)
	assert.Equal(t, int64(30), int64(cfg.StatusPollInterval.Seconds()))
}

func TestFromEnvInvalidPoll(t *testing.T) {
	t.Setenv("STATUS_POLL_SECONDS", "0")
	_, err := FromEnv()
	assert.Error(t, err)
}

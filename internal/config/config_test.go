// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Smart Cart Backend", cfg.App.Name)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 0.98, cfg.Detection.ConfidenceThreshold)
	assert.Equal(t, 3*time.Second, cfg.Detection.DebounceWindow)
	assert.Equal(t, []string{"background", "nothing"}, cfg.Detection.ExcludedLabels)
	assert.Equal(t, 0.7, cfg.Payment.SuccessProbability)
	assert.Equal(t, 300*time.Second, cfg.Payment.QRExpiry)
	assert.Equal(t, 5*time.Second, cfg.Payment.QRPollInterval)
	assert.Equal(t, "store@okaxis", cfg.Store.ReceiverUPIID)
	assert.Equal(t, "INR", cfg.Store.Currency)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DETECTION_CONFIDENCE_THRESHOLD", "0.9")
	t.Setenv("DETECTION_EXCLUDED_LABELS", "background,nothing,fanta")
	t.Setenv("PAYMENT_QR_EXPIRY", "2m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.9, cfg.Detection.ConfidenceThreshold)
	assert.Equal(t, []string{"background", "nothing", "fanta"}, cfg.Detection.ExcludedLabels)
	assert.Equal(t, 2*time.Minute, cfg.Payment.QRExpiry)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "short jwt secret",
			mutate: func(c *Config) { c.JWT.Secret = "short" },
		},
		{
			name:   "missing redis host",
			mutate: func(c *Config) { c.Redis.Host = "" },
		},
		{
			name:   "threshold of one",
			mutate: func(c *Config) { c.Detection.ConfidenceThreshold = 1 },
		},
		{
			name:   "negative success probability",
			mutate: func(c *Config) { c.Payment.SuccessProbability = -0.1 },
		},
		{
			name:   "poll slower than expiry",
			mutate: func(c *Config) { c.Payment.QRPollInterval = c.Payment.QRExpiry },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)

			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestGetRedisAddr(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
}

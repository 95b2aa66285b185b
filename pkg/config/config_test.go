package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.SimulationTickInterval)
	assert.Equal(t, 2*time.Second, cfg.PushInterval)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "mock", cfg.PushSource)
	assert.Equal(t, "demo-match-1", cfg.PushMatchID)
	assert.Equal(t, "match_updates", cfg.PushChannel)
	assert.True(t, cfg.PushEnabled)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CorsOrigins)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("SIMULATION_TICK_INTERVAL", "250ms")
	t.Setenv("SIMULATION_SEED", "42")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("CORS_ORIGINS", "https://cricket.example")
	t.Setenv("PUSH_ENABLED", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 250*time.Millisecond, cfg.SimulationTickInterval)
	assert.Equal(t, int64(42), cfg.SimulationSeed)
	assert.InDelta(t, 2.5, cfg.RateLimitRPS, 1e-9)
	assert.Equal(t, []string{"https://cricket.example"}, cfg.CorsOrigins)
	assert.False(t, cfg.PushEnabled)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown push source", map[string]string{"PUSH_SOURCE": "kafka"}},
		{"redis source without redis", map[string]string{"PUSH_SOURCE": "redis"}},
		{"sub-second push interval", map[string]string{"PUSH_INTERVAL": "500ms"}},
		{"negative burst", map[string]string{"RATE_LIMIT_BURST": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

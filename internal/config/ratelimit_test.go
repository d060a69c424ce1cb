package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadRateLimitConfigDefaults(t *testing.T) {
	cfg := LoadRateLimitConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 60, cfg.Capacity)
	assert.Equal(t, 1, cfg.RefillTokens)
	assert.Equal(t, time.Second, cfg.RefillInterval)
	assert.Equal(t, "ip_route", cfg.KeyStrategy)
}

func TestLoadRateLimitConfigClampsTTL(t *testing.T) {
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "5m")
	t.Setenv("RATE_LIMIT_TTL", "1m")

	cfg := LoadRateLimitConfig()
	// TTL must cover at least five refill intervals or active buckets
	// would expire mid-use.
	assert.Equal(t, 25*time.Minute, cfg.TTL)
}

func TestLoadRateLimitConfigBurstOverride(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "10")
	cfg := LoadRateLimitConfig()
	assert.Equal(t, 10, cfg.Capacity)
}

func TestEnvBoolParsing(t *testing.T) {
	t.Setenv("X_BOOL", "off")
	assert.False(t, envBool("X_BOOL", true))
	t.Setenv("X_BOOL", "yes")
	assert.True(t, envBool("X_BOOL", false))
	t.Setenv("X_BOOL", "banana")
	assert.True(t, envBool("X_BOOL", true))
}

func TestCacheConfigDefaultTTLStaysShort(t *testing.T) {
	cfg := LoadCacheConfig()
	// Booking writes do not invalidate cached availability, so the TTL
	// is the upper bound on how long a taken slot can still show free.
	assert.Equal(t, 15*time.Second, cfg.TTL)
}

func TestCacheConfigMethods(t *testing.T) {
	t.Setenv("CACHE_METHODS", "get, head")
	cfg := LoadCacheConfig()
	assert.True(t, cfg.Methods["GET"])
	assert.True(t, cfg.Methods["HEAD"])
	assert.False(t, cfg.Methods["POST"])
}

package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-climate-intel/internal/config"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/models"
)

func newTestCache(t *testing.T, ttl time.Duration) (ClimateCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisClimateCache(client, ttl, logger.Nop()), mr
}

func TestClimateKey(t *testing.T) {
	day := time.Date(2026, 3, 14, 23, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))

	key := climateKey(models.Coordinate{Lat: 13.08271234, Lon: 80.27071234}, day)
	assert.Equal(t, "climate:13.0827:80.2707:2026-03-14", key)

	// the same instant in another zone maps to the same UTC day
	assert.Equal(t, key, climateKey(models.Coordinate{Lat: 13.08271234, Lon: 80.27071234}, day.UTC()))
}

func TestRedisClimateCache_RoundTrip(t *testing.T) {
	cache, mr := newTestCache(t, time.Hour)
	ctx := context.Background()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	loc := models.Coordinate{Lat: 13.0827, Lon: 80.2707}

	_, ok, err := cache.Get(ctx, loc, day)
	require.NoError(t, err)
	assert.False(t, ok)

	data := models.ClimateData{
		Location:       loc,
		Current:        models.WeatherSample{Temperature: 31.2, Humidity: 70},
		RiskAssessment: models.RiskAssessment{OverallRisk: 42.1, Assumptions: []string{"a"}},
		GeneratedAt:    day,
	}
	require.NoError(t, cache.Set(ctx, data, day))

	got, ok, err := cache.Get(ctx, loc, day)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, data.Current.Temperature, got.Current.Temperature)
	assert.Equal(t, data.RiskAssessment.OverallRisk, got.RiskAssessment.OverallRisk)

	mr.FastForward(2 * time.Hour)
	_, ok, err = cache.Get(ctx, loc, day)
	require.NoError(t, err)
	assert.False(t, ok, "entry should expire after the TTL")
}

func TestRedisClimateCache_CorruptEntryIsMiss(t *testing.T) {
	cache, mr := newTestCache(t, time.Hour)
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	loc := models.Coordinate{Lat: 1, Lon: 2}

	require.NoError(t, mr.Set(climateKey(loc, day), "{not json"))

	_, ok, err := cache.Get(context.Background(), loc, day)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisClimateCache_Unavailable(t *testing.T) {
	cache, mr := newTestCache(t, time.Hour)
	mr.Close()

	_, _, err := cache.Get(context.Background(), models.Coordinate{}, time.Now())
	assert.ErrorIs(t, err, ErrCacheUnavailable)

	err = cache.Set(context.Background(), models.ClimateData{}, time.Now())
	assert.ErrorIs(t, err, ErrCacheUnavailable)
}

func TestNewClimateCache(t *testing.T) {
	t.Run("disabled without URL", func(t *testing.T) {
		cache, closeFn, err := newClimateCache(context.Background(), config.Cache{}, logger.Nop())
		require.NoError(t, err)
		assert.IsType(t, nopClimateCache{}, cache)
		assert.NoError(t, closeFn())

		_, ok, err := cache.Get(context.Background(), models.Coordinate{}, time.Now())
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("redis from URL", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cache, closeFn, err := newClimateCache(context.Background(), config.Cache{RedisURL: "redis://" + mr.Addr(), TTL: time.Minute}, logger.Nop())
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &redisClimateCache{}, cache)
	})

	t.Run("bad URL", func(t *testing.T) {
		_, _, err := newClimateCache(context.Background(), config.Cache{RedisURL: "://nope"}, logger.Nop())
		assert.Error(t, err)
	})
}

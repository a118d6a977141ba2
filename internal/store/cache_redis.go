package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-climate-intel/internal/config"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/models"
)

const climateKeyPrefix = "climate:"

// NewRedis parses the URL, connects and pings before returning.
func NewRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err = client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return client, nil
}

type redisClimateCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisClimateCache stores climate data as JSON with the given TTL.
func NewRedisClimateCache(client *redis.Client, ttl time.Duration, logger *logger.Logger) ClimateCache {
	logger.Debug().Dur("ttl", ttl).Msg("creating redis climate cache")
	return &redisClimateCache{client: client, ttl: ttl, logger: logger}
}

// climateKey identifies a coordinate rounded to four decimals on a UTC day.
func climateKey(location models.Coordinate, day time.Time) string {
	return fmt.Sprintf("%s%.4f:%.4f:%s", climateKeyPrefix, location.Lat, location.Lon, day.UTC().Format(time.DateOnly))
}

func (c *redisClimateCache) Get(ctx context.Context, location models.Coordinate, day time.Time) (models.ClimateData, bool, error) {
	log := logger.FromContext(ctx)

	raw, err := c.client.Get(ctx, climateKey(location, day)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.ClimateData{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*redisClimateCache.Get").Msg("error reading climate cache")
		return models.ClimateData{}, false, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	var data models.ClimateData
	if err = json.Unmarshal(raw, &data); err != nil {
		// a corrupt entry is treated as a miss and overwritten by the next Set
		log.Warn().Err(err).Str("func", "*redisClimateCache.Get").Msg("dropping undecodable cache entry")
		return models.ClimateData{}, false, nil
	}

	return data, true, nil
}

func (c *redisClimateCache) Set(ctx context.Context, data models.ClimateData, day time.Time) error {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding climate data: %w", err)
	}

	if err = c.client.Set(ctx, climateKey(data.Location, day), raw, c.ttl).Err(); err != nil {
		log.Err(err).Str("func", "*redisClimateCache.Set").Msg("error writing climate cache")
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	return nil
}

// nopClimateCache always misses.
type nopClimateCache struct{}

// NewNopClimateCache returns a cache that stores nothing.
func NewNopClimateCache() ClimateCache {
	return nopClimateCache{}
}

func (nopClimateCache) Get(context.Context, models.Coordinate, time.Time) (models.ClimateData, bool, error) {
	return models.ClimateData{}, false, nil
}

func (nopClimateCache) Set(context.Context, models.ClimateData, time.Time) error {
	return nil
}

// newClimateCache picks the Redis cache when a URL is configured.
func newClimateCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (ClimateCache, func() error, error) {
	if cfg.RedisURL == "" {
		log.Info().Str("func", "newClimateCache").Msg("no redis URL configured, climate cache disabled")
		return NewNopClimateCache(), func() error { return nil }, nil
	}

	client, err := NewRedis(ctx, cfg.RedisURL)
	if err != nil {
		log.Err(err).Str("func", "newClimateCache").Msg("error connecting to redis")
		return nil, nil, err
	}

	return NewRedisClimateCache(client, cfg.TTL, log), client.Close, nil
}

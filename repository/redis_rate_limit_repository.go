package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SadatRiyad/BB-Vote-Server/config"
	"github.com/SadatRiyad/BB-Vote-Server/entity"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimitRepository implements OTP send rate limiting using Redis.
// Records expire with the rate limit window, so no cleanup job is needed.
type RedisRateLimitRepository struct {
	client *redis.Client
	ctx    context.Context
	config *config.Config
	logger *logger.Logger
}

// NewRedisRateLimitRepository creates a new Redis rate limit repository
func NewRedisRateLimitRepository(client *redis.Client, cfg *config.Config, logger *logger.Logger) RateLimitRepository {
	return &RedisRateLimitRepository{
		client: client,
		ctx:    context.Background(),
		config: cfg,
		logger: logger,
	}
}

// GetRateLimit retrieves rate limit information for an email
func (r *RedisRateLimitRepository) GetRateLimit(email string) (*entity.RateLimitInfo, error) {
	key := fmt.Sprintf("rate_limit:%s", email)

	data, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		r.logger.Debugw("No rate limit record found", "email", email)
		return &entity.RateLimitInfo{
			Email:        email,
			RequestCount: 0,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rate limit info: %w", err)
	}

	var rateLimitInfo entity.RateLimitInfo
	if err := json.Unmarshal([]byte(data), &rateLimitInfo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rate limit info: %w", err)
	}

	r.logger.Debugw("Rate limit retrieved",
		"email", email,
		"request_count", rateLimitInfo.RequestCount)

	return &rateLimitInfo, nil
}

// UpdateRateLimit updates rate limit information for an email
func (r *RedisRateLimitRepository) UpdateRateLimit(rateLimitInfo *entity.RateLimitInfo) error {
	key := fmt.Sprintf("rate_limit:%s", rateLimitInfo.Email)

	now := time.Now()
	windowDuration := r.config.RateLimit.WindowDuration

	if rateLimitInfo.WindowStartAt.IsZero() {
		rateLimitInfo.WindowStartAt = now
	}

	// Key TTL tracks the remaining window so Redis drops it on its own
	windowEnd := rateLimitInfo.WindowStartAt.Add(windowDuration)
	ttl := windowEnd.Sub(now)

	if ttl <= 0 {
		rateLimitInfo.WindowStartAt = now
		rateLimitInfo.RequestCount = 1
		ttl = windowDuration
		r.logger.Debugw("Starting new rate limit window",
			"email", rateLimitInfo.Email,
			"window_start", rateLimitInfo.WindowStartAt)
	} else if ttl < time.Minute {
		ttl = time.Minute
	}

	data, err := json.Marshal(rateLimitInfo)
	if err != nil {
		return fmt.Errorf("failed to marshal rate limit info: %w", err)
	}

	err = r.client.Set(r.ctx, key, data, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to update rate limit info: %w", err)
	}

	r.logger.Debugw("Rate limit updated",
		"email", rateLimitInfo.Email,
		"request_count", rateLimitInfo.RequestCount,
		"ttl_seconds", int(ttl.Seconds()))

	return nil
}

package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sumitdkd/me-api-playground/internal/domain/profile"
	"github.com/sumitdkd/me-api-playground/pkg/logger"
)

// ProfileCacheKey is where the cached profile snapshot lives in Redis. The
// worker deletes it to force a refresh.
const ProfileCacheKey = "meapi:profile:snapshot"

// cachedProfileRepo is a read-through cache in front of another repository.
// Cache failures degrade to the inner store; they never fail a request.
type cachedProfileRepo struct {
	inner  profile.Repository
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedProfileRepo(inner profile.Repository, rdb *redis.Client, ttl time.Duration, log logger.Logger) profile.Repository {
	return &cachedProfileRepo{inner: inner, rdb: rdb, ttl: ttl, logger: log}
}

func (r *cachedProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	raw, err := r.rdb.Get(ctx, ProfileCacheKey).Bytes()
	if err == nil {
		p := &profile.Profile{}
		if jsonErr := json.Unmarshal(raw, p); jsonErr == nil {
			return p, nil
		}
		r.logger.Warn("Dropping unreadable profile cache entry")
		r.rdb.Del(ctx, ProfileCacheKey)
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("Profile cache read failed", zap.Error(err))
	}

	p, err := r.inner.Get(ctx)
	if err != nil || p == nil {
		return p, err
	}

	if data, jsonErr := json.Marshal(p); jsonErr == nil {
		if setErr := r.rdb.Set(ctx, ProfileCacheKey, data, r.ttl).Err(); setErr != nil {
			r.logger.Warn("Profile cache write failed", zap.Error(setErr))
		}
	}
	return p, nil
}

func (r *cachedProfileRepo) Insert(ctx context.Context, p *profile.Profile) error {
	if err := r.inner.Insert(ctx, p); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedProfileRepo) Replace(ctx context.Context, p *profile.Profile) error {
	if err := r.inner.Replace(ctx, p); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedProfileRepo) invalidate(ctx context.Context) {
	if err := r.rdb.Del(ctx, ProfileCacheKey).Err(); err != nil {
		r.logger.Warn("Profile cache invalidation failed", zap.Error(err))
	}
}

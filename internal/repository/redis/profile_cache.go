package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("profile cache miss")

const (
	profileKeyPrefix = "auth:profile:"
	profileTTL       = 30 * time.Minute
)

// CachedProfile is the token-resolved identity served to user.getOne.
type CachedProfile struct {
	ID       uint64    `json:"id"`
	Name     *string   `json:"name"`
	Code     string    `json:"code"`
	CreateTS time.Time `json:"create_ts"`
}

// ProfileCache fronts token lookups. A nil cache is valid and always misses;
// correctness never depends on it.
type ProfileCache struct {
	client *redis.Client
}

func NewProfileCache(client *redis.Client) *ProfileCache {
	return &ProfileCache{client: client}
}

func (c *ProfileCache) Get(ctx context.Context, token string) (*CachedProfile, error) {
	if c == nil || c.client == nil {
		return nil, ErrCacheMiss
	}
	raw, err := c.client.Get(ctx, profileKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	var profile CachedProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, ErrCacheMiss
	}
	return &profile, nil
}

func (c *ProfileCache) Set(ctx context.Context, token string, profile *CachedProfile) error {
	if c == nil || c.client == nil {
		return nil
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, profileKeyPrefix+token, raw, profileTTL).Err()
}

func (c *ProfileCache) Delete(ctx context.Context, token string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, profileKeyPrefix+token).Err()
}

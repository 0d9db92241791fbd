package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stpnv0/HostelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	keyPrefix      = "hostelbooker:lock:roomtype:"
	pollInterval   = 50 * time.Millisecond
	releaseTimeout = 2 * time.Second
)

// releaseScript deletes the key only while it still holds our token, so an
// expired lock taken over by another holder is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a lease-based lock shared by every instance using the same Redis.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
	logger logger.Logger
}

func NewRedis(client *redis.Client, ttl, wait time.Duration, log logger.Logger) *Redis {
	return &Redis{
		client: client,
		ttl:    ttl,
		wait:   wait,
		logger: log,
	}
}

func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	token := uuid.New().String()
	redisKey := keyPrefix + key

	ctx, cancel := context.WithTimeout(ctx, r.wait)
	defer cancel()

	for {
		ok, err := r.client.SetNX(ctx, redisKey, token, r.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: lock %s: %w", domain.ErrConcurrentModification, key, ctx.Err())
			}
			return nil, fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if ok {
			return func() { r.release(redisKey, token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: lock %s: %w", domain.ErrConcurrentModification, key, ctx.Err())
		case <-time.After(pollInterval):
		}
	}
}

func (r *Redis) release(redisKey, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	err := releaseScript.Run(ctx, r.client, []string{redisKey}, token).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		r.logger.Error("failed to release room type lock",
			logger.String("key", redisKey),
			logger.String("error", err.Error()),
		)
	}
}

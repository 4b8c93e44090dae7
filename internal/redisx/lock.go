package redisx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

// unlockScript deletes the key only if it still holds our token.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

const (
	minRetry = 5 * time.Millisecond
	maxRetry = 100 * time.Millisecond
)

// Locker is a per-space lock shared by every instance pointing at the same
// Redis. The TTL bounds how long a crashed holder blocks the space.
type Locker struct {
	rdb    redis.UniversalClient
	ttl    time.Duration
	wait   time.Duration
	logger logger.Logger
}

func NewLocker(rdb redis.UniversalClient, ttl, wait time.Duration, log logger.Logger) *Locker {
	return &Locker{rdb: rdb, ttl: ttl, wait: wait, logger: log}
}

func (l *Locker) Acquire(ctx context.Context, spaceID string) (func(), error) {
	key := spaceLockKey(spaceID)
	token := uuid.NewString()
	deadline := time.Now().Add(l.wait)
	backoff := minRetry

	for {
		ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("redis lock %s: %w", key, err)
		}
		if ok {
			return l.releaser(key, token), nil
		}

		if time.Now().Add(backoff).After(deadline) {
			return nil, fmt.Errorf("%w: space %s", domain.ErrLockTimeout, spaceID)
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
		if backoff > maxRetry {
			backoff = maxRetry
		}
	}
}

func (l *Locker) releaser(key, token string) func() {
	return func() {
		// release must run even if the request context is already cancelled
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		err := unlockScript.Run(ctx, l.rdb, []string{key}, token).Err()
		if err != nil && !errors.Is(err, redis.Nil) {
			l.logger.Warn("failed to release space lock",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		}
	}
}

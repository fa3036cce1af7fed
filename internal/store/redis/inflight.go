package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/linkhub/internal/apperror"
)

// DefaultInFlightTTL bounds how long a lock survives a crashed holder.
const DefaultInFlightTTL = 2 * time.Minute

// releaseScript deletes the lock only if it still belongs to the caller.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// InFlightGuard shares in-flight locks across replicas.
type InFlightGuard struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewInFlightGuard creates a Redis-backed guard. ttl <= 0 uses DefaultInFlightTTL.
func NewInFlightGuard(client redis.UniversalClient, ttl time.Duration) *InFlightGuard {
	if ttl <= 0 {
		ttl = DefaultInFlightTTL
	}
	return &InFlightGuard{client: client, ttl: ttl}
}

// Acquire takes the lock for key with SET NX PX.
// It returns apperror.ErrInFlight when another holder owns it.
func (g *InFlightGuard) Acquire(ctx context.Context, key string) (func(), error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}

	ok, err := g.client.SetNX(ctx, InFlightKey(key), token, g.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire in-flight lock: %w", err)
	}
	if !ok {
		return nil, apperror.InFlight(key)
	}

	release := func() {
		// The request context may already be cancelled; release on a short detached one.
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		_ = releaseScript.Run(ctx, g.client, []string{InFlightKey(key)}, token).Err()
	}
	return release, nil
}

func newToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate lock token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

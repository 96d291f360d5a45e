// Package cache memoizes generated puzzles in Redis. Generation is a pure
// function of board and spec, so entries never invalidate; the TTL only
// bounds memory.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	dmn "github.com/aulamaze/aulamaze-api/domain"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisPuzzleCache stores JSON-encoded puzzles with a TTL and serializes
// computation per key with a distributed lock, so replicas racing on the
// same board and seed compute it once.
type RedisPuzzleCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
	logger *log.Logger
}

// NewRedisPuzzleCache initializes a RedisPuzzleCache with the provided Redis client and TTL.
func NewRedisPuzzleCache(client *redis.Client, ttlSeconds int, logger *log.Logger) (*RedisPuzzleCache, error) {
	cache := &RedisPuzzleCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
		logger: logger,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// GetOrCompute returns the cached puzzle for the key, computing and storing
// it on miss. Cache and lock failures degrade to plain computation: a
// deterministic engine makes recomputing always safe, so an unreachable
// Redis must not fail the request.
func (c *RedisPuzzleCache) GetOrCompute(ctx context.Context, key string, compute func() (*dmn.Puzzle, error)) (*dmn.Puzzle, error) {
	if puzzle, ok := c.get(ctx, key); ok {
		return puzzle, nil
	}

	mutex := c.locker.NewMutex(key + ":compute_lock")
	if err := mutex.LockContext(ctx); err != nil {
		c.logger.Printf("puzzle cache lock unavailable for %s: %v", key, err)
		return compute()
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	// Another replica may have stored the entry while we waited.
	if puzzle, ok := c.get(ctx, key); ok {
		return puzzle, nil
	}

	puzzle, err := compute()
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, puzzle)
	return puzzle, nil
}

func (c *RedisPuzzleCache) get(ctx context.Context, key string) (*dmn.Puzzle, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Printf("puzzle cache read failed for %s: %v", key, err)
		}
		return nil, false
	}

	var puzzle dmn.Puzzle
	if err := json.Unmarshal(raw, &puzzle); err != nil {
		c.logger.Printf("puzzle cache entry for %s is corrupt: %v", key, err)
		return nil, false
	}
	return &puzzle, true
}

func (c *RedisPuzzleCache) set(ctx context.Context, key string, puzzle *dmn.Puzzle) {
	raw, err := json.Marshal(puzzle)
	if err != nil {
		c.logger.Printf("encoding puzzle for %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Printf("puzzle cache write failed for %s: %v", key, err)
	}
}

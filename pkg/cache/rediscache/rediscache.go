// Package rediscache implements cache.SettlementCache on top of Redis.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"settleup/pkg/domain"
	"time"

	backend "github.com/redis/go-redis/v9"
)

const defaultPrefix = "settleup:settlement:"

// Options defines the configuration of the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	// TTL bounds how long a settlement is cached. Zero keeps it until deleted.
	TTL time.Duration
}

// Cache stores settlements as JSON under a per-session key.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration of cached settlements.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New connects to Redis and checks the connection with a PING.
func New(ctx context.Context, options Options) (*Cache, error) {
	client := backend.NewClient(&backend.Options{
		Addr:     options.Addr,
		Password: options.Password,
		DB:       options.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return NewFromClient(client, WithTTL(options.TTL)), nil
}

// NewFromClient wraps an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		prefix: defaultPrefix,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Cache) key(sessionID domain.SessionID) string {
	return c.prefix + sessionID.String()
}

func (c *Cache) Get(ctx context.Context, sessionID domain.SessionID) (*domain.Settlement, error) {
	data, err := c.client.Get(ctx, c.key(sessionID)).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not get settlement from redis: %w", err)
	}

	var s domain.Settlement
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("could not unmarshal cached settlement: %w", err)
	}

	return &s, nil
}

func (c *Cache) Set(ctx context.Context, s domain.Settlement) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("could not marshal settlement: %w", err)
	}

	if err := c.client.Set(ctx, c.key(s.SessionID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("could not set settlement in redis: %w", err)
	}

	return nil
}

func (c *Cache) Delete(ctx context.Context, sessionID domain.SessionID) error {
	if err := c.client.Del(ctx, c.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("could not delete settlement from redis: %w", err)
	}

	return nil
}

// Close closes the underlying client.
func (c *Cache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("could not close redis client: %w", err)
	}

	return nil
}

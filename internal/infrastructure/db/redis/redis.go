package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wanderlust/tourism-site/internal/pkg/config"
)

const pingTimeout = 3 * time.Second

// Client is the site's Redis connection. It hands out the session
// revocation list and the contact inbox that share it.
type Client struct {
	rdb *redis.Client
}

// Open dials the server named in cfg and fails unless it answers a ping.
func Open(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	c := &Client{rdb: redis.NewClient(&redis.Options{Addr: cfg.Addr, DB: cfg.DB})}
	if err := c.Ping(ctx); err != nil {
		_ = c.rdb.Close()
		return nil, fmt.Errorf("redis %s: %w", cfg.Addr, err)
	}
	return c, nil
}

// Ping backs the readiness endpoint.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Revocations() *RevocationList {
	return NewRevocationList(c.rdb)
}

func (c *Client) ContactInbox() *ContactInbox {
	return NewContactInbox(c.rdb)
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

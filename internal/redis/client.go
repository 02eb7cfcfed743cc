// Package redis wraps the go-redis client so repositories depend on a
// narrow, mockable interface.
package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options tunes the connection pool
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// NewClient creates a Redis client for a single instance at host:port.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	return redis.NewClient(apply(&redis.Options{Addr: endpoint}, opts)), nil
}

// NewClientFromURL creates a client from a redis:// or rediss:// URL.
// Pool options override whatever the URL sets.
func NewClientFromURL(url string, opts *Options) (Client, error) {
	if url == "" {
		return nil, errors.New("redis: url is required")
	}

	parsed, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	return redis.NewClient(apply(parsed, opts)), nil
}

// Ping checks connectivity within timeout.
func Ping(ctx context.Context, client Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return client.Ping(ctx).Err()
}

func apply(redisOpts *redis.Options, opts *Options) *redis.Options {
	if opts == nil {
		return redisOpts
	}

	if opts.PoolSize > 0 {
		redisOpts.PoolSize = opts.PoolSize
	}
	if opts.MinIdleConns > 0 {
		redisOpts.MinIdleConns = opts.MinIdleConns
	}
	if opts.ConnMaxIdleTime > 0 {
		redisOpts.ConnMaxIdleTime = opts.ConnMaxIdleTime
	}
	if opts.MaxRetries != 0 {
		redisOpts.MaxRetries = opts.MaxRetries
	}
	if opts.UseTLS && redisOpts.TLSConfig == nil {
		redisOpts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	return redisOpts
}

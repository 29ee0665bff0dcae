// Package redis provides a wrapper around the go-redis client library
// for improved testing and abstraction.
package redis

import (
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/tft-notebook/internal/errors"
)

// NewClientFromURL creates a Redis client from a redis:// or rediss:// URL.
// Redis connects lazily, so no network traffic happens here.
func NewClientFromURL(url string) (Client, error) {
	if url == "" {
		return nil, errors.InvalidArgument("redis url is required")
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid redis url %q", url)
	}

	return redis.NewClient(opts), nil
}

package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/tft-notebook/internal/errors"
	"github.com/KirkDiggler/tft-notebook/internal/redis"
)

func TestNewClientFromURL(t *testing.T) {
	_, err := redis.NewClientFromURL("")
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = redis.NewClientFromURL("http://not-redis")
	assert.True(t, errors.IsInvalidArgument(err))

	mr := miniredis.RunT(t)
	client, err := redis.NewClientFromURL("redis://" + mr.Addr() + "/0")
	require.NoError(t, err)
	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	mr.CheckGet(t, "k", "v")
}

package main

import (
	"context"
	"strings"
	"testing"

	"foodcart/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRedis(t *testing.T) {
	_, err := openRedis(context.Background(), config.RedisConfig{})
	assert.ErrorContains(t, err, "REDIS_HOST")

	mr := miniredis.RunT(t)
	host, port, _ := strings.Cut(mr.Addr(), ":")
	client, err := openRedis(context.Background(), config.RedisConfig{Host: host, Port: port})
	require.NoError(t, err)
	assert.NoError(t, client.Close())
}

package testutils

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// TestRedisAddrEnv points tests at an already running Redis instead of a container
const TestRedisAddrEnv = "PASSIVE_TEST_REDIS_ADDR"

// testRedisDB keeps tests away from data in a shared instance
const testRedisDB = 15

// CreateTestRedisClient returns a flushed Redis client for integration tests.
// It uses the instance at $PASSIVE_TEST_REDIS_ADDR when set and otherwise starts
// a container. Skipped in -short mode.
func CreateTestRedisClient(t *testing.T) redis.UniversalClient {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var client *redis.Client
	if addr := os.Getenv(TestRedisAddrEnv); addr != "" {
		client = redis.NewClient(&redis.Options{Addr: addr, DB: testRedisDB})
	} else {
		client = startRedisContainer(ctx, t)
	}

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for testing: %v", err)
	}
	require.NoError(t, client.FlushDB(ctx).Err(), "Failed to flush test Redis database")

	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})

	return client
}

func startRedisContainer(ctx context.Context, t *testing.T) *redis.Client {
	t.Helper()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	testcontainers.CleanupContainer(t, container)
	if err != nil {
		t.Skipf("cannot start redis container: %v", err)
	}

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)
	opts.DB = testRedisDB

	return redis.NewClient(opts)
}

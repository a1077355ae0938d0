//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestCache_RoundTrip(t *testing.T) {
	ctx := context.Background()

	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		redisC.Terminate(ctx)
	})

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb, err := Open(ctx, host+":"+port.Port(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })

	c := New(rdb, "stats:", time.Minute)

	type entry struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	var got entry
	found, err := c.GetJSON(ctx, "seoul", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.SetJSON(ctx, "seoul", entry{Name: "카페", Count: 3}))

	found, err = c.GetJSON(ctx, "seoul", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, entry{Name: "카페", Count: 3}, got)

	require.NoError(t, c.Invalidate(ctx))
	found, err = c.GetJSON(ctx, "seoul", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

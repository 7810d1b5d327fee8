package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestMemoryDenylist(t *testing.T) {
	ctx := context.Background()
	d := NewMemoryDenylist(10, time.Hour)

	revoked, err := d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, d.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

	revoked, err = d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = d.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemoryDenylist_Expires(t *testing.T) {
	ctx := context.Background()
	d := NewMemoryDenylist(10, 20*time.Millisecond)

	require.NoError(t, d.Revoke(ctx, "jti", time.Now().Add(time.Hour)))
	assert.Eventually(t, func() bool {
		revoked, _ := d.IsRevoked(ctx, "jti")
		return !revoked
	}, time.Second, 10*time.Millisecond)
}

func TestNewRedisDenylist_BadURL(t *testing.T) {
	_, err := NewRedisDenylist(context.Background(), "://nope")
	assert.Error(t, err)
}

func TestRedisDenylist_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var container testcontainers.Container
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic starting redis container: %v", r)
			}
		}()
		container, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{"6379/tcp"},
				WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
			},
			Started: true,
		})
	}()
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	defer func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}()

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	d, err := NewRedisDenylist(ctx, "redis://"+endpoint+"/0")
	require.NoError(t, err)
	defer d.Close()

	require.NoError(t, d.Ping(ctx))

	revoked, err := d.IsRevoked(ctx, "jti-live")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, d.Revoke(ctx, "jti-live", time.Now().Add(time.Minute)))
	revoked, err = d.IsRevoked(ctx, "jti-live")
	require.NoError(t, err)
	assert.True(t, revoked)

	// expiry in the past is a no-op
	require.NoError(t, d.Revoke(ctx, "jti-old", time.Now().Add(-time.Minute)))
	revoked, err = d.IsRevoked(ctx, "jti-old")
	require.NoError(t, err)
	assert.False(t, revoked)
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLCache_MemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTTLCache(newMemoryStore(100, time.Hour), time.Hour)

	_, found, err := c.Get(ctx, "odoo_session:alice")
	require.NoError(t, err)
	assert.False(t, found)

	payload := []byte(`{"access":"a","success":true}`)
	require.NoError(t, c.Set(ctx, "odoo_session:alice", payload))

	got, found, err := c.Get(ctx, "odoo_session:alice")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload, got)

	require.NoError(t, c.Delete(ctx, "odoo_session:alice"))
	_, found, err = c.Get(ctx, "odoo_session:alice")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTTLCache_EntryAbsentAfterTTLEvenIfStoreStillHoldsIt(t *testing.T) {
	ctx := context.Background()
	// The backing store would keep the entry for a day.
	c := newTTLCache(newMemoryStore(100, 24*time.Hour), time.Hour)

	now := time.Now()
	c.now = func() time.Time { return now }
	require.NoError(t, c.Set(ctx, "k", []byte("v")))

	c.now = func() time.Time { return now.Add(59 * time.Minute) }
	_, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)

	c.now = func() time.Time { return now.Add(time.Hour) }
	_, found, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTTLCache_ReturnedPayloadIsACopy(t *testing.T) {
	ctx := context.Background()
	c := newTTLCache(newMemoryStore(100, time.Hour), time.Hour)
	require.NoError(t, c.Set(ctx, "k", []byte("value")))

	got, _, err := c.Get(ctx, "k")
	require.NoError(t, err)
	got[0] = 'X'

	again, _, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), again)
}

func TestTTLCache_IgnoresTruncatedEntries(t *testing.T) {
	ctx := context.Background()
	s := newMemoryStore(100, time.Hour)
	require.NoError(t, s.set(ctx, "k", []byte{1, 2}, time.Hour))

	_, found, err := newTTLCache(s, time.Hour).Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c := NewRedisCache(client, "erpgate:", time.Hour)

	payload := []byte(`{"success":true}`)
	require.NoError(t, c.Set(ctx, "odoo_session:bob", payload))
	assert.True(t, mr.Exists("erpgate:odoo_session:bob"))
	assert.Equal(t, time.Hour, mr.TTL("erpgate:odoo_session:bob"))

	got, found, err := c.Get(ctx, "odoo_session:bob")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload, got)

	mr.FastForward(2 * time.Hour)
	_, found, err = c.Get(ctx, "odoo_session:bob")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	_, _, err := NewRedisCache(client, "", time.Hour).Get(context.Background(), "k")
	assert.Error(t, err)
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, m.Set(ctx, "k", payload{Name: "x", Count: 3}, time.Minute))

	var got payload
	found, err := m.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "x", Count: 3}, got)
}

func TestMemory_MissLeavesDestUntouched(t *testing.T) {
	m := NewMemory()

	got := "sentinel"
	found, err := m.Get(context.Background(), "absent", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "sentinel", got)
}

func TestMemory_Expiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", "v", time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	var got string
	found, err := m.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)

	exists, err := m.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemory_CounterSemantics(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	// Missing counters read as zero, first bump yields one.
	n, err := m.GetInt64(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = m.Increment(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = m.Increment(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = m.GetInt64(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMemory_Delete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", 1, 0))
	require.NoError(t, m.Set(ctx, "b", 2, 0))
	require.NoError(t, m.Delete(ctx, "a", "b"))

	exists, err := m.Exists(ctx, "a")
	require.NoError(t, err)
	assert.False(t, exists)
}

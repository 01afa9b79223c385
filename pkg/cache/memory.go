package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time // zero = no expiry
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Memory is an in-process Cache for tests and single-node setups.
// Values round-trip through JSON so behaviour matches the Redis
// implementation, including serialization quirks.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

func (m *Memory) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || entry.expired(time.Now()) {
		return false, nil
	}
	if err := json.Unmarshal(entry.data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Memory) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	for _, key := range keys {
		delete(m.entries, key)
	}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Increment(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	if entry, ok := m.entries[key]; ok && !entry.expired(time.Now()) {
		if err := json.Unmarshal(entry.data, &n); err != nil {
			return 0, err
		}
	}
	n++
	data, _ := json.Marshal(n)
	m.entries[key] = memoryEntry{data: data}
	return n, nil
}

func (m *Memory) GetInt64(ctx context.Context, key string) (int64, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || entry.expired(time.Now()) {
		return 0, nil
	}
	n, err := strconv.ParseInt(string(entry.data), 10, 64)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (m *Memory) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	return ok && !entry.expired(time.Now()), nil
}

func (m *Memory) Expire(ctx context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if entry, ok := m.entries[key]; ok {
		entry.expiresAt = time.Now().Add(ttl)
		m.entries[key] = entry
	}
	return nil
}

func (m *Memory) TTL(ctx context.Context, key string) (time.Duration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[key]
	if !ok || entry.expired(time.Now()) {
		return -2 * time.Nanosecond, nil // match redis: -2 = key missing
	}
	if entry.expiresAt.IsZero() {
		return -1 * time.Nanosecond, nil // -1 = no expiry
	}
	return time.Until(entry.expiresAt), nil
}

func (m *Memory) Ping(ctx context.Context) error {
	return nil
}

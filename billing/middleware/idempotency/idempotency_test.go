package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.dev/beta/errs"
	"encore.dev/storage/cache"

	"waterbill.app/billing/model"
)

// memoryKeyspace is an in-process Keyspace with the cache package's error semantics
type memoryKeyspace struct {
	mu      sync.Mutex
	entries map[model.IdempotencyKey]model.IdempotencyCacheEntry
	setErr  error
}

func newMemoryKeyspace() *memoryKeyspace {
	return &memoryKeyspace{entries: map[model.IdempotencyKey]model.IdempotencyCacheEntry{}}
}

func (m *memoryKeyspace) Get(_ context.Context, key model.IdempotencyKey) (model.IdempotencyCacheEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[key]
	if !ok {
		return model.IdempotencyCacheEntry{}, cache.Miss
	}
	return entry, nil
}

func (m *memoryKeyspace) Set(_ context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = val
	return nil
}

func (m *memoryKeyspace) SetIfNotExists(_ context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	if _, ok := m.entries[key]; ok {
		return cache.KeyExists
	}
	m.entries[key] = val
	return nil
}

func (m *memoryKeyspace) Delete(_ context.Context, keys ...model.IdempotencyKey) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, key := range keys {
		if _, ok := m.entries[key]; ok {
			delete(m.entries, key)
			n++
		}
	}
	return n, nil
}

func TestExtractIdempotencyKey(t *testing.T) {
	testCases := []struct {
		name        string
		headers     http.Header
		expectedKey string
	}{
		{
			name:        "valid_key",
			headers:     http.Header{IDEMPOTENCY_HEADER: []string{"test-key-123"}},
			expectedKey: "test-key-123",
		},
		{
			name:        "valid_key_with_special_chars",
			headers:     http.Header{IDEMPOTENCY_HEADER: []string{"test-key_123-abc.def"}},
			expectedKey: "test-key_123-abc.def",
		},
		{
			name:    "missing_header",
			headers: http.Header{},
		},
		{
			name:    "nil_headers",
			headers: nil,
		},
		{
			name:    "whitespace_only_header",
			headers: http.Header{IDEMPOTENCY_HEADER: []string{"   "}},
		},
		{
			name:        "multiple_header_values_takes_first",
			headers:     http.Header{IDEMPOTENCY_HEADER: []string{"first-key", "second-key"}},
			expectedKey: "first-key",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedKey, ExtractIdempotencyKey(tc.headers))
		})
	}
}

func TestHashingFunction(t *testing.T) {
	testCases := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "empty_input",
			input:    []byte{},
			expected: "",
		},
		{
			name:     "simple_text",
			input:    []byte("test"),
			expected: "098f6bcd4621d373cade4e832627b4f6",
		},
		{
			name:  "json_object",
			input: []byte(`{"billId":"6f1c1ac0-0000-4000-8000-000000000001"}`),
		},
		{
			name:  "unicode_text",
			input: []byte("Unicode: 你好世界"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := hashing(tc.input)

			if len(tc.input) == 0 {
				assert.Equal(t, tc.expected, result)
				return
			}
			if tc.expected != "" {
				assert.Equal(t, tc.expected, result)
			}
			assert.Regexp(t, "^[a-f0-9]{32}$", result)
			assert.Equal(t, result, hashing(tc.input), "Hash should be deterministic")
			assert.NotEqual(t, result, hashing(append(append([]byte{}, tc.input...), 'x')))
		})
	}
}

func TestValidateBodyHash(t *testing.T) {
	testCases := []struct {
		name          string
		entry         model.IdempotencyCacheEntry
		bodyHash      string
		expectedError string
	}{
		{
			name:     "matching_hashes",
			entry:    model.IdempotencyCacheEntry{RequestBodyHash: "abc123"},
			bodyHash: "abc123",
		},
		{
			name:     "empty_cached_hash_allows_any",
			entry:    model.IdempotencyCacheEntry{},
			bodyHash: "abc123",
		},
		{
			name:     "empty_new_hash_allows_any",
			entry:    model.IdempotencyCacheEntry{RequestBodyHash: "abc123"},
			bodyHash: "",
		},
		{
			name:          "conflicting_hashes",
			entry:         model.IdempotencyCacheEntry{RequestBodyHash: "abc123"},
			bodyHash:      "xyz789",
			expectedError: "idempotency key conflict: request body does not match previous request",
		},
		{
			name:          "case_sensitive_hash_comparison",
			entry:         model.IdempotencyCacheEntry{RequestBodyHash: "ABC123"},
			bodyHash:      "abc123",
			expectedError: "idempotency key conflict",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateBodyHash(tc.entry, tc.bodyHash)

			if tc.expectedError != "" {
				require.NotNil(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestGuardRun(t *testing.T) {
	ctx := context.Background()
	body := []byte(`{"billId":"b-1"}`)

	t.Run("no_key_runs_every_time", func(t *testing.T) {
		guard := NewGuard(newMemoryKeyspace())
		calls := 0
		fn := func(context.Context) (any, error) { calls++; return calls, nil }

		_, err := guard.Run(ctx, "payBill", "", body, fn)
		require.NoError(t, err)
		_, err = guard.Run(ctx, "payBill", "", body, fn)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("replay_returns_cached_response", func(t *testing.T) {
		guard := NewGuard(newMemoryKeyspace())
		calls := 0
		fn := func(context.Context) (any, error) {
			calls++
			return map[string]string{"status": "pending_approval"}, nil
		}

		first, err := guard.Run(ctx, "payBill", "k1", body, fn)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"status": "pending_approval"}, first)

		second, err := guard.Run(ctx, "payBill", "k1", body, fn)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		raw, ok := second.(json.RawMessage)
		require.True(t, ok)
		assert.JSONEq(t, `{"status":"pending_approval"}`, string(raw))
	})

	t.Run("same_key_different_resource_is_independent", func(t *testing.T) {
		guard := NewGuard(newMemoryKeyspace())
		calls := 0
		fn := func(context.Context) (any, error) { calls++; return "ok", nil }

		_, err := guard.Run(ctx, "payBill", "k1", body, fn)
		require.NoError(t, err)
		_, err = guard.Run(ctx, "addMeterReading", "k1", body, fn)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("different_body_conflicts", func(t *testing.T) {
		guard := NewGuard(newMemoryKeyspace())
		fn := func(context.Context) (any, error) { return "ok", nil }

		_, err := guard.Run(ctx, "payBill", "k1", body, fn)
		require.NoError(t, err)
		_, err = guard.Run(ctx, "payBill", "k1", []byte(`{"billId":"b-2"}`), fn)
		require.Error(t, err)
		assert.Equal(t, errs.InvalidArgument, errs.Code(err))
	})

	t.Run("in_flight_duplicate_aborts", func(t *testing.T) {
		keyspace := newMemoryKeyspace()
		guard := NewGuard(keyspace)

		_, err := guard.Run(ctx, "payBill", "k1", body, func(ctx context.Context) (any, error) {
			_, innerErr := guard.Run(ctx, "payBill", "k1", body, func(context.Context) (any, error) {
				t.Fatal("duplicate must not run")
				return nil, nil
			})
			assert.Equal(t, errs.Aborted, errs.Code(innerErr))
			return "ok", nil
		})
		require.NoError(t, err)
	})

	t.Run("failure_releases_key", func(t *testing.T) {
		keyspace := newMemoryKeyspace()
		guard := NewGuard(keyspace)
		calls := 0
		fn := func(context.Context) (any, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("boom")
			}
			return "ok", nil
		}

		_, err := guard.Run(ctx, "payBill", "k1", body, fn)
		require.Error(t, err)
		assert.Empty(t, keyspace.entries)

		result, err := guard.Run(ctx, "payBill", "k1", body, fn)
		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 2, calls)
	})

	t.Run("cache_unavailable", func(t *testing.T) {
		keyspace := newMemoryKeyspace()
		keyspace.setErr = errors.New("redis down")
		guard := NewGuard(keyspace)

		_, err := guard.Run(ctx, "payBill", "k1", body, func(context.Context) (any, error) {
			t.Fatal("must not run without a claimed key")
			return nil, nil
		})
		assert.Equal(t, errs.Internal, errs.Code(err))
	})
}

package idempotency

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"waterbill.app/billing/model"
)

var (
	IDEMPOTENCY_HEADER = "X-Idempotency-Key"
)

// Keyspace is the subset of the cache keyspace the guard needs
type Keyspace interface {
	Get(ctx context.Context, key model.IdempotencyKey) (model.IdempotencyCacheEntry, error)
	Set(ctx context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error
	SetIfNotExists(ctx context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error
	Delete(ctx context.Context, keys ...model.IdempotencyKey) (int, error)
}

// Guard de-duplicates mutating actions that carry an idempotency key
type Guard struct {
	keyspace Keyspace
	now      func() time.Time
}

func NewGuard(keyspace Keyspace) *Guard {
	return &Guard{keyspace: keyspace, now: time.Now}
}

// Run executes fn at most once per resource and key. A replay with the same
// body returns the cached response as raw JSON. Requests without a key run
// unguarded.
func (g *Guard) Run(ctx context.Context, resource, idempotencyKey string, body []byte, fn func(ctx context.Context) (any, error)) (any, error) {
	if idempotencyKey == "" {
		return fn(ctx)
	}

	bodyHash := hashing(body)
	cacheKey := model.IdempotencyKey{
		Resource: resource,
		Key:      idempotencyKey,
	}

	if err := g.markAsProcessing(ctx, cacheKey, bodyHash); err != nil {
		if !errors.Is(err, cache.KeyExists) {
			rlog.Error("Failed to mark request as processing", "error", err)
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}
		}

		entry, getErr := g.keyspace.Get(ctx, cacheKey)
		switch {
		case getErr == nil:
			return g.handleExistingEntry(ctx, cacheKey, entry, bodyHash, fn)
		case errors.Is(getErr, cache.Miss):
			// expired between the two calls
			return g.Run(ctx, resource, idempotencyKey, body, fn)
		default:
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}
		}
	}

	return g.execute(ctx, cacheKey, bodyHash, fn)
}

// ExtractIdempotencyKey reads the trimmed key header. Empty means none was sent.
func ExtractIdempotencyKey(headers http.Header) string {
	if headers == nil {
		return ""
	}
	return strings.TrimSpace(headers.Get(IDEMPOTENCY_HEADER))
}

func (g *Guard) execute(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash string, fn func(ctx context.Context) (any, error)) (any, error) {
	result, err := fn(ctx)
	if err != nil {
		g.deleteCacheEntry(ctx, cacheKey)
		return nil, err
	}
	g.markAsCompleted(ctx, cacheKey, bodyHash, result)
	return result, nil
}

// handleExistingEntry handles cases where a cache entry already exists
func (g *Guard) handleExistingEntry(ctx context.Context, cacheKey model.IdempotencyKey, entry model.IdempotencyCacheEntry, bodyHash string, fn func(ctx context.Context) (any, error)) (any, error) {
	if err := validateBodyHash(entry, bodyHash); err != nil {
		return nil, err
	}

	switch entry.Status {
	case model.IdempotencyProcessing:
		return nil, handleProcessingEntry(cacheKey.Key)
	case model.IdempotencyCompleted:
		if len(entry.Response) > 0 {
			rlog.Info("Returning cached response", "key", cacheKey.Key)
			return entry.Response, nil
		}
		// corrupted entry, treat as a new request
		return g.execute(ctx, cacheKey, bodyHash, fn)
	default:
		rlog.Warn("Unknown cache entry status, processing as new request", "key", cacheKey.Key, "status", entry.Status)
		return g.execute(ctx, cacheKey, bodyHash, fn)
	}
}

// validateBodyHash checks for conflicts in request body hash
func validateBodyHash(entry model.IdempotencyCacheEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

// handleProcessingEntry handles concurrent request detection
func handleProcessingEntry(idempotencyKey string) *errs.Error {
	rlog.Info("Concurrent request detected", "key", idempotencyKey)
	return &errs.Error{Code: errs.Aborted, Message: "request is already being processed"}
}

// markAsProcessing claims the key. It fails with cache.KeyExists when another
// request holds or completed it.
func (g *Guard) markAsProcessing(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash string) error {
	return g.keyspace.SetIfNotExists(ctx, cacheKey, model.IdempotencyCacheEntry{
		Status:          model.IdempotencyProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       g.now(),
	})
}

// deleteCacheEntry removes processing entry to allow retry
func (g *Guard) deleteCacheEntry(ctx context.Context, cacheKey model.IdempotencyKey) {
	if _, deleteErr := g.keyspace.Delete(ctx, cacheKey); deleteErr != nil {
		rlog.Error("Failed to clear failed request from cache", "error", deleteErr)
	}
}

// markAsCompleted caches the successful response
func (g *Guard) markAsCompleted(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash string, result any) {
	completedEntry := model.IdempotencyCacheEntry{
		Status:          model.IdempotencyCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       g.now(),
	}

	payloadBytes, err := json.Marshal(result)
	if err != nil {
		rlog.Error("Failed to marshal response payload for caching", "error", err)
		g.deleteCacheEntry(ctx, cacheKey)
		return
	}
	completedEntry.Response = payloadBytes

	if setErr := g.keyspace.Set(ctx, cacheKey, completedEntry); setErr != nil {
		rlog.Error("Failed to cache successful response", "error", setErr)
	}

	rlog.Debug("Request completed and response cached", "key", cacheKey.Key)
}

// hashing creates a stable hash of the JSON request body
func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	hash := md5.New()
	hash.Write(body)
	return hex.EncodeToString(hash.Sum(nil))
}

package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"waterbill.app/billing/model"
)

// ReplayWindow is how long a completed reading or payment submission can be replayed
const ReplayWindow = 24 * time.Hour

// IdempotencyCluster holds the replay entries of the api actions
var IdempotencyCluster = cache.NewCluster("billing-idempotency", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// IdempotencyCache is keyed by action name and client key
var IdempotencyCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	IdempotencyCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "api-action/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(ReplayWindow),
	},
)

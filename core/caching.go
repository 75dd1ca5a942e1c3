package core

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/internal/dataload"
)

// currentCacheVersion defines the version of the cached parse format. Bump
// it when the LoadResult shape changes to invalidate old entries.
const currentCacheVersion = 1

// cacheMaxAge is how long a cached parse stays usable.
const cacheMaxAge = 7 * 24 * time.Hour

// LoadCachedObservations reads the observation file and parses it through
// the dataset cache. The raw bytes are always read so the fingerprint stays
// honest; only the parse itself is skipped on a hit.
func LoadCachedObservations(cfg *contract.Config, mgr contract.StoreManager, clock clockwork.Clock) (*dataload.LoadResult, error) {
	data, err := os.ReadFile(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return CachedParseObservations(data, cfg, mgr, clock)
}

// CachedParseObservations parses CSV bytes with a read-through cache keyed
// on the file fingerprint and parse options.
func CachedParseObservations(data []byte, cfg *contract.Config, mgr contract.StoreManager, clock clockwork.Clock) (*dataload.LoadResult, error) {
	store := mgr.GetDatasetStore()
	if store == nil {
		// Fallback to direct parsing
		return dataload.ParseObservations(data, cfg)
	}

	key := generateCacheKey(dataload.Fingerprint(data), cfg)

	// Check for cache hit
	if result := checkCacheHit(store, key, clock); result != nil {
		return result, nil
	}

	// Cache miss: parse and store
	return parseAndStore(data, cfg, store, key, clock)
}

// checkCacheHit attempts to retrieve and validate a cached parse result.
func checkCacheHit(store contract.DatasetStore, key string, clock clockwork.Clock) *dataload.LoadResult {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return nil // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion {
		entryTimestamp := time.Unix(ts, 0)
		if clock.Since(entryTimestamp) <= cacheMaxAge {
			var result dataload.LoadResult
			if err := json.Unmarshal(data, &result); err == nil {
				return &result // Cache hit
			}
		}
	}

	return nil // Cache miss (stale or version mismatch)
}

// parseAndStore parses the dataset and stores the result in cache. Store
// failures are ignored; the cache is an optimization, not a dependency.
func parseAndStore(data []byte, cfg *contract.Config, store contract.DatasetStore, key string, clock clockwork.Clock) (*dataload.LoadResult, error) {
	result, err := dataload.ParseObservations(data, cfg)
	if err != nil {
		return nil, err
	}

	// Store in cache
	if payload, err := json.Marshal(result); err == nil {
		_ = store.Set(key, payload, currentCacheVersion, clock.Now().Unix())
	}

	return result, nil
}

// generateCacheKey creates a unique key from the file fingerprint and every
// option that changes how the file parses.
func generateCacheKey(fingerprint string, cfg *contract.Config) string {
	key := fmt.Sprintf("%s:%s:%s:%s:%s:%s",
		fingerprint,
		cfg.GroupColumn,
		cfg.DateColumn,
		cfg.Measure,
		cfg.DateFormat,
		strings.Join(cfg.Excludes, ","),
	)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}

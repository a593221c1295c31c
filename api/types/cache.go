package types

import "errors"

// ErrCacheNotInitialized is returned by cache wrappers whose underlying cache is nil.
var ErrCacheNotInitialized = errors.New("cache is not initialized")

// Cache defines the interface for cache storage
// Provides key-value based storage and retrieval functionality with expiration support
// Implementation classes must ensure thread safety
type Cache interface {
	// Set stores a key-value pair in cache with optional expiration
	// ttl is a time-to-live duration string (e.g. "10m", "1h"); if ttl is 0
	// or the empty string, the item never expires.
	// Returns an error if the ttl format is invalid.
	Set(key string, value interface{}, ttl string) error
	// Get retrieves a value from cache by key.
	// Returns nil if the key does not exist or is expired.
	Get(key string) interface{}
	// Has checks if a key exists in cache and is not expired.
	Has(key string) bool
	// Delete removes a cache item by key.
	Delete(key string) error
	// DeleteByPrefix removes all cache items with the specified prefix.
	DeleteByPrefix(prefix string) error
	// GetByPrefix retrieves all values with keys matching the specified prefix.
	GetByPrefix(prefix string) map[string]interface{}
}

// Package cache provides a small in-memory read cache used in front of the
// persistent key-value store, so screens that reload the same preference keys
// on every mount do not hit the database each time.
package cache

// Cache defines a generic cache interface
type Cache[T any] interface {
	// Get retrieves a value from the cache
	Get(key string) (T, bool)

	// Set stores a value in the cache
	Set(key string, data T)

	// Delete removes a key from the cache
	Delete(key string)

	// Size returns the current number of items in the cache
	Size() int
}

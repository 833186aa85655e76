// Package cache provides a generic LRU cache.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// Values that are expensive to build are created at most once per key
// with GetOrCreate; a failed creation is not cached.
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache

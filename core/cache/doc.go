// Package cache provides the bounded TTL store used to memoize lookup
// results.
//
// A Store keeps at most Size entries for TTL. Misses go through a
// singleflight.Group so that a burst of identical requests triggers one
// build; errors are shared with the waiters but never stored. A Store with
// a zero TTL or Size passes every call straight through to the builder.
//
// # Usage
//
//	store := cache.New[classifier.Capabilities](cfg.Lookup)
//	caps, err := store.GetOrBuild(ua, func() (classifier.Capabilities, error) {
//	    return eng.Lookup(ua)
//	})
package cache

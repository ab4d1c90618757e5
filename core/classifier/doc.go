// Package classifier implements the user-agent capability engine.
//
// A dataset of wildcard patterns (one row per Entry, each optionally
// inheriting from a parent entry) is loaded once, compiled and indexed. At
// request time a raw user-agent string is matched against the index and the
// winning entry's properties are merged with those of its ancestors into a
// flat Capabilities value.
//
// # Pipeline
//
//	Source ──▶ Load ──▶ Compile ──▶ BuildIndex ──▶ Engine
//	                                                 │
//	                         Lookup(ua) ──▶ Query ──▶ Resolve ──▶ Capabilities
//
// # Matching
//
// Patterns use two metacharacters: '*' matches any run of characters
// (including none) and '?' matches exactly one. Matching is case-insensitive
// and anchored at both ends. When several patterns match, the one with the
// highest specificity wins; ties go to the longer pattern and then to the
// entry declared first in the dataset.
//
// # Indexing
//
// Compiled patterns are bucketed by their leading literal run. A query only
// visits buckets whose key is a prefix of the input, followed by the
// catch-all bucket of patterns that start with a wildcard. Buckets are kept
// in rank order so a scan stops at the first match.
//
// # Concurrency
//
// An Engine is immutable once built. Lookup takes no locks and may be called
// from any number of goroutines.
//
// # Usage
//
//	eng, err := classifier.Initialize(ctx, classifier.FileSource{Path: "browscap.csv"}, classifier.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	caps, err := eng.Lookup(r.UserAgent())
package classifier

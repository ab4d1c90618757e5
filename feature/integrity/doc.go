// Package integrity reports on the health of the loaded dataset.
//
// The engine refuses to build from an invalid dataset, so by the time this
// feature is reachable the dataset itself is sound. What remains to check is
// what the build produced and whether the source is still there for the
// next restart.
//
// # Checks Provided
//
//   - Dataset: entry and property counts, inheritance roots and maximum depth,
//     prefix buckets and catch-all size, presence of the "*" default pattern.
//   - Source: file exists and is a regular file; bucket and object exist in
//     storage; table exists and carries the Pattern and Parent columns.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/source : Runs the source check.
package integrity

// Package lookup exposes user-agent classification over HTTP.
//
// The service wraps an immutable classifier.Engine and memoizes results in a
// bounded TTL cache keyed by the exact user-agent string. Blank input is
// rejected by the engine and reported as 400.
//
// # HTTP Endpoints
//
//   - GET /lookup?ua=... : Classifies ua, or the request's User-Agent header when ua is absent.
//   - GET /lookup/properties : Lists the property columns every result carries.
package lookup

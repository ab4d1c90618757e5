// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: checks the X-API-Key header against server.api_key. An empty key
//     leaves the API open.
//   - RayID: tags every request with an id (the caller's X-Ray-ID or a fresh
//     UUID), stores it in the Fiber locals for logger.WithRayID and echoes it
//     in the response headers.
//
// RayID is registered first so that every log line of a request carries the
// id; Auth is registered after the public swagger route.
package middleware

// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for the configured origin and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithRecover: Turns handler panics into a 500 JSON response.
//   - WithBodyLimit: Caps request body size.
//   - WithTimeout: Bounds request duration and answers expired requests with a 504 JSON error.
//
// Provided helpers:
//   - DebugMux: Returns a ServeMux exposing net/http/pprof handlers under /debug/pprof/.
package controller

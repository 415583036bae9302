// Package http implements the HTTP transport layer of the application.
//
// Every request first passes the edge pipeline declared in stages: tracing,
// panic recovery, CORS, static assets, security headers, access logging,
// rate limiting, the raw-body payment webhook, body parsing, sanitization,
// compression and session resolution. It is then dispatched by the chi
// router to the API handlers under /api/v1 or to the server-rendered views.
// All failures are answered by sendError.
package http

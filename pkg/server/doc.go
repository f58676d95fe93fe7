// Package server exposes analysis and rendering over HTTP.
//
// # Routes
//
//	GET  /healthz                 liveness probe
//	POST /v1/analyze              {"path"} → snapshot, project type and summary
//	POST /v1/render               {"content","format","options"} → {"output"}
//	POST /v1/render/categories    {"categories","format","options"} → {"output"}
//
// Every response carries an X-Request-ID header; a client supplied value is
// kept. Failures are returned as {"error","code"} with a status derived from
// the error code.
package server

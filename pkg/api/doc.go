// Package api serves the pattern catalogue over HTTP as read-only JSON.
//
// Routes:
//
//	GET  /domains
//	GET  /domains/{key}
//	GET  /domains/{key}/variants/{variant}
//	POST /domains/{key}/variants/{variant}/match
//	GET  /conformance[?domain=key]
//
// Every response uses the {data, meta, error} envelope. Unknown domains and
// variants answer 404, malformed bodies 400 and invalid fields 422.
package api

// Package requestid assigns every HTTP request an identifier.
//
// Middleware reuses a well-formed X-Request-ID header (letters, digits, '_'
// and '-', at most 128 bytes) or generates a UUID. The ID is echoed in the
// response header and stored in the request context, where FromContext reads
// it and Extractor adds it to log records:
//
//	log := logger.New(logger.WithContextExtractors(requestid.Extractor))
//	r.Use(requestid.Middleware)
package requestid

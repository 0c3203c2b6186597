package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/regexbook/pkg/pattern"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

// idMatcher accepts caller supplied IDs made of letters, digits, '_' and '-'.
var idMatcher = mustMatcher(`^[a-zA-Z0-9_-]+$`)

func mustMatcher(src string) *pattern.Matcher {
	m, err := pattern.Compile(pattern.Variant{ID: "request-id", Source: src})
	if err != nil {
		panic(err)
	}
	return m
}

// Middleware propagates the caller's X-Request-ID or assigns a new UUID,
// echoing it in the response and storing it in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !valid(id) {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

func valid(id string) bool {
	return id != "" && len(id) <= maxIDLength && idMatcher.FullMatch(id)
}

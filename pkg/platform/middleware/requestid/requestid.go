// Package requestid assigns each request a correlation id, honoring one
// supplied by an upstream proxy.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"saintkernel/pkg/requestcontext"
)

// Header is the wire header carrying the request id.
const Header = "X-Request-ID"

// Middleware injects a request id into the context and echoes it on the
// response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

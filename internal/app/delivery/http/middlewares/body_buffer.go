package middlewares

import (
	"arogyanetra-service/internal/pkg/constvars"
	"net/http"
)

// BodyLimit caps the request body at the configured size. Reads past the
// limit fail and surface as parse errors in the controllers.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) * constvars.BytesInMegabyte
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limit > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}

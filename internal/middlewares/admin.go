package middlewares

import "net/http"

// AdminMiddleware rejects authenticated requests whose claims lack the
// admin role. It must run after AuthMiddleware.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetClaimsFromContext(r.Context())
		if claims == nil || !claims.IsAdmin {
			writeError(w, http.StatusForbidden, "Access denied to the current resource.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"net/http"
	"strings"

	"animal-control-admin/internal/session"
)

// SessionContext:
// - Si viene Bearer token => esa sesión va al context (y de ahí al API).
// - Si no, se usa fallback: vacío salvo `serve --use-saved-session`.
// - X-Admin-User solo nombra al usuario para el historial de reportes.
// - No corta nada: sin token el API responde 401 y el handler lo propaga.
func SessionContext(fallback session.Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := fallback
			if token := bearerToken(r.Header.Get("Authorization")); token != "" {
				s = session.New(token)
			}
			if u := strings.TrimSpace(r.Header.Get("X-Admin-User")); u != "" {
				s = s.WithUser(u)
			}

			ctx := session.WithSession(r.Context(), s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

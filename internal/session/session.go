package session

import (
	"context"
	"strings"
)

// Session es el contexto de autenticación explícito que viaja entre capas
// (CLI/HTTP => stores => clients). Reemplaza el token "global" en storage local.
type Session struct {
	Token string
	User  string // email/username informativo (no se valida acá)
}

func New(token string) Session {
	return Session{Token: strings.TrimSpace(token)}
}

// WithUser devuelve una copia con User seteado.
func (s Session) WithUser(user string) Session {
	s.User = strings.TrimSpace(user)
	return s
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

// AuthHeaders devuelve los headers a agregar a cada request (vacío si no hay token).
func (s Session) AuthHeaders() map[string]string {
	if !s.Authenticated() {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + s.Token}
}

type ctxKey string

const sessionKey ctxKey = "session"

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromContext devuelve la sesión del contexto; si no hay, una sesión anónima.
func FromContext(ctx context.Context) Session {
	if ctx == nil {
		return Session{}
	}
	s, _ := ctx.Value(sessionKey).(Session)
	return s
}

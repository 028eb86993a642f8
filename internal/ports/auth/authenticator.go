package auth

import (
	"context"

	"animal-control-admin/internal/session"
)

// Authenticator obtiene un token del API. La sesión devuelta ya trae User.
type Authenticator interface {
	Login(ctx context.Context, in Credentials) (session.Session, error)
	Signup(ctx context.Context, in SignupInput) error
}

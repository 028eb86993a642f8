package recordsapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"animal-control-admin/internal/platform/httpclient"
	"animal-control-admin/internal/ports/auth"
	"animal-control-admin/internal/session"
)

const (
	loginPath  = "/auth/login"
	signupPath = "/auth/signup"
)

var (
	ErrUnauthorized = errors.New("invalid credentials")
	ErrUpstream     = errors.New("auth upstream error")
	ErrMissingToken = errors.New("auth response missing access_token")
)

// Client implementa auth.Authenticator contra /auth del API de registros.
type Client struct {
	http *httpclient.Client
}

var _ auth.Authenticator = (*Client)(nil)

func NewClient(hc *httpclient.Client) *Client {
	return &Client{http: hc}
}

func (c *Client) Login(ctx context.Context, in auth.Credentials) (session.Session, error) {
	in.Email = strings.TrimSpace(in.Email)

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.http.DoJSON(ctx, http.MethodPost, loginPath, nil, in, &out); err != nil {
		return session.Session{}, mapErr(err)
	}

	token := strings.TrimSpace(out.AccessToken)
	if token == "" {
		return session.Session{}, ErrMissingToken
	}
	return session.New(token).WithUser(in.Email), nil
}

func (c *Client) Signup(ctx context.Context, in auth.SignupInput) error {
	in.Email = strings.TrimSpace(in.Email)
	if err := c.http.DoJSON(ctx, http.MethodPost, signupPath, nil, in, nil); err != nil {
		return mapErr(err)
	}
	return nil
}

func mapErr(err error) error {
	st, ok := httpclient.StatusOf(err)
	switch {
	case ok && (st == http.StatusUnauthorized || st == http.StatusForbidden):
		return ErrUnauthorized
	case ok && st >= 400 && st < 500:
		// 400/409/422: el mensaje del API le sirve al usuario tal cual
		return err
	default:
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}

package directory

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"animal-control-admin/internal/platform/httpclient"
	"animal-control-admin/internal/session"

	"github.com/patrickmn/go-cache"
)

const (
	usersPath = "/users/"
	petsPath  = "/pets/"
)

type Source interface {
	Users(ctx context.Context) ([]User, error)
	Pets(ctx context.Context) ([]Pet, error)
}

type Client struct {
	http *httpclient.Client
}

func NewClient(hc *httpclient.Client) *Client {
	return &Client{http: hc}
}

func (c *Client) Users(ctx context.Context) ([]User, error) {
	var out []User
	if err := c.http.DoJSON(ctx, http.MethodGet, usersPath, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if out == nil {
		out = []User{}
	}
	return out, nil
}

func (c *Client) Pets(ctx context.Context) ([]Pet, error) {
	var out []Pet
	if err := c.http.DoJSON(ctx, http.MethodGet, petsPath, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	if out == nil {
		out = []Pet{}
	}
	return out, nil
}

// Cached envuelve un Source y guarda las listas por ttl, por token
// (dos sesiones distintas no comparten resultados).
type Cached struct {
	src   Source
	cache *cache.Cache
}

func NewCached(src Source, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cached{
		src:   src,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *Cached) Users(ctx context.Context) ([]User, error) {
	key := "users:" + session.FromContext(ctx).Token
	if v, ok := c.cache.Get(key); ok {
		return v.([]User), nil
	}
	items, err := c.src.Users(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, items, cache.DefaultExpiration)
	return items, nil
}

func (c *Cached) Pets(ctx context.Context) ([]Pet, error) {
	key := "pets:" + session.FromContext(ctx).Token
	if v, ok := c.cache.Get(key); ok {
		return v.([]Pet), nil
	}
	items, err := c.src.Pets(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, items, cache.DefaultExpiration)
	return items, nil
}

// Invalidate descarta todo lo cacheado.
func (c *Cached) Invalidate() {
	c.cache.Flush()
}

package reproductive

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"animal-control-admin/internal/platform/httpclient"
)

const basePath = "/reproductive-records/"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrMissingID    = errors.New("create response missing id")
)

type Backend interface {
	List(ctx context.Context, q ListQuery) ([]Record, error)
	Create(ctx context.Context, in Input) (int64, error)
	Update(ctx context.Context, id int64, in Input) error
	Delete(ctx context.Context, id int64) error
}

type Client struct {
	http *httpclient.Client
}

func NewClient(hc *httpclient.Client) *Client {
	return &Client{http: hc}
}

func (c *Client) List(ctx context.Context, q ListQuery) ([]Record, error) {
	p := basePath
	v := url.Values{}
	if q.Species != "" {
		v.Set("species", string(q.Species))
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		v.Set("search", s)
	}
	if len(v) > 0 {
		p += "?" + v.Encode()
	}

	var out []Record
	if err := c.http.DoJSON(ctx, http.MethodGet, p, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("list reproductive records: %w", err)
	}
	if out == nil {
		out = []Record{}
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id int64) (Record, error) {
	if id <= 0 {
		return Record{}, ErrInvalidInput
	}
	var out Record
	if err := c.http.DoJSON(ctx, http.MethodGet, recordPath(id), nil, nil, &out); err != nil {
		return Record{}, fmt.Errorf("get reproductive record %d: %w", id, err)
	}
	return out, nil
}

// Create devuelve solo el id: el API no devuelve el registro completo.
func (c *Client) Create(ctx context.Context, in Input) (int64, error) {
	var out struct {
		ID int64 `json:"id"`
	}
	if err := c.http.DoJSON(ctx, http.MethodPost, basePath, nil, in, &out); err != nil {
		return 0, fmt.Errorf("create reproductive record: %w", err)
	}
	if out.ID == 0 {
		return 0, ErrMissingID
	}
	return out.ID, nil
}

// Update manda el formulario completo (no es parcial).
func (c *Client) Update(ctx context.Context, id int64, in Input) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	if err := c.http.DoJSON(ctx, http.MethodPut, recordPath(id), nil, in, nil); err != nil {
		return fmt.Errorf("update reproductive record %d: %w", id, err)
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	if err := c.http.DoJSON(ctx, http.MethodDelete, recordPath(id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete reproductive record %d: %w", id, err)
	}
	return nil
}

func recordPath(id int64) string {
	return basePath + strconv.FormatInt(id, 10)
}

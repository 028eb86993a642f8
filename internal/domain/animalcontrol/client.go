package animalcontrol

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

const basePath = "/animal-control-records/"

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Backend es lo que el Store necesita del API.
type Backend interface {
	List(ctx context.Context) ([]Record, error)
	Create(ctx context.Context, in CreateInput) (Record, error)
	Update(ctx context.Context, id int64, patch UpdateInput) (Record, error)
	Delete(ctx context.Context, id int64) error
}

// Client habla con /animal-control-records del API.
type Client struct {
	http *httpclient.Client
}

func NewClient(hc *httpclient.Client) *Client {
	return &Client{http: hc}
}

func (c *Client) List(ctx context.Context) ([]Record, error) {
	var out []Record
	if err := c.http.DoJSON(ctx, http.MethodGet, basePath, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("list animal control records: %w", err)
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
		return Record{}, fmt.Errorf("get animal control record %d: %w", id, err)
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, in CreateInput) (Record, error) {
	var out Record
	if err := c.http.DoJSON(ctx, http.MethodPost, basePath, nil, in, &out); err != nil {
		return Record{}, fmt.Errorf("create animal control record: %w", err)
	}
	return out, nil
}

// Update manda solo los campos no-nil de patch.
func (c *Client) Update(ctx context.Context, id int64, patch UpdateInput) (Record, error) {
	if id <= 0 {
		return Record{}, ErrInvalidInput
	}
	var out Record
	if err := c.http.DoJSON(ctx, http.MethodPut, recordPath(id), nil, patch, &out); err != nil {
		return Record{}, fmt.Errorf("update animal control record %d: %w", id, err)
	}
	return out, nil
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	if err := c.http.DoJSON(ctx, http.MethodDelete, recordPath(id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete animal control record %d: %w", id, err)
	}
	return nil
}

// Statistics trae los contadores del dashboard. day vacío = sin filtro de fecha.
func (c *Client) Statistics(ctx context.Context, day string) (Statistics, error) {
	p := basePath + "statistics/dashboard"
	if day = strings.TrimSpace(day); day != "" {
		p += "?" + url.Values{"date": []string{day}}.Encode()
	}
	var out Statistics
	if err := c.http.DoJSON(ctx, http.MethodGet, p, nil, nil, &out); err != nil {
		return Statistics{}, fmt.Errorf("animal control statistics: %w", err)
	}
	if out.Date == "" {
		out.Date = day
	}
	return out, nil
}

func recordPath(id int64) string {
	return basePath + strconv.FormatInt(id, 10)
}

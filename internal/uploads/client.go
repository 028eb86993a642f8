package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"animal-control-admin/internal/platform/httpclient"
)

const imagePath = "/uploads/pain-assessment-image/"

var (
	ErrEmptyFile  = errors.New("upload: empty file name")
	ErrNoURL      = errors.New("upload: response without url")
	ErrNotAnImage = errors.New("upload: not an image")
)

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
}

// Client sube imágenes al API; la URL devuelta va en image_url del registro.
type Client struct {
	http *httpclient.Client
}

func NewClient(hc *httpclient.Client) *Client {
	return &Client{http: hc}
}

// UploadImage manda content como multipart (campo "file") y devuelve la URL.
func (c *Client) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	filename = strings.TrimSpace(filepath.Base(filename))
	if filename == "" || filename == "." || filename == "/" {
		return "", ErrEmptyFile
	}
	if !imageExts[strings.ToLower(filepath.Ext(filename))] {
		return "", fmt.Errorf("%w: %s", ErrNotAnImage, filename)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := c.http.DoMultipart(ctx, imagePath, "file", filename, content, &out); err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	if strings.TrimSpace(out.URL) == "" {
		return "", ErrNoURL
	}
	return out.URL, nil
}

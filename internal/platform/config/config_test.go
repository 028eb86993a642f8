package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := FromViper(v)
	if err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.PageSize != 10 {
		t.Fatalf("expected page size 10, got %d", cfg.PageSize)
	}
	if cfg.APITimeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %s", cfg.APITimeout)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.Addr())
	}
}

func TestFromViper_EnvOverride(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.org/v1/")
	t.Setenv("PAGE_SIZE", "25")

	v, err := NewViper("")
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}
	cfg, err := FromViper(v)
	if err != nil {
		t.Fatalf("FromViper: %v", err)
	}
	if cfg.APIBaseURL != "https://api.example.org/v1" {
		t.Fatalf("expected trimmed base url, got %q", cfg.APIBaseURL)
	}
	if cfg.PageSize != 25 {
		t.Fatalf("expected page size 25, got %d", cfg.PageSize)
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(KeyPageSize, 0)

	if _, err := FromViper(v); err == nil {
		t.Fatalf("expected error for page_size=0")
	}

	v.Set(KeyPageSize, 10)
	v.Set(KeyAPIBaseURL, "not a url")
	if _, err := FromViper(v); err == nil {
		t.Fatalf("expected error for invalid base url")
	}
}

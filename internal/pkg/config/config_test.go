package config

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.Backend.URL != "http://localhost:8000" || cfg.Backend.LoginDomain != "news.com" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Session.Store != SessionStoreMemory || cfg.Session.TTL != 12*time.Hour || cfg.Session.CookieName != "curator_session" {
		t.Fatalf("unexpected session defaults: %+v", cfg.Session)
	}
	if !cfg.Backend.Proxy || !cfg.IsDevelopment() {
		t.Fatalf("development profile should proxy the backend")
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":            "production",
		"SESSION_SECRET": "s3cret",
		"SESSION_STORE":  "redis",
		"SESSION_TTL":    "30m",
		"REDIS_ADDR":     "cache:6379",
		"BACKEND_PROXY":  "false",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.IsDevelopment() || cfg.Backend.Proxy {
		t.Fatalf("expected production without proxy: %+v", cfg)
	}
	if cfg.Session.Store != SessionStoreRedis || cfg.Session.TTL != 30*time.Minute || cfg.Redis.Addr != "cache:6379" {
		t.Fatalf("unexpected session config: %+v / %+v", cfg.Session, cfg.Redis)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"SESSION_SECRET": {"ENV": "production"},
		"SESSION_STORE":  {"SESSION_STORE": "etcd"},
	}
	for want, env := range tests {
		_, err := load(context.Background(), envconfig.MapLookuper(env))
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Fatalf("expected error mentioning %s, got %v", want, err)
		}
	}
}

func TestRandomSecret(t *testing.T) {
	a, err := RandomSecret()
	if err != nil {
		t.Fatalf("RandomSecret: %v", err)
	}
	b, err := RandomSecret()
	if err != nil {
		t.Fatalf("RandomSecret: %v", err)
	}
	if len(a) != SecretSize || len(b) != SecretSize {
		t.Fatalf("expected %d-byte keys, got %d and %d", SecretSize, len(a), len(b))
	}
	if bytes.Equal(a, b) {
		t.Fatalf("consecutive secrets must differ")
	}
}

// Where: internal/config/environment_test.go
// What: Tests for environment resolution.
// Why: Keep the mode-to-file mapping and its default stable.
package config

import (
	"errors"
	"testing"
)

func TestResolveProd(t *testing.T) {
	env, err := Resolve("prod")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if env.Name != ModeProd {
		t.Fatalf("name = %q, want prod", env.Name)
	}
	if env.ComposeFile != "docker-compose.prod.yml" {
		t.Fatalf("compose file = %q", env.ComposeFile)
	}
	if env.EnvFile != ".env" {
		t.Fatalf("env file = %q", env.EnvFile)
	}
	if env.Project() != "stackctl-prod" {
		t.Fatalf("project = %q", env.Project())
	}
}

func TestResolveDev(t *testing.T) {
	env, err := Resolve("dev")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if env.ComposeFile != "docker-compose.yml" || env.EnvFile != ".env" {
		t.Fatalf("unexpected environment: %+v", env)
	}
}

func TestResolveEmptyDefaultsToDev(t *testing.T) {
	for _, mode := range []string{"", "  ", "DEV"} {
		env, err := Resolve(mode)
		if err != nil {
			t.Fatalf("mode %q: expected no error, got %v", mode, err)
		}
		if env.Name != ModeDev {
			t.Fatalf("mode %q: resolved to %q, want dev", mode, env.Name)
		}
	}
}

func TestResolveUnknownMode(t *testing.T) {
	for _, mode := range []string{"staging", "prd", "production"} {
		_, err := Resolve(mode)
		if !errors.Is(err, ErrUnknownMode) {
			t.Fatalf("mode %q: expected ErrUnknownMode, got %v", mode, err)
		}
	}
}

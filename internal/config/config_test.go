package config

import (
	"strings"
	"testing"
	"time"
)

const testHash = "$argon2id$v=19$m=65536,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g"

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("ASSISTANT_BOT_TOKEN", "123:abc")
	t.Setenv("ASSISTANT_ADMIN_PASSWORD_HASH", testHash)
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("ASSISTANT_SQLITE_DSN", "")
	t.Setenv("ASSISTANT_DEFAULT_LANGUAGE", "")
	t.Setenv("ASSISTANT_BROADCAST_TIMEOUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.BotToken != "123:abc" {
		t.Errorf("expected bot token '123:abc', got %q", cfg.BotToken)
	}
	if cfg.DefaultLanguage != "en" {
		t.Errorf("expected default language 'en', got %q", cfg.DefaultLanguage)
	}
	if cfg.BroadcastTimeout != 30*time.Second {
		t.Errorf("expected broadcast timeout 30s, got %v", cfg.BroadcastTimeout)
	}
	if cfg.SQLiteDSN == "" {
		t.Error("expected a default SQLite DSN")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("ASSISTANT_BOT_TOKEN", "")
	t.Setenv("ASSISTANT_ADMIN_PASSWORD_HASH", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing required variables")
	}
	if !strings.Contains(err.Error(), "ASSISTANT_BOT_TOKEN") {
		t.Errorf("error should name ASSISTANT_BOT_TOKEN: %v", err)
	}
	if !strings.Contains(err.Error(), "ASSISTANT_ADMIN_PASSWORD_HASH") {
		t.Errorf("error should name ASSISTANT_ADMIN_PASSWORD_HASH: %v", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	setRequired(t)
	t.Setenv("ASSISTANT_DEFAULT_LANGUAGE", "fr")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for unsupported language")
	}

	t.Setenv("ASSISTANT_DEFAULT_LANGUAGE", "ru")
	t.Setenv("ASSISTANT_BROADCAST_TIMEOUT", "-5s")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative broadcast timeout")
	}
}

func TestLoad_RejectsPlaintextPassword(t *testing.T) {
	t.Setenv("ASSISTANT_BOT_TOKEN", "123:abc")
	t.Setenv("ASSISTANT_ADMIN_PASSWORD_HASH", "hunter2")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non argon2id password hash")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ASSISTANT_SQLITE_DSN", "file:custom.db")
	t.Setenv("ASSISTANT_DEFAULT_LANGUAGE", "uz")
	t.Setenv("ASSISTANT_BROADCAST_TIMEOUT", "2m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SQLiteDSN != "file:custom.db" {
		t.Errorf("expected custom DSN, got %q", cfg.SQLiteDSN)
	}
	if cfg.DefaultLanguage != "uz" {
		t.Errorf("expected language 'uz', got %q", cfg.DefaultLanguage)
	}
	if cfg.BroadcastTimeout != 2*time.Minute {
		t.Errorf("expected timeout 2m, got %v", cfg.BroadcastTimeout)
	}
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config captures environment driven configuration values for the assistant.
type Config struct {
	BotToken          string
	SQLiteDSN         string
	AdminPasswordHash string
	DefaultLanguage   string
	BroadcastTimeout  time.Duration
}

// Load parses configuration values from the current process environment.
//
// Optional fields receive defaults; required values are validated and all
// missing or invalid entries are reported together.
func Load() (Config, error) {
	cfg := Config{
		SQLiteDSN:        "file:assistant.db?_pragma=foreign_keys(1)",
		DefaultLanguage:  "en",
		BroadcastTimeout: 30 * time.Second,
	}

	missing := make([]string, 0, 2)
	invalid := make([]string, 0, 2)

	if token := strings.TrimSpace(os.Getenv("ASSISTANT_BOT_TOKEN")); token == "" {
		missing = append(missing, "ASSISTANT_BOT_TOKEN")
	} else {
		cfg.BotToken = token
	}

	if hash := strings.TrimSpace(os.Getenv("ASSISTANT_ADMIN_PASSWORD_HASH")); hash == "" {
		missing = append(missing, "ASSISTANT_ADMIN_PASSWORD_HASH")
	} else if !strings.HasPrefix(hash, "$argon2id$") {
		invalid = append(invalid, "ASSISTANT_ADMIN_PASSWORD_HASH")
	} else {
		cfg.AdminPasswordHash = hash
	}

	if dsn := strings.TrimSpace(os.Getenv("ASSISTANT_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if lang := strings.TrimSpace(os.Getenv("ASSISTANT_DEFAULT_LANGUAGE")); lang != "" {
		switch lang {
		case "en", "ru", "uz":
			cfg.DefaultLanguage = lang
		default:
			invalid = append(invalid, "ASSISTANT_DEFAULT_LANGUAGE")
		}
	}

	if timeoutValue := strings.TrimSpace(os.Getenv("ASSISTANT_BROADCAST_TIMEOUT")); timeoutValue != "" {
		timeout, err := time.ParseDuration(timeoutValue)
		if err != nil || timeout <= 0 {
			invalid = append(invalid, "ASSISTANT_BROADCAST_TIMEOUT")
		} else {
			cfg.BroadcastTimeout = timeout
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

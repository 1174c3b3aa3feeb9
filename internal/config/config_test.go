package config

import (
	"log/slog"
	"testing"
	"time"
)

// TestLoadDefaults проверяет значения по умолчанию при пустом окружении.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, ожидалось 3000", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, ожидался info", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, ожидался json", cfg.LogFormat)
	}
	if cfg.AuthTimeout != 10*time.Second {
		t.Errorf("AuthTimeout = %v, ожидалось 10s", cfg.AuthTimeout)
	}
	if !cfg.DemoMode {
		t.Error("DemoMode = false, ожидался true по умолчанию")
	}
	if len(cfg.Scopes) != 2 || cfg.Scopes[0] != "Files.Read" || cfg.Scopes[1] != "offline_access" {
		t.Errorf("Scopes = %v", cfg.Scopes)
	}
	if cfg.OAuthConfigured() {
		t.Error("OAuthConfigured = true при пустых учётных данных")
	}
}

// TestLoadFromEnv проверяет чтение переменных окружения.
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ODM_PORT", "8080")
	t.Setenv("ODM_LOG_LEVEL", "debug")
	t.Setenv("ODM_LOG_FORMAT", "text")
	t.Setenv("ODM_SCOPES", "Files.ReadWrite User.Read offline_access")
	t.Setenv("ODM_DEMO_MODE", "false")
	t.Setenv("ODM_AUTH_TIMEOUT", "30s")
	t.Setenv("ODM_CLIENT_ID", "client")
	t.Setenv("ODM_CLIENT_SECRET", "secret")
	t.Setenv("ODM_REDIRECT_URI", "http://localhost:8080/auth/callback")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q", cfg.LogFormat)
	}
	if len(cfg.Scopes) != 3 {
		t.Errorf("Scopes = %v", cfg.Scopes)
	}
	if cfg.DemoMode {
		t.Error("DemoMode = true, ожидался false")
	}
	if cfg.AuthTimeout != 30*time.Second {
		t.Errorf("AuthTimeout = %v", cfg.AuthTimeout)
	}
	if !cfg.OAuthConfigured() {
		t.Error("OAuthConfigured = false при заданных учётных данных")
	}
}

// TestLoadInvalid — некорректные значения отвергаются с ошибкой.
func TestLoadInvalid(t *testing.T) {
	cases := []struct {
		name, key, value string
	}{
		{"нечисловой порт", "ODM_PORT", "не-число"},
		{"неизвестный уровень", "ODM_LOG_LEVEL", "verbose"},
		{"неизвестный формат", "ODM_LOG_FORMAT", "xml"},
		{"некорректная длительность", "ODM_AUTH_TIMEOUT", "10 секунд"},
		{"некорректный булев", "ODM_DEMO_MODE", "да"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load с %s=%q не вернул ошибку", tc.key, tc.value)
			}
		})
	}
}

// TestParseLogLevel — синонимы и регистр уровней логирования.
func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"Error", slog.LevelError},
	}
	for _, tc := range cases {
		got, err := parseLogLevel(tc.in)
		if err != nil {
			t.Errorf("parseLogLevel(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseLogLevel(%q) = %v, ожидалось %v", tc.in, got, tc.want)
		}
	}
}

// Пакет config — загрузка и валидация конфигурации OneDrive Manager
// из переменных окружения (с поддержкой .env файла).
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Версия приложения, задаётся при сборке через -ldflags.
var Version = "dev"

// Config содержит все параметры конфигурации OneDrive Manager.
type Config struct {
	// --- Сервер ---

	// Порт HTTP-сервера.
	Port int
	// Уровень логирования (debug, info, warn, error).
	LogLevel slog.Level
	// Формат логов (json, text).
	LogFormat string
	// Каталог статики фронтенда (пустая строка — статика отключена).
	StaticDir string

	// --- HTTP Server Timeouts ---

	// Таймаут чтения HTTP-сервера.
	HTTPReadTimeout time.Duration
	// Таймаут записи HTTP-сервера.
	HTTPWriteTimeout time.Duration
	// Таймаут простоя HTTP-сервера.
	HTTPIdleTimeout time.Duration

	// --- Graceful shutdown ---

	// Таймаут graceful shutdown.
	ShutdownTimeout time.Duration

	// --- OneDrive ---

	// ClientID — client id зарегистрированного OneDrive-приложения.
	ClientID string
	// ClientSecret — client secret приложения.
	ClientSecret string
	// RedirectURI — callback URL, зарегистрированный у провайдера.
	RedirectURI string
	// Scopes — запрашиваемые OAuth2 scopes.
	Scopes []string
	// AuthTimeout — ограничение обмена кода на токены.
	AuthTimeout time.Duration
	// DemoMode — true: листинг облака из фиксированного демо-набора,
	// false: реальный запрос к Microsoft Graph.
	DemoMode bool
	// GraphURL — базовый URL Graph API (пустая строка — стандартный).
	GraphURL string
	// GraphTimeout — таймаут запросов к Graph.
	GraphTimeout time.Duration
}

// Load загружает конфигурацию из переменных окружения.
// Перед чтением подхватывает .env из рабочего каталога (как dotenv
// в оригинальном приложении); отсутствие файла — не ошибка.
// Учётные данные OneDrive при загрузке не обязательны: без них
// работает CRUD API, а endpoint авторизации возвращает 500.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	var err error

	// --- Сервер ---

	// ODM_PORT — порт HTTP-сервера (по умолчанию 3000)
	cfg.Port, err = getEnvInt("ODM_PORT", 3000)
	if err != nil {
		return nil, fmt.Errorf("ODM_PORT: %w", err)
	}

	// ODM_LOG_LEVEL — уровень логирования (по умолчанию info)
	logLevel := getEnvDefault("ODM_LOG_LEVEL", "info")
	cfg.LogLevel, err = parseLogLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("ODM_LOG_LEVEL: %w", err)
	}

	// ODM_LOG_FORMAT — формат логов (по умолчанию json)
	cfg.LogFormat = getEnvDefault("ODM_LOG_FORMAT", "json")
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("ODM_LOG_FORMAT: недопустимый формат %q, допустимые: json, text", cfg.LogFormat)
	}

	// ODM_STATIC_DIR — каталог статики (по умолчанию отключено)
	cfg.StaticDir = getEnvDefault("ODM_STATIC_DIR", "")

	// --- HTTP Server Timeouts ---

	// ODM_HTTP_READ_TIMEOUT — таймаут чтения (по умолчанию 30s)
	cfg.HTTPReadTimeout, err = getEnvDuration("ODM_HTTP_READ_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("ODM_HTTP_READ_TIMEOUT: %w", err)
	}

	// ODM_HTTP_WRITE_TIMEOUT — таймаут записи (по умолчанию 60s)
	cfg.HTTPWriteTimeout, err = getEnvDuration("ODM_HTTP_WRITE_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, fmt.Errorf("ODM_HTTP_WRITE_TIMEOUT: %w", err)
	}

	// ODM_HTTP_IDLE_TIMEOUT — таймаут простоя (по умолчанию 120s)
	cfg.HTTPIdleTimeout, err = getEnvDuration("ODM_HTTP_IDLE_TIMEOUT", 120*time.Second)
	if err != nil {
		return nil, fmt.Errorf("ODM_HTTP_IDLE_TIMEOUT: %w", err)
	}

	// --- Graceful shutdown ---

	// ODM_SHUTDOWN_TIMEOUT — таймаут graceful shutdown (по умолчанию 5s)
	cfg.ShutdownTimeout, err = getEnvDuration("ODM_SHUTDOWN_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("ODM_SHUTDOWN_TIMEOUT: %w", err)
	}

	// --- OneDrive ---

	// ODM_CLIENT_ID / ODM_CLIENT_SECRET / ODM_REDIRECT_URI —
	// учётные данные OneDrive-приложения (опциональны)
	cfg.ClientID = os.Getenv("ODM_CLIENT_ID")
	cfg.ClientSecret = os.Getenv("ODM_CLIENT_SECRET")
	cfg.RedirectURI = os.Getenv("ODM_REDIRECT_URI")

	// ODM_SCOPES — OAuth2 scopes через пробел (по умолчанию Files.Read offline_access)
	cfg.Scopes = strings.Fields(getEnvDefault("ODM_SCOPES", "Files.Read offline_access"))

	// ODM_AUTH_TIMEOUT — таймаут обмена кода на токены (по умолчанию 10s)
	cfg.AuthTimeout, err = getEnvDuration("ODM_AUTH_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("ODM_AUTH_TIMEOUT: %w", err)
	}

	// ODM_DEMO_MODE — демо-режим листинга облака (по умолчанию true)
	cfg.DemoMode, err = getEnvBool("ODM_DEMO_MODE", true)
	if err != nil {
		return nil, fmt.Errorf("ODM_DEMO_MODE: %w", err)
	}

	// ODM_GRAPH_URL — базовый URL Graph API (по умолчанию стандартный)
	cfg.GraphURL = getEnvDefault("ODM_GRAPH_URL", "")

	// ODM_GRAPH_TIMEOUT — таймаут запросов к Graph (по умолчанию 15s)
	cfg.GraphTimeout, err = getEnvDuration("ODM_GRAPH_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, fmt.Errorf("ODM_GRAPH_TIMEOUT: %w", err)
	}

	return cfg, nil
}

// OAuthConfigured возвращает true, если заданы все учётные данные
// OneDrive-приложения.
func (c *Config) OAuthConfigured() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RedirectURI != ""
}

// SetupLogger настраивает глобальный slog-логгер на основе конфигурации.
func SetupLogger(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// --- Вспомогательные функции ---

// getEnvDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getEnvInt возвращает целочисленное значение переменной окружения или значение по умолчанию.
func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("некорректное целое число: %q", val)
	}
	return n, nil
}

// getEnvDuration возвращает time.Duration из переменной окружения или значение по умолчанию.
func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("некорректная длительность: %q (используйте формат Go: 30s, 1h, 15m)", val)
	}
	return d, nil
}

// getEnvBool возвращает булево значение переменной окружения или значение по умолчанию.
func getEnvBool(key string, defaultVal bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("некорректное булево значение: %q (допустимые: true, false, 1, 0)", val)
	}
	return b, nil
}

// parseLogLevel преобразует строку уровня логирования в slog.Level.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("недопустимый уровень %q, допустимые: debug, info, warn, error", level)
	}
}

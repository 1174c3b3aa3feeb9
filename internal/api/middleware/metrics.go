// metrics.go — Prometheus HTTP метрики OneDrive Manager.
// Регистрирует метрики: odm_http_requests_total, odm_http_request_duration_seconds.
// Нормализация путей предотвращает взрывной рост кардинальности.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP метрики OneDrive Manager
var (
	// httpRequestsTotal — общее количество HTTP-запросов.
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "odm_http_requests_total",
			Help: "Общее количество HTTP-запросов к OneDrive Manager",
		},
		[]string{"method", "path", "status"},
	)

	// httpRequestDuration — гистограмма длительности HTTP-запросов.
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "odm_http_request_duration_seconds",
			Help:    "Длительность HTTP-запросов к OneDrive Manager в секундах",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// MetricsMiddleware возвращает HTTP middleware для сбора Prometheus метрик.
// Записывает количество запросов и длительность для каждого endpoint.
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Нормализуем путь для лейблов метрик
			// (заменяем идентификаторы на {id} для предотвращения кардинальности)
			normalizedPath := normalizePath(r.URL.Path)

			wrapped := newMetricsResponseWriter(w)
			next.ServeHTTP(wrapped, r)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(wrapped.statusCode)

			httpRequestsTotal.WithLabelValues(r.Method, normalizedPath, status).Inc()
			httpRequestDuration.WithLabelValues(r.Method, normalizedPath).Observe(duration)
		})
	}
}

// metricsResponseWriter — обёртка для перехвата статус-кода.
type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newMetricsResponseWriter(w http.ResponseWriter) *metricsResponseWriter {
	return &metricsResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *metricsResponseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Unwrap позволяет http.ResponseController получить доступ к оригинальному ResponseWriter.
func (rw *metricsResponseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// normalizePath заменяет идентификаторы аккаунтов и файлов на {id}/{fileId}
// для предотвращения взрывного роста кардинальности метрик.
// /api/accounts/12345/files/file1 → /api/accounts/{id}/files/{fileId}
func normalizePath(path string) string {
	// Статические пути — возвращаем как есть
	switch path {
	case "/api/accounts", "/auth/callback",
		"/health/live", "/health/ready", "/metrics":
		return path
	}

	const accountsPrefix = "/api/accounts/"
	if !strings.HasPrefix(path, accountsPrefix) {
		// Статика и неизвестные маршруты — одним лейблом
		return "/other"
	}

	segments := strings.Split(strings.TrimPrefix(path, accountsPrefix), "/")
	switch {
	case len(segments) == 1:
		return "/api/accounts/{id}"
	case segments[1] == "files" && len(segments) == 2:
		return "/api/accounts/{id}/files"
	case segments[1] == "files" && len(segments) == 3:
		return "/api/accounts/{id}/files/{fileId}"
	case segments[1] == "files" && len(segments) == 4 && segments[3] == "download":
		return "/api/accounts/{id}/files/{fileId}/download"
	case segments[1] == "onedrive" && len(segments) == 3 && segments[2] == "auth":
		return "/api/accounts/{id}/onedrive/auth"
	case segments[1] == "onedrive" && len(segments) == 3 && segments[2] == "files":
		return "/api/accounts/{id}/onedrive/files"
	}

	return "/other"
}

// health.go — обработчики health endpoints OneDrive Manager.
// /health/live — liveness probe (процесс жив)
// /health/ready — readiness probe (настроен ли OneDrive)
// /metrics — Prometheus метрики
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Dmitrijj78/onedrive-manager/internal/config"
)

// HealthHandler — обработчик health endpoints.
type HealthHandler struct {
	// oauthConfigured — заданы ли учётные данные OneDrive-приложения.
	// Их отсутствие не мешает работе CRUD API, поэтому readiness
	// сообщает degraded, а не fail.
	oauthConfigured bool
	promHandler     http.Handler
}

// NewHealthHandler создаёт обработчик health endpoints.
func NewHealthHandler(oauthConfigured bool) *HealthHandler {
	return &HealthHandler{
		oauthConfigured: oauthConfigured,
		promHandler:     promhttp.Handler(),
	}
}

// healthCheckResult — результат проверки одной зависимости.
type healthCheckResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// healthLiveResponse — ответ liveness probe.
type healthLiveResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
	Service   string `json:"service"`
}

// healthReadyResponse — ответ readiness probe.
type healthReadyResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
	Service   string `json:"service"`
	Checks    struct {
		OneDrive healthCheckResult `json:"onedrive"`
	} `json:"checks"`
}

// HealthLive — liveness probe. Возвращает 200, если процесс жив.
func (h *HealthHandler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	resp := healthLiveResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   config.Version,
		Service:   "onedrive-manager",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

// HealthReady — readiness probe. Внешних зависимостей у сервиса нет
// (все хранилища в памяти), проверяется только конфигурация OneDrive.
func (h *HealthHandler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	resp := healthReadyResponse{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   config.Version,
		Service:   "onedrive-manager",
	}

	if h.oauthConfigured {
		resp.Checks.OneDrive = healthCheckResult{Status: "ok"}
		resp.Status = "ok"
	} else {
		resp.Checks.OneDrive = healthCheckResult{
			Status:  "degraded",
			Message: "учётные данные OneDrive не заданы",
		}
		resp.Status = "degraded"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

// GetMetrics — Prometheus метрики.
func (h *HealthHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	h.promHandler.ServeHTTP(w, r)
}

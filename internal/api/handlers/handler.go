// handler.go — основной обработчик API OneDrive Manager.
// Объединяет обработчики аккаунтов, файлов, облака и health endpoints,
// делегируя бизнес-логику в сервисный слой.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Dmitrijj78/onedrive-manager/internal/service"
)

// APIHandler — основной обработчик API OneDrive Manager.
type APIHandler struct {
	accounts *service.AccountService
	cloud    *service.CloudService
	health   *HealthHandler
	logger   *slog.Logger
}

// NewAPIHandler создаёт основной обработчик API.
func NewAPIHandler(
	accounts *service.AccountService,
	cloud *service.CloudService,
	health *HealthHandler,
	logger *slog.Logger,
) *APIHandler {
	return &APIHandler{
		accounts: accounts,
		cloud:    cloud,
		health:   health,
		logger:   logger.With(slog.String("component", "api_handler")),
	}
}

// --- Health endpoints (делегируются в HealthHandler) ---

// HealthLive — liveness probe.
func (h *APIHandler) HealthLive(w http.ResponseWriter, r *http.Request) {
	h.health.HealthLive(w, r)
}

// HealthReady — readiness probe.
func (h *APIHandler) HealthReady(w http.ResponseWriter, r *http.Request) {
	h.health.HealthReady(w, r)
}

// GetMetrics — Prometheus метрики.
func (h *APIHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	h.health.GetMetrics(w, r)
}

// --- Вспомогательные функции ---

// writeJSON записывает JSON-ответ с указанным статусом.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// messageResponse — тело ответа-подтверждения {"message": "..."}.
type messageResponse struct {
	Message string `json:"message"`
}

// accountIDParam извлекает числовой идентификатор аккаунта из URL.
// Нечисловое значение возвращается как 0 — несуществующий id,
// дальнейшая обработка даёт те же ответы, что и для неизвестного
// аккаунта (пустой список, 404, 401 — в зависимости от endpoint).
func accountIDParam(r *http.Request) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

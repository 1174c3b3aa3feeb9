// cloud.go — обработчики OAuth2-привязки аккаунта к OneDrive
// и листинга облачных файлов.
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	apierrors "github.com/Dmitrijj78/onedrive-manager/internal/api/errors"
	"github.com/Dmitrijj78/onedrive-manager/internal/service"
)

// authURLResponse — тело ответа GET .../onedrive/auth.
type authURLResponse struct {
	AuthURL string `json:"authUrl"`
}

// OneDriveAuth — GET /api/accounts/{accountID}/onedrive/auth.
// Возвращает URL авторизации провайдера с state = id аккаунта.
// 500, если учётные данные приложения не настроены.
func (h *APIHandler) OneDriveAuth(w http.ResponseWriter, r *http.Request) {
	accountID := accountIDParam(r)

	authURL, err := h.cloud.AuthURL(accountID)
	if err != nil {
		if errors.Is(err, service.ErrNotConfigured) {
			h.logger.Error("Учётные данные OneDrive не настроены")
			apierrors.InternalError(w, "OneDrive не настроен: обратитесь к администратору")
			return
		}
		h.logger.Error("Ошибка построения URL авторизации", "account_id", accountID, "error", err)
		apierrors.InternalError(w, "Внутренняя ошибка сервера")
		return
	}

	writeJSON(w, http.StatusOK, authURLResponse{AuthURL: authURL})
}

// OneDriveCallback — GET /auth/callback?code=...&state=...
// Обменивает authorization code на токены и сохраняет облачную сессию.
// При успехе — redirect на /?auth_success=true&account_id=N;
// при любой ошибке — redirect на /?auth_error=true, детали остаются
// только в серверном логе.
func (h *APIHandler) OneDriveCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")

	accountID, err := h.cloud.HandleCallback(r.Context(), code, state)
	if err != nil {
		h.logger.Error("Ошибка обмена кода на токены", "state", state, "error", err)
		http.Redirect(w, r, "/?auth_error=true", http.StatusFound)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/?auth_success=true&account_id=%d", accountID), http.StatusFound)
}

// OneDriveFiles — GET /api/accounts/{accountID}/onedrive/files.
// 401 с причиной, если аккаунт не авторизован или токен истёк;
// 500 при ошибке провайдера.
func (h *APIHandler) OneDriveFiles(w http.ResponseWriter, r *http.Request) {
	accountID := accountIDParam(r)

	files, err := h.cloud.ListFiles(r.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotConnected):
			apierrors.Unauthorized(w, "Аккаунт не подключен к OneDrive")
		case errors.Is(err, service.ErrTokenExpired):
			apierrors.Unauthorized(w, "Срок действия токена истёк, требуется повторная авторизация")
		default:
			h.logger.Error("Ошибка получения файлов OneDrive", "account_id", accountID, "error", err)
			apierrors.InternalError(w, "Ошибка получения файлов из OneDrive")
		}
		return
	}

	writeJSON(w, http.StatusOK, files)
}

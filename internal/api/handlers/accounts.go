// accounts.go — обработчики /api/accounts: список, создание, удаление.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apierrors "github.com/Dmitrijj78/onedrive-manager/internal/api/errors"
	"github.com/Dmitrijj78/onedrive-manager/internal/service"
)

// createAccountRequest — тело POST /api/accounts.
type createAccountRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ListAccounts — GET /api/accounts.
// Возвращает все аккаунты в порядке добавления.
func (h *APIHandler) ListAccounts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.accounts.List())
}

// CreateAccount — POST /api/accounts.
// 201 с созданным аккаунтом, 400 при отсутствии name или email.
func (h *APIHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.ValidationError(w, "Некорректный JSON: "+err.Error())
		return
	}

	account, err := h.accounts.Create(req.Name, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			apierrors.ValidationError(w, "Имя и email обязательны")
			return
		}
		h.logger.Error("Ошибка создания аккаунта", "error", err)
		apierrors.InternalError(w, "Внутренняя ошибка сервера")
		return
	}

	writeJSON(w, http.StatusCreated, account)
}

// DeleteAccount — DELETE /api/accounts/{accountID}.
// Каскадно удаляет файловую коллекцию и облачную сессию аккаунта.
func (h *APIHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID := accountIDParam(r)

	if err := h.accounts.Delete(accountID); err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			apierrors.NotFound(w, "Аккаунт не найден")
			return
		}
		h.logger.Error("Ошибка удаления аккаунта", "account_id", accountID, "error", err)
		apierrors.InternalError(w, "Внутренняя ошибка сервера")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Аккаунт успешно удален"})
}

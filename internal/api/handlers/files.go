// files.go — обработчики локального файлового реестра:
// список файлов аккаунта, удаление, плейсхолдер скачивания.
package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/Dmitrijj78/onedrive-manager/internal/api/errors"
	"github.com/Dmitrijj78/onedrive-manager/internal/service"
)

// downloadResponse — тело ответа плейсхолдера скачивания.
type downloadResponse struct {
	Message string `json:"message"`
	FileID  string `json:"fileId"`
	URL     string `json:"url"`
}

// ListAccountFiles — GET /api/accounts/{accountID}/files.
// Для аккаунта без файлов — пустой список, не ошибка.
func (h *APIHandler) ListAccountFiles(w http.ResponseWriter, r *http.Request) {
	accountID := accountIDParam(r)
	writeJSON(w, http.StatusOK, h.accounts.ListFiles(accountID))
}

// DeleteAccountFile — DELETE /api/accounts/{accountID}/files/{fileID}.
// 404, если аккаунт не отслеживается или файла нет.
func (h *APIHandler) DeleteAccountFile(w http.ResponseWriter, r *http.Request) {
	accountID := accountIDParam(r)
	fileID := chi.URLParam(r, "fileID")

	if err := h.accounts.DeleteFile(accountID, fileID); err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			apierrors.NotFound(w, "Аккаунт не найден")
		case errors.Is(err, service.ErrFileNotFound):
			apierrors.NotFound(w, "Файл не найден")
		default:
			h.logger.Error("Ошибка удаления файла",
				"account_id", accountID, "file_id", fileID, "error", err)
			apierrors.InternalError(w, "Внутренняя ошибка сервера")
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Файл успешно удален"})
}

// DownloadAccountFile — GET /api/accounts/{accountID}/files/{fileID}/download.
// Плейсхолдер: реальной передачи файла нет, возвращается фиктивный URL.
func (h *APIHandler) DownloadAccountFile(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "fileID")

	writeJSON(w, http.StatusOK, downloadResponse{
		Message: "Файл успешно скачан",
		FileID:  fileID,
		URL:     "https://example.com/files/" + fileID,
	})
}

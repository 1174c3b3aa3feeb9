// recover.go — middleware перехвата паник в обработчиках.
// Непойманная паника логируется и превращается в 500 JSON,
// как raw-исключение она клиенту не уходит.
package middleware

import (
	"log/slog"
	"net/http"

	apierrors "github.com/Dmitrijj78/onedrive-manager/internal/api/errors"
)

// Recovery возвращает middleware, перехватывающий паники обработчиков.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("Паника в обработчике",
						slog.Any("panic", rec),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)
					apierrors.InternalError(w, "Внутренняя ошибка сервера")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

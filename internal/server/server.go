// Пакет server — HTTP-сервер OneDrive Manager с graceful shutdown.
// Маршрутизация через chi; неизвестные маршруты и паники отдаются
// клиенту в JSON-формате {"error": "..."}.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/Dmitrijj78/onedrive-manager/internal/api/errors"
	"github.com/Dmitrijj78/onedrive-manager/internal/api/handlers"
	"github.com/Dmitrijj78/onedrive-manager/internal/config"
)

// Server — HTTP-сервер OneDrive Manager.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	cfg        *config.Config
}

// NewRouter собирает chi-маршрутизатор со всеми маршрутами приложения.
// middlewares — дополнительные middleware (recovery, logging, metrics),
// применяются в порядке переданного среза.
// staticDir — каталог статики фронтенда (пустая строка — отключено).
func NewRouter(h *handlers.APIHandler, staticDir string, middlewares ...func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	for _, mw := range middlewares {
		router.Use(mw)
	}

	// Health и метрики
	router.Get("/health/live", h.HealthLive)
	router.Get("/health/ready", h.HealthReady)
	router.Get("/metrics", h.GetMetrics)

	// API аккаунтов и файлов
	router.Route("/api/accounts", func(r chi.Router) {
		r.Get("/", h.ListAccounts)
		r.Post("/", h.CreateAccount)

		r.Route("/{accountID}", func(r chi.Router) {
			r.Delete("/", h.DeleteAccount)
			r.Get("/files", h.ListAccountFiles)
			r.Delete("/files/{fileID}", h.DeleteAccountFile)
			r.Get("/files/{fileID}/download", h.DownloadAccountFile)
			r.Get("/onedrive/auth", h.OneDriveAuth)
			r.Get("/onedrive/files", h.OneDriveFiles)
		})
	})

	// Callback OAuth2-провайдера
	router.Get("/auth/callback", h.OneDriveCallback)

	// Статика фронтенда (аналог express.static)
	if staticDir != "" {
		router.Get("/*", staticHandler(staticDir))
	}

	// Неизвестные маршруты и методы — JSON, как и остальной API
	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		apierrors.NotFound(w, "Маршрут не найден")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		apierrors.WriteError(w, http.StatusMethodNotAllowed, "Метод не поддерживается")
	})

	return router
}

// staticHandler отдаёт файлы фронтенда из dir.
// Отсутствующие файлы получают JSON 404 в формате API,
// а не текстовый 404 файлового сервера.
func staticHandler(dir string) http.HandlerFunc {
	fs := http.FileServer(http.Dir(dir))

	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			full := filepath.Join(dir, filepath.Clean(r.URL.Path))
			info, err := os.Stat(full)
			if err != nil || info.IsDir() {
				apierrors.NotFound(w, "Маршрут не найден")
				return
			}
		}
		fs.ServeHTTP(w, r)
	}
}

// New создаёт HTTP-сервер с переданным маршрутизатором.
func New(cfg *config.Config, logger *slog.Logger, router http.Handler) *Server {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &Server{
		httpServer: srv,
		logger:     logger,
		cfg:        cfg,
	}
}

// Run запускает сервер и ожидает сигнала завершения (SIGINT, SIGTERM).
// При получении сигнала выполняется graceful shutdown.
func (s *Server) Run() error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("HTTP-сервер запущен",
			slog.String("addr", s.httpServer.Addr),
		)

		err := s.httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		s.logger.Info("Получен сигнал завершения", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ошибка HTTP-сервера: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.logger.Info("Выполняется graceful shutdown...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка при graceful shutdown: %w", err)
	}

	s.logger.Info("HTTP-сервер остановлен")
	return nil
}

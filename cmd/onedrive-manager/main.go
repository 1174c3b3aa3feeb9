// main.go — точка входа OneDrive Manager.
// Демо-приложение: аккаунты облачных хранилищ, локальный файловый
// реестр и привязка к OneDrive через OAuth2 authorization code flow.
// Всё состояние — в памяти процесса, базы данных нет.
package main

import (
	"log"
	"log/slog"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"

	"github.com/Dmitrijj78/onedrive-manager/internal/api/handlers"
	"github.com/Dmitrijj78/onedrive-manager/internal/api/middleware"
	"github.com/Dmitrijj78/onedrive-manager/internal/config"
	"github.com/Dmitrijj78/onedrive-manager/internal/onedrive"
	"github.com/Dmitrijj78/onedrive-manager/internal/repository"
	"github.com/Dmitrijj78/onedrive-manager/internal/server"
	"github.com/Dmitrijj78/onedrive-manager/internal/service"
)

func main() {
	// 1. Загрузка конфигурации из переменных окружения (+ .env)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// 2. Настройка логгера
	logger := config.SetupLogger(cfg)
	logger.Info("OneDrive Manager запускается",
		slog.String("version", config.Version),
		slog.Int("port", cfg.Port),
		slog.Bool("demo_mode", cfg.DemoMode),
		slog.Bool("onedrive_configured", cfg.OAuthConfigured()),
	)

	// 3. In-memory хранилища с посевными демо-данными
	accountStore := repository.NewAccountStore()
	accountStore.Seed(repository.DemoAccounts())

	fileStore := repository.NewFileStore()
	fileStore.Seed(repository.DemoFiles())

	sessionStore := repository.NewSessionStore()

	// 4. Источник облачного листинга: демо-набор или Microsoft Graph
	var drive onedrive.Lister
	if cfg.DemoMode {
		drive = onedrive.NewDemoDrive()
	} else {
		drive = onedrive.NewGraphClient(cfg.GraphURL, cfg.GraphTimeout, logger)
	}

	// 5. OAuth2-конфигурация провайдера
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Scopes:       cfg.Scopes,
		Endpoint:     microsoft.AzureADEndpoint("consumers"),
	}

	// 6. Сервисный слой
	accountService := service.NewAccountService(accountStore, fileStore, sessionStore, logger)
	cloudService := service.NewCloudService(oauthCfg, sessionStore, drive, cfg.AuthTimeout, logger)

	// 7. Обработчики API
	healthHandler := handlers.NewHealthHandler(cfg.OAuthConfigured())
	apiHandler := handlers.NewAPIHandler(accountService, cloudService, healthHandler, logger)

	// 8. Маршрутизатор и HTTP-сервер
	router := server.NewRouter(apiHandler, cfg.StaticDir,
		middleware.Recovery(logger),
		middleware.RequestLogger(logger),
		middleware.MetricsMiddleware(),
	)
	srv := server.New(cfg, logger, router)

	// 9. Запуск сервера (блокирующий вызов с graceful shutdown)
	if err := srv.Run(); err != nil {
		logger.Error("Ошибка сервера", slog.String("error", err.Error()))
		log.Fatalf("Сервер завершился с ошибкой: %v", err)
	}

	logger.Info("OneDrive Manager остановлен")
}

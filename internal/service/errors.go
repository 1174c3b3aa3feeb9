// errors.go — ошибки бизнес-логики сервисного слоя.
// Все ошибки переводятся в HTTP-статусы на границе (api/handlers),
// наружу как raw-паники ничего не уходит.
package service

import "errors"

var (
	// ErrAccountNotFound — аккаунт с указанным id не существует.
	ErrAccountNotFound = errors.New("аккаунт не найден")
	// ErrFileNotFound — файл с указанным id не существует в коллекции аккаунта.
	ErrFileNotFound = errors.New("файл не найден")
	// ErrValidation — ошибка валидации входных данных.
	ErrValidation = errors.New("ошибка валидации")
	// ErrNotConfigured — не заданы учётные данные OneDrive-приложения
	// (client id / client secret / redirect URI).
	ErrNotConfigured = errors.New("OneDrive не настроен: отсутствуют учётные данные приложения")
	// ErrNotConnected — облачной сессии нет: аккаунт не проходил авторизацию.
	ErrNotConnected = errors.New("аккаунт не подключен к OneDrive")
	// ErrTokenExpired — облачная сессия есть, но срок действия токена истёк.
	ErrTokenExpired = errors.New("срок действия токена истёк, требуется повторная авторизация")
	// ErrProvider — провайдер отклонил запрос или недоступен.
	ErrProvider = errors.New("ошибка провайдера OneDrive")
)

package model

import "time"

// SessionState — состояние облачной сессии аккаунта.
// Отсутствие сессии в хранилище соответствует StateUnauthorized.
type SessionState string

// Состояния облачной сессии.
const (
	// StateUnauthorized — сессии нет, обмен кода на токены не выполнялся.
	StateUnauthorized SessionState = "unauthorized"
	// StateAuthorized — сессия есть и access token ещё действует.
	StateAuthorized SessionState = "authorized"
	// StateExpired — сессия есть, но срок действия access token истёк.
	// Истёкшая сессия остаётся в хранилище и обнаруживается при чтении.
	StateExpired SessionState = "expired"
)

// CloudSession — набор OAuth2-токенов, подтверждающий привязку аккаунта
// к облачному провайдеру. Создаётся только после успешного обмена
// authorization code на токены. Не обновляется автоматически:
// повторная авторизация перезаписывает сессию целиком.
type CloudSession struct {
	// AccountID — идентификатор аккаунта-владельца.
	AccountID int64
	// AccessToken — access token провайдера.
	AccessToken string
	// RefreshToken — refresh token провайдера (не используется для
	// автоматического обновления, хранится для полноты).
	RefreshToken string
	// ExpiresAt — абсолютное время истечения access token.
	ExpiresAt time.Time
}

// State возвращает состояние сессии на момент now.
// nil-сессия — StateUnauthorized.
func (s *CloudSession) State(now time.Time) SessionState {
	if s == nil {
		return StateUnauthorized
	}
	if !now.Before(s.ExpiresAt) {
		return StateExpired
	}
	return StateAuthorized
}

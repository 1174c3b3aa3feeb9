// cloud.go — авторизация аккаунта в OneDrive (authorization code flow)
// и листинг облачных файлов с проверкой сессии.
//
// Состояния аккаунта: unauthorized → authorization requested →
// token exchange pending → authorized → expired → authorization
// requested (повторно). Refresh token автоматически не используется:
// истёкшая сессия требует повторного прохождения flow с начала.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/oauth2"

	"github.com/Dmitrijj78/onedrive-manager/internal/domain/model"
	"github.com/Dmitrijj78/onedrive-manager/internal/onedrive"
	"github.com/Dmitrijj78/onedrive-manager/internal/repository"
)

// defaultTokenLifetime — срок действия токена, если провайдер
// не вернул expires_in.
const defaultTokenLifetime = time.Hour

// CloudService — авторизация в OneDrive и листинг облачных файлов.
type CloudService struct {
	oauth    *oauth2.Config
	sessions *repository.SessionStore
	drive    onedrive.Lister
	// exchangeTimeout — ограничение на обмен кода на токены.
	// Таймаут наружу выглядит так же, как отказ провайдера.
	exchangeTimeout time.Duration
	// now — источник времени, подменяется в тестах.
	now    func() time.Time
	logger *slog.Logger
}

// NewCloudService создаёт облачный сервис.
func NewCloudService(
	oauth *oauth2.Config,
	sessions *repository.SessionStore,
	drive onedrive.Lister,
	exchangeTimeout time.Duration,
	logger *slog.Logger,
) *CloudService {
	return &CloudService{
		oauth:           oauth,
		sessions:        sessions,
		drive:           drive,
		exchangeTimeout: exchangeTimeout,
		now:             time.Now,
		logger:          logger.With(slog.String("component", "cloud_service")),
	}
}

// AuthURL строит URL авторизации провайдера для аккаунта accountID.
// Идентификатор аккаунта передаётся как opaque state parameter и
// возвращается провайдером в callback для корреляции.
// Сетевых вызовов нет — чистое построение URL.
// ErrNotConfigured — если учётные данные приложения не заданы.
func (s *CloudService) AuthURL(accountID int64) (string, error) {
	if s.oauth.ClientID == "" || s.oauth.ClientSecret == "" || s.oauth.RedirectURL == "" {
		return "", ErrNotConfigured
	}

	state := strconv.FormatInt(accountID, 10)
	return s.oauth.AuthCodeURL(state), nil
}

// HandleCallback обрабатывает callback провайдера: декодирует state
// обратно в идентификатор аккаунта и синхронно обменивает code на токены
// (grant_type=authorization_code, с ограниченным таймаутом).
// При успехе сохраняет сессию и возвращает идентификатор аккаунта.
// При любой ошибке (некорректный state, отказ провайдера, сеть, таймаут)
// возвращает ошибку — retry не выполняется, пользователь начинает flow заново.
func (s *CloudService) HandleCallback(ctx context.Context, code, state string) (int64, error) {
	accountID, err := strconv.ParseInt(state, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: некорректный state %q", ErrProvider, state)
	}
	if code == "" {
		return 0, fmt.Errorf("%w: отсутствует authorization code", ErrProvider)
	}

	ctx, cancel := context.WithTimeout(ctx, s.exchangeTimeout)
	defer cancel()

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return 0, fmt.Errorf("%w: обмен кода на токены: %v", ErrProvider, err)
	}

	expiresAt := token.Expiry
	if expiresAt.IsZero() {
		expiresAt = s.now().Add(defaultTokenLifetime)
	}

	s.sessions.Save(&model.CloudSession{
		AccountID:    accountID,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    expiresAt,
	})

	s.logger.Info("Аккаунт авторизован в OneDrive",
		slog.Int64("account_id", accountID),
		slog.Time("expires_at", expiresAt),
	)
	return accountID, nil
}

// ListFiles возвращает листинг облачных файлов аккаунта.
// Сначала проверяется сессия: её отсутствие — ErrNotConnected,
// истёкший токен — ErrTokenExpired (сессия остаётся в хранилище
// и будет перезаписана при повторной авторизации).
// Ошибки источника листинга транслируются в ErrProvider.
func (s *CloudService) ListFiles(ctx context.Context, accountID int64) ([]*model.CloudFile, error) {
	session := s.sessions.Get(accountID)

	switch session.State(s.now()) {
	case model.StateUnauthorized:
		return nil, ErrNotConnected
	case model.StateExpired:
		s.logger.Debug("Токен аккаунта истёк",
			slog.Int64("account_id", accountID),
			slog.Time("expires_at", session.ExpiresAt),
		)
		return nil, ErrTokenExpired
	}

	files, err := s.drive.ListChildren(ctx, session.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	return files, nil
}

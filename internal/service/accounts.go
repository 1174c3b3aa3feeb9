// accounts.go — сервис аккаунтов и локального файлового реестра.
// Валидация входных данных и каскадное удаление связанных данных.
package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dmitrijj78/onedrive-manager/internal/domain/model"
	"github.com/Dmitrijj78/onedrive-manager/internal/repository"
)

// AccountService — бизнес-логика аккаунтов.
type AccountService struct {
	accounts *repository.AccountStore
	files    *repository.FileStore
	sessions *repository.SessionStore
	logger   *slog.Logger
}

// NewAccountService создаёт сервис аккаунтов.
func NewAccountService(
	accounts *repository.AccountStore,
	files *repository.FileStore,
	sessions *repository.SessionStore,
	logger *slog.Logger,
) *AccountService {
	return &AccountService{
		accounts: accounts,
		files:    files,
		sessions: sessions,
		logger:   logger.With(slog.String("component", "account_service")),
	}
}

// List возвращает все аккаунты в порядке добавления.
func (s *AccountService) List() []*model.Account {
	return s.accounts.List()
}

// Create создаёт аккаунт. Имя и email обязательны:
// при пустом значении возвращается ErrValidation, хранилище не изменяется.
func (s *AccountService) Create(name, email string) (*model.Account, error) {
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: имя и email обязательны", ErrValidation)
	}

	account := s.accounts.Create(name, email)
	s.logger.Info("Аккаунт создан",
		slog.Int64("account_id", account.ID),
		slog.String("name", account.Name),
	)
	return account, nil
}

// Delete удаляет аккаунт и каскадно — его файловую коллекцию
// и облачную сессию. ErrAccountNotFound для неизвестного id.
func (s *AccountService) Delete(id int64) error {
	if err := s.accounts.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrAccountNotFound, id)
		}
		return err
	}

	s.files.DeleteAccount(id)
	s.sessions.Delete(id)

	s.logger.Info("Аккаунт удалён", slog.Int64("account_id", id))
	return nil
}

// ListFiles возвращает файлы аккаунта.
// Для аккаунта без файлов — пустой срез, не ошибка.
func (s *AccountService) ListFiles(accountID int64) []*model.File {
	return s.files.ListByAccount(accountID)
}

// DeleteFile удаляет файл из коллекции аккаунта.
// ErrAccountNotFound — если аккаунт не отслеживается в реестре,
// ErrFileNotFound — если файла с таким id в коллекции нет.
func (s *AccountService) DeleteFile(accountID int64, fileID string) error {
	if err := s.files.Delete(accountID, fileID); err != nil {
		switch {
		case errors.Is(err, repository.ErrAccountNotTracked):
			return fmt.Errorf("%w: id %d", ErrAccountNotFound, accountID)
		case errors.Is(err, repository.ErrNotFound):
			return fmt.Errorf("%w: %s", ErrFileNotFound, fileID)
		}
		return err
	}

	s.logger.Info("Файл удалён",
		slog.Int64("account_id", accountID),
		slog.String("file_id", fileID),
	)
	return nil
}

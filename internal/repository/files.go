// files.go — in-memory файловый реестр: accountID → упорядоченный
// список файловых записей (демо-данные).
package repository

import (
	"sync"

	"github.com/Dmitrijj78/onedrive-manager/internal/domain/model"
)

// FileStore — файловый реестр по аккаунтам.
type FileStore struct {
	mu    sync.RWMutex
	files map[int64][]*model.File
}

// NewFileStore создаёт пустой файловый реестр.
func NewFileStore() *FileStore {
	return &FileStore{
		files: make(map[int64][]*model.File),
	}
}

// Seed заполняет реестр начальными данными. Заменяет текущее содержимое.
func (s *FileStore) Seed(files map[int64][]*model.File) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files = make(map[int64][]*model.File, len(files))
	for accountID, list := range files {
		copied := make([]*model.File, 0, len(list))
		for _, f := range list {
			c := *f
			copied = append(copied, &c)
		}
		s.files[accountID] = copied
	}
}

// ListByAccount возвращает файлы аккаунта в порядке добавления.
// Для неотслеживаемого аккаунта — пустой срез, не ошибка.
func (s *FileStore) ListByAccount(accountID int64) []*model.File {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.files[accountID]
	result := make([]*model.File, 0, len(list))
	for _, f := range list {
		copied := *f
		result = append(result, &copied)
	}
	return result
}

// Delete удаляет файл fileID из коллекции аккаунта accountID.
// ErrAccountNotTracked — если аккаунт не отслеживается,
// ErrNotFound — если файла с таким id в коллекции нет;
// реестр в обоих случаях не изменяется.
func (s *FileStore) Delete(accountID int64, fileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.files[accountID]
	if !ok {
		return ErrAccountNotTracked
	}
	for i, f := range list {
		if f.ID == fileID {
			s.files[accountID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// DeleteAccount удаляет всю файловую коллекцию аккаунта
// (каскад при удалении аккаунта). Отсутствие коллекции — не ошибка.
func (s *FileStore) DeleteAccount(accountID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.files, accountID)
}

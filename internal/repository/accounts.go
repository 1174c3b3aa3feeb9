// accounts.go — in-memory хранилище аккаунтов.
// Аккаунты хранятся в срезе в порядке добавления; идентификаторы
// уникальны в рамках жизни процесса.
package repository

import (
	"sync"
	"time"

	"github.com/Dmitrijj78/onedrive-manager/internal/domain/model"
)

// AccountStore — упорядоченное in-memory хранилище аккаунтов.
type AccountStore struct {
	mu       sync.RWMutex
	accounts []*model.Account
	// lastID — последний выданный идентификатор, для гарантии
	// строгого роста при создании в пределах одной миллисекунды.
	lastID int64
}

// NewAccountStore создаёт пустое хранилище аккаунтов.
func NewAccountStore() *AccountStore {
	return &AccountStore{}
}

// Seed заполняет хранилище начальными аккаунтами (демо-данные при старте).
// Заменяет текущее содержимое. lastID сдвигается до максимального id,
// чтобы новые аккаунты не конфликтовали с посевными.
func (s *AccountStore) Seed(accounts []*model.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = make([]*model.Account, 0, len(accounts))
	for _, a := range accounts {
		copied := *a
		s.accounts = append(s.accounts, &copied)
		if a.ID > s.lastID {
			s.lastID = a.ID
		}
	}
}

// List возвращает все аккаунты в порядке добавления.
// Возвращаются копии — изменения вызывающего кода не затрагивают хранилище.
func (s *AccountStore) List() []*model.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		copied := *a
		result = append(result, &copied)
	}
	return result
}

// Get возвращает аккаунт по id или ErrNotFound.
func (s *AccountStore) Get(id int64) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if a.ID == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// Create добавляет аккаунт с новым уникальным id и возвращает его.
// Валидация полей — обязанность сервисного слоя.
// Идентификатор — Unix-время в миллисекундах (как Date.now());
// при создании нескольких аккаунтов в одну миллисекунду id
// увеличивается на единицу, сохраняя строгий рост.
func (s *AccountStore) Create(name, email string) *model.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	account := &model.Account{
		ID:    id,
		Name:  name,
		Email: email,
	}
	s.accounts = append(s.accounts, account)

	copied := *account
	return &copied
}

// Delete удаляет аккаунт по id.
// Возвращает ErrNotFound, если аккаунт не существует; хранилище
// при этом не изменяется.
func (s *AccountStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.accounts {
		if a.ID == id {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

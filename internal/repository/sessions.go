// sessions.go — in-memory хранилище облачных сессий:
// accountID → набор OAuth2-токенов.
package repository

import (
	"sync"

	"github.com/Dmitrijj78/onedrive-manager/internal/domain/model"
)

// SessionStore — хранилище облачных сессий по аккаунтам.
// Записывается только после успешного обмена кода на токены.
// Истечение сессии здесь не проверяется — это делает сервисный слой
// при чтении; истёкшая сессия остаётся в хранилище до перезаписи.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*model.CloudSession
}

// NewSessionStore создаёт пустое хранилище сессий.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*model.CloudSession),
	}
}

// Get возвращает сессию аккаунта или nil, если её нет.
func (s *SessionStore) Get(accountID int64) *model.CloudSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[accountID]
	if !ok {
		return nil
	}
	copied := *session
	return &copied
}

// Save сохраняет сессию, перезаписывая существующую
// (повторная авторизация заменяет токены целиком).
func (s *SessionStore) Save(session *model.CloudSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *session
	s.sessions[session.AccountID] = &copied
}

// Delete удаляет сессию аккаунта (каскад при удалении аккаунта).
// Отсутствие сессии — не ошибка.
func (s *SessionStore) Delete(accountID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, accountID)
}

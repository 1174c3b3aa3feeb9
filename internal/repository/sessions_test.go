package repository

import (
	"testing"
	"time"

	"github.com/Dmitrijj78/onedrive-manager/internal/domain/model"
)

// TestSessionStoreGetAbsent — отсутствующая сессия это nil, не ошибка.
func TestSessionStoreGetAbsent(t *testing.T) {
	store := NewSessionStore()

	if got := store.Get(1); got != nil {
		t.Errorf("Get(1) = %v, ожидался nil", got)
	}
}

// TestSessionStoreSaveGet проверяет сохранение и копирующую семантику чтения.
func TestSessionStoreSaveGet(t *testing.T) {
	store := NewSessionStore()
	expires := time.Now().Add(time.Hour)
	store.Save(&model.CloudSession{
		AccountID:    1,
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresAt:    expires,
	})

	got := store.Get(1)
	if got == nil {
		t.Fatal("Get(1) вернул nil после Save")
	}
	if got.AccessToken != "access-1" || got.RefreshToken != "refresh-1" {
		t.Errorf("токены не совпадают: %+v", got)
	}
	if !got.ExpiresAt.Equal(expires) {
		t.Errorf("ExpiresAt = %v, ожидалось %v", got.ExpiresAt, expires)
	}

	// Мутация копии не должна затронуть хранилище
	got.AccessToken = "испорчен"
	if again := store.Get(1); again.AccessToken != "access-1" {
		t.Error("Get возвращает ссылку на внутреннее состояние, а не копию")
	}
}

// TestSessionStoreOverwrite — повторная авторизация заменяет токены целиком.
func TestSessionStoreOverwrite(t *testing.T) {
	store := NewSessionStore()
	store.Save(&model.CloudSession{AccountID: 1, AccessToken: "старый"})
	store.Save(&model.CloudSession{AccountID: 1, AccessToken: "новый"})

	if got := store.Get(1); got.AccessToken != "новый" {
		t.Errorf("AccessToken = %q, ожидался \"новый\"", got.AccessToken)
	}
}

// TestSessionStoreDelete — удаление существующей и отсутствующей сессии.
func TestSessionStoreDelete(t *testing.T) {
	store := NewSessionStore()
	store.Save(&model.CloudSession{AccountID: 1, AccessToken: "access-1"})

	store.Delete(1)
	if got := store.Get(1); got != nil {
		t.Errorf("после Delete сессия осталась: %v", got)
	}
	// Повторное удаление — не паника
	store.Delete(1)
}

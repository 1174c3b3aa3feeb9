package service

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Dmitrijj78/onedrive-manager/internal/domain/model"
	"github.com/Dmitrijj78/onedrive-manager/internal/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAccountService() (*AccountService, *repository.AccountStore, *repository.FileStore, *repository.SessionStore) {
	accounts := repository.NewAccountStore()
	files := repository.NewFileStore()
	sessions := repository.NewSessionStore()
	accounts.Seed(repository.DemoAccounts())
	files.Seed(repository.DemoFiles())
	return NewAccountService(accounts, files, sessions, testLogger()), accounts, files, sessions
}

// TestAccountServiceCreate проверяет создание и валидацию обязательных полей.
func TestAccountServiceCreate(t *testing.T) {
	svc, accounts, _, _ := newAccountService()

	account, err := svc.Create("Новый аккаунт", "new@example.com")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if account.Name != "Новый аккаунт" || account.Email != "new@example.com" {
		t.Errorf("создан аккаунт %+v", account)
	}
	if len(accounts.List()) != 3 {
		t.Errorf("в хранилище %d аккаунтов, ожидалось 3", len(accounts.List()))
	}

	cases := []struct {
		name, email string
	}{
		{"", "a@example.com"},
		{"Имя", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Create(tc.name, tc.email); !errors.Is(err, ErrValidation) {
			t.Errorf("Create(%q, %q) = %v, ожидался ErrValidation", tc.name, tc.email, err)
		}
	}
	// Ошибочные вызовы не изменили хранилище
	if len(accounts.List()) != 3 {
		t.Errorf("в хранилище %d аккаунтов после ошибок валидации", len(accounts.List()))
	}
}

// TestAccountServiceDelete проверяет каскадное удаление файлов и сессии.
func TestAccountServiceDelete(t *testing.T) {
	svc, accounts, files, sessions := newAccountService()
	sessions.Save(&model.CloudSession{
		AccountID:   1,
		AccessToken: "access-1",
		ExpiresAt:   time.Now().Add(time.Hour),
	})

	if err := svc.Delete(999); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("Delete(999) = %v, ожидался ErrAccountNotFound", err)
	}

	if err := svc.Delete(1); err != nil {
		t.Fatalf("Delete(1): %v", err)
	}
	if _, err := accounts.Get(1); !errors.Is(err, repository.ErrNotFound) {
		t.Error("аккаунт 1 остался в хранилище")
	}
	if got := len(files.ListByAccount(1)); got != 0 {
		t.Errorf("у удалённого аккаунта осталось %d файлов", got)
	}
	if sessions.Get(1) != nil {
		t.Error("сессия удалённого аккаунта осталась в хранилище")
	}
	// Данные второго аккаунта не затронуты
	if got := len(files.ListByAccount(2)); got != 2 {
		t.Errorf("каскад затронул файлы аккаунта 2: осталось %d", got)
	}
}

// TestAccountServiceDeleteFile проверяет различение ошибок
// «аккаунт не найден» и «файл не найден».
func TestAccountServiceDeleteFile(t *testing.T) {
	svc, _, files, _ := newAccountService()

	if err := svc.DeleteFile(999, "file1"); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("DeleteFile(999, file1) = %v, ожидался ErrAccountNotFound", err)
	}
	if err := svc.DeleteFile(1, "нет-такого"); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("DeleteFile(1, нет-такого) = %v, ожидался ErrFileNotFound", err)
	}

	if err := svc.DeleteFile(1, "file1"); err != nil {
		t.Fatalf("DeleteFile(1, file1): %v", err)
	}
	list := files.ListByAccount(1)
	if len(list) != 1 || list[0].ID != "file2" {
		t.Errorf("после удаления осталось %d файлов", len(list))
	}
}

// TestAccountServiceListFiles — листинг для аккаунта без файлов не ошибка.
func TestAccountServiceListFiles(t *testing.T) {
	svc, _, _, _ := newAccountService()

	if got := len(svc.ListFiles(1)); got != 2 {
		t.Errorf("ListFiles(1) вернул %d файлов, ожидалось 2", got)
	}
	empty := svc.ListFiles(999)
	if empty == nil || len(empty) != 0 {
		t.Errorf("ListFiles(999) = %v, ожидался пустой срез", empty)
	}
}

// seed.go — демо-данные, загружаемые при старте процесса.
// В реальном приложении на их месте была бы база данных.
package repository

import (
	"github.com/dustin/go-humanize"

	"github.com/Dmitrijj78/onedrive-manager/internal/domain/model"
)

// DemoAccounts возвращает посевные аккаунты.
func DemoAccounts() []*model.Account {
	return []*model.Account{
		{ID: 1, Name: "Личный аккаунт", Email: "personal@example.com"},
		{ID: 2, Name: "Рабочий аккаунт", Email: "work@example.com"},
	}
}

// DemoFiles возвращает посевной файловый реестр для DemoAccounts.
func DemoFiles() map[int64][]*model.File {
	return map[int64][]*model.File{
		1: {
			{ID: "file1", Name: "Документ1.docx", Size: humanize.Bytes(245_000)},
			{ID: "file2", Name: "Фото.jpg", Size: humanize.Bytes(1_200_000)},
		},
		2: {
			{ID: "file3", Name: "Отчет.xlsx", Size: humanize.Bytes(380_000)},
			{ID: "file4", Name: "Презентация.pptx", Size: humanize.Bytes(2_100_000)},
		},
	}
}

// Пакет onedrive — получение листинга файлов облачного хранилища.
//
// Содержит две реализации Lister: демо-листинг с фиксированным набором
// элементов (режим по умолчанию) и HTTP-клиент Microsoft Graph для
// реального запроса к OneDrive. Выбор реализации — через конфигурацию.
package onedrive

import (
	"context"

	"github.com/Dmitrijj78/onedrive-manager/internal/domain/model"
)

// Lister — источник листинга файлов облака.
// Вызывается только после успешной проверки сессии аккаунта
// (токен существует и не истёк).
type Lister interface {
	// ListChildren возвращает элементы корневой папки диска.
	ListChildren(ctx context.Context, accessToken string) ([]*model.CloudFile, error)
}

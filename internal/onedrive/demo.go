// demo.go — демо-реализация Lister с фиксированным набором элементов.
// Access token не используется: проверка существования и срока действия
// токена выполняется до вызова, в сервисном слое.
package onedrive

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/Dmitrijj78/onedrive-manager/internal/domain/model"
)

// DemoDrive — фиксированный листинг, имитирующий содержимое OneDrive.
type DemoDrive struct {
	items []*model.CloudFile
}

// NewDemoDrive создаёт демо-диск. Идентификаторы элементов генерируются
// один раз при создании и стабильны до рестарта процесса.
func NewDemoDrive() *DemoDrive {
	return &DemoDrive{
		items: []*model.CloudFile{
			{ID: uuid.NewString(), Name: "Документы", IsFolder: true},
			{ID: uuid.NewString(), Name: "Фотографии", IsFolder: true},
			{ID: uuid.NewString(), Name: "Резюме.docx", Size: humanize.Bytes(18_500)},
			{ID: uuid.NewString(), Name: "Заметки.txt", Size: humanize.Bytes(2_300)},
			{ID: uuid.NewString(), Name: "Бюджет.xlsx", Size: humanize.Bytes(54_000)},
		},
	}
}

// ListChildren возвращает копию демо-набора.
func (d *DemoDrive) ListChildren(_ context.Context, _ string) ([]*model.CloudFile, error) {
	result := make([]*model.CloudFile, 0, len(d.items))
	for _, item := range d.items {
		copied := *item
		result = append(result, &copied)
	}
	return result, nil
}

package model

// File — запись локального файлового реестра (демо-данные).
// Принадлежит ровно одному аккаунту.
type File struct {
	// ID — строковый идентификатор файла (например, "file1").
	ID string `json:"id"`
	// Name — имя файла.
	Name string `json:"name"`
	// Size — размер в человекочитаемом формате ("245 kB").
	Size string `json:"size"`
}

// CloudFile — элемент облачного листинга OneDrive.
// В отличие от File явно различает файлы и папки.
type CloudFile struct {
	// ID — идентификатор элемента у провайдера.
	ID string `json:"id"`
	// Name — имя элемента.
	Name string `json:"name"`
	// Size — размер в человекочитаемом формате.
	// Для папок пустая строка и опускается в JSON.
	Size string `json:"size,omitempty"`
	// IsFolder — true для папок.
	IsFolder bool `json:"isFolder"`
}

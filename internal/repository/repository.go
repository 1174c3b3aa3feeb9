// Пакет repository — потокобезопасные in-memory хранилища OneDrive Manager.
//
// Персистентности нет: всё состояние живёт в памяти процесса и теряется
// при рестарте. Хранилища защищены sync.RWMutex, так как net/http
// обрабатывает запросы в параллельных горутинах, а все операции —
// read-modify-write над общими map/slice.
package repository

import "errors"

// Ошибки слоя репозиториев.
var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("запись не найдена")
	// ErrAccountNotTracked — аккаунт не отслеживается в файловом реестре.
	ErrAccountNotTracked = errors.New("аккаунт не отслеживается в реестре")
)

// Пакет model — доменные модели OneDrive Manager.
package model

// Account — локально зарегистрированный аккаунт, представляющий
// подключение к облачному хранилищу.
type Account struct {
	// ID — уникальный числовой идентификатор (генерируется при создании
	// из Unix-времени в миллисекундах, монотонно растёт в рамках процесса).
	ID int64 `json:"id"`
	// Name — отображаемое имя аккаунта.
	Name string `json:"name"`
	// Email — email владельца аккаунта.
	Email string `json:"email"`
}

package security

import "errors"

// Типизированные ошибки аутентификации.
// Обработчики и middleware ветвятся через errors.Is и никогда
// не отдают клиенту внутренние причины (ошибки парсера, детали хранилища).
var (
	// ErrInvalidCredentials : неверная пара логин/пароль, без уточнения какое поле неверно
	ErrInvalidCredentials = errors.New("неверный логин или пароль")

	// ErrTokenMissing : токен не был передан (нет заголовка или cookie)
	ErrTokenMissing = errors.New("токен не передан")

	// ErrTokenMalformed : строка токена не разбирается как токен
	ErrTokenMalformed = errors.New("токен имеет неверный формат")

	// ErrTokenSignatureInvalid : подпись токена не прошла проверку
	ErrTokenSignatureInvalid = errors.New("недействительная подпись токена")

	// ErrTokenExpired : срок действия токена истёк.
	// Единственная восстановимая ошибка: клиент может выполнить refresh
	ErrTokenExpired = errors.New("срок действия токена истёк")

	// ErrRefreshRecordNotFound : запись refresh-токена отсутствует в хранилище.
	// Покрывает повторное использование после ротации, logout и неизвестные токены,
	// намеренно неразличимые для вызывающего
	ErrRefreshRecordNotFound = errors.New("refresh-токен не найден")

	// ErrRefreshRecordExpired : запись refresh-токена найдена, но просрочена
	ErrRefreshRecordExpired = errors.New("срок действия refresh-токена истёк")
)

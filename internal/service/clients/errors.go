package clients

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных регистрационных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrInvalidClientType возвращается при неизвестном типе клиента
	ErrInvalidClientType = errors.New("invalid client type")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("clients: internal error")
)

package positionservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("positionservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("positionservice client: invalid response")

	// ErrPositionUnavailable возвращается, когда провайдер отказал в доступе
	// к позиции или она недоступна
	ErrPositionUnavailable = errors.New("positionservice client: position unavailable")
)

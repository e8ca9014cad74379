package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия бронирования не найдена
	ErrSessionNotFound = errors.New("session: booking session not found")

	// ErrSessionCommitted возвращается при попытке изменить завершённую
	// сессию; новая бронь начинается с новой сессии
	ErrSessionCommitted = errors.New("session: booking session already committed")

	// ErrNoLotSelected возвращается, когда операция требует выбранной парковки
	ErrNoLotSelected = errors.New("session: no parking lot selected")

	// ErrNoSpotSelected возвращается, когда операция требует выбранного места
	ErrNoSpotSelected = errors.New("session: no parking spot selected")

	// ErrNoActiveSelection возвращается при коммите без выбранных парковки и места
	ErrNoActiveSelection = errors.New("session: no active lot/spot selection")

	// ErrSpotUnavailable возвращается при выборе недоступного места
	ErrSpotUnavailable = errors.New("session: parking spot is unavailable")

	// ErrInvalidDuration возвращается, когда длительность вне диапазона [1, 24] часов
	ErrInvalidDuration = errors.New("session: duration must be between 1 and 24 hours")

	// ErrPastReservationTime возвращается, когда время начала брони в прошлом
	ErrPastReservationTime = errors.New("session: reservation start time is in the past")

	// ErrInvalidVehicleNumber возвращается, когда номер не соответствует
	// шаблону регистрационного номера
	ErrInvalidVehicleNumber = errors.New("session: invalid vehicle registration number")

	// ErrInvalidVehicleType возвращается при неизвестном типе транспорта
	ErrInvalidVehicleType = errors.New("session: invalid vehicle type")

	// ErrCommitInProgress возвращается при повторном коммите, пока
	// предыдущий ещё не завершился
	ErrCommitInProgress = errors.New("session: commit already in progress")
)

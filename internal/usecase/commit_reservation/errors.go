package commit_reservation

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия бронирования не найдена
	ErrSessionNotFound = errors.New("commit_reservation: booking session not found")

	// ErrNoActiveSelection возвращается при коммите без выбранных парковки и места
	ErrNoActiveSelection = errors.New("commit_reservation: no active lot/spot selection")

	// ErrSpotAlreadyReserved возвращается, когда место заняли между выбором
	// и коммитом (optimistic check на коммите)
	ErrSpotAlreadyReserved = errors.New("commit_reservation: spot already reserved")

	// ErrCommitInProgress возвращается при повторном коммите той же сессии,
	// пока предыдущий не завершился
	ErrCommitInProgress = errors.New("commit_reservation: commit already in progress")

	// ErrSessionCommitted возвращается при коммите уже завершённой сессии
	ErrSessionCommitted = errors.New("commit_reservation: session already committed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("commit_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("commit_reservation: internal error")
)

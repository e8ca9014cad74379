package catalog

import "errors"

var (
	// ErrLotNotFound возвращается, когда парковка не найдена в каталоге
	ErrLotNotFound = errors.New("catalog: parking lot not found")

	// ErrSpotNotFound возвращается, когда место не найдено в парковке
	ErrSpotNotFound = errors.New("catalog: parking spot not found")

	// ErrSpotTaken возвращается, когда место уже занято на момент резервирования
	ErrSpotTaken = errors.New("catalog: parking spot already taken")
)

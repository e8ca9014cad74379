package catalog

import (
	"sync"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Catalog in-memory каталог парковок. Единственный источник истины по
// доступности мест: мутация ограничена SetSpotAvailability и Reserve.
//
// Обновления иммутабельные: при изменении пересобирается только целевая
// парковка (и её слайс мест), остальные элементы каталога не трогаются.
// Снимки, выданные наружу через Lots/Lot, изменений не наблюдают.
type Catalog struct {
	mu   sync.RWMutex
	lots []domain.ParkingLot
}

// New создает каталог поверх переданного набора парковок
func New(lots []domain.ParkingLot) *Catalog {
	owned := make([]domain.ParkingLot, len(lots))
	for i := range lots {
		owned[i] = lots[i].Clone()
	}
	return &Catalog{lots: owned}
}

// Lots возвращает снимок всех парковок в исходном порядке каталога
func (c *Catalog) Lots() []domain.ParkingLot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]domain.ParkingLot, len(c.lots))
	for i := range c.lots {
		snapshot[i] = c.lots[i].Clone()
	}
	return snapshot
}

// Lot возвращает снимок парковки по ID
func (c *Catalog) Lot(lotID string) (domain.ParkingLot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.lots {
		if c.lots[i].ID == lotID {
			return c.lots[i].Clone(), nil
		}
	}
	return domain.ParkingLot{}, ErrLotNotFound
}

// Spot возвращает снимок места по паре lotID/spotID
func (c *Catalog) Spot(lotID, spotID string) (domain.ParkingSpot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.lots {
		if c.lots[i].ID != lotID {
			continue
		}
		if spot, ok := c.lots[i].Spot(spotID); ok {
			return spot, nil
		}
		return domain.ParkingSpot{}, ErrSpotNotFound
	}
	return domain.ParkingSpot{}, ErrLotNotFound
}

// SetSpotAvailability переключает доступность ровно одного места.
// Если пара lotID/spotID не существует - тихий no-op.
func (c *Catalog) SetSpotAvailability(lotID, spotID string, available bool, holderID *string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mutateSpot(lotID, spotID, available, holderID)
}

// Reserve - optimistic check-and-set на момент коммита: атомарно проверяет,
// что место всё ещё доступно, и занимает его. Из двух одновременных коммитов
// на одно место ровно один получит успех, второй - ErrSpotTaken.
func (c *Catalog) Reserve(lotID, spotID, holderID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	spot, err := c.findSpot(lotID, spotID)
	if err != nil {
		return err
	}
	if !spot.Available {
		return ErrSpotTaken
	}

	c.mutateSpot(lotID, spotID, false, &holderID)
	return nil
}

// Release освобождает место (используется для отката неудачного коммита)
func (c *Catalog) Release(lotID, spotID string) {
	c.SetSpotAvailability(lotID, spotID, true, nil)
}

// findSpot ищет место без копирования; вызывается под мьютексом
func (c *Catalog) findSpot(lotID, spotID string) (domain.ParkingSpot, error) {
	for i := range c.lots {
		if c.lots[i].ID != lotID {
			continue
		}
		if spot, ok := c.lots[i].Spot(spotID); ok {
			return spot, nil
		}
		return domain.ParkingSpot{}, ErrSpotNotFound
	}
	return domain.ParkingSpot{}, ErrLotNotFound
}

// mutateSpot пересобирает целевую парковку с новым состоянием одного места;
// вызывается под мьютексом
func (c *Catalog) mutateSpot(lotID, spotID string, available bool, holderID *string) {
	for i := range c.lots {
		if c.lots[i].ID != lotID {
			continue
		}
		for j := range c.lots[i].Spots {
			if c.lots[i].Spots[j].ID != spotID {
				continue
			}

			updated := c.lots[i].Clone()
			updated.Spots[j].Available = available
			updated.Spots[j].ReservedByID = holderID
			c.lots[i] = updated
			return
		}
		return
	}
}

package stats

import (
	"context"
	"math"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Service сводная статистика занятости и выручки для админской панели.
// Каждая резервация считается одним платежом; выручка - сумма цен всех
// резерваций журнала.
type Service struct {
	lots         LotProvider
	reservations ReservationSource
	archive      RevenueArchive // best-effort, может быть nil
	log          Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(lots LotProvider, reservations ReservationSource, archive RevenueArchive, log Logger) *Service {
	return &Service{
		lots:         lots,
		reservations: reservations,
		archive:      archive,
		log:          log,
	}
}

// Summary собирает сводку по текущему состоянию каталога и журнала
func (s *Service) Summary(ctx context.Context, now time.Time) *Summary {
	reservations := s.reservations.All()

	summary := &Summary{
		TotalReservations: len(reservations),
		TotalPayments:     len(reservations),
	}

	for _, r := range reservations {
		summary.TotalRevenue += r.Price
		if r.Status(now) == domain.ReservationActive {
			summary.ActiveReservations++
		}
	}

	var totalSpots, occupiedSpots int
	lots := s.lots.Lots()
	summary.Lots = make([]LotOccupancy, 0, len(lots))
	for _, lot := range lots {
		available := lot.AvailableCount()
		occupied := len(lot.Spots) - available
		totalSpots += len(lot.Spots)
		occupiedSpots += occupied

		summary.Lots = append(summary.Lots, LotOccupancy{
			LotID:          lot.ID,
			Name:           lot.Name,
			TotalSpots:     len(lot.Spots),
			AvailableSpots: available,
			OccupiedSpots:  occupied,
			OccupancyRate:  ratePercent(occupied, len(lot.Spots)),
		})
	}
	summary.OccupancyRate = ratePercent(occupiedSpots, totalSpots)

	// Историческая выручка из архива best-effort
	if s.archive != nil {
		revenue, err := s.archive.RevenueByLot(ctx)
		if err != nil {
			s.log.Warn("Summary: failed to read revenue archive: %v", err)
		} else {
			summary.RevenueByLot = revenue
		}
	}

	return summary
}

func ratePercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

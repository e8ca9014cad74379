package admin_summary

import "github.com/m04kA/SMC-ParkingService/internal/service/stats"

// LotOccupancyResponse HTTP response model занятости одной парковки
type LotOccupancyResponse struct {
	LotID          string `json:"lotId"`
	Name           string `json:"name"`
	TotalSpots     int    `json:"totalSpots"`
	AvailableSpots int    `json:"availableSpots"`
	OccupiedSpots  int    `json:"occupiedSpots"`
	OccupancyRate  int    `json:"occupancyRate"`
}

// LotRevenueResponse HTTP response model исторической выручки парковки
type LotRevenueResponse struct {
	LotID        string  `json:"lotId"`
	LotName      string  `json:"lotName"`
	Reservations int     `json:"reservations"`
	Revenue      float64 `json:"revenue"`
}

// SummaryResponse HTTP response model админской сводки
type SummaryResponse struct {
	TotalReservations  int                    `json:"totalReservations"`
	TotalPayments      int                    `json:"totalPayments"`
	ActiveReservations int                    `json:"activeReservations"`
	TotalRevenue       float64                `json:"totalRevenue"`
	OccupancyRate      int                    `json:"occupancyRate"`
	Lots               []LotOccupancyResponse `json:"lots"`
	RevenueByLot       []LotRevenueResponse   `json:"revenueByLot,omitempty"`
}

// FromService конвертирует сводку сервиса в HTTP response
func FromService(summary *stats.Summary) *SummaryResponse {
	response := &SummaryResponse{
		TotalReservations:  summary.TotalReservations,
		TotalPayments:      summary.TotalPayments,
		ActiveReservations: summary.ActiveReservations,
		TotalRevenue:       summary.TotalRevenue,
		OccupancyRate:      summary.OccupancyRate,
		Lots:               make([]LotOccupancyResponse, 0, len(summary.Lots)),
	}
	for _, lot := range summary.Lots {
		response.Lots = append(response.Lots, LotOccupancyResponse{
			LotID:          lot.LotID,
			Name:           lot.Name,
			TotalSpots:     lot.TotalSpots,
			AvailableSpots: lot.AvailableSpots,
			OccupiedSpots:  lot.OccupiedSpots,
			OccupancyRate:  lot.OccupancyRate,
		})
	}
	for _, revenue := range summary.RevenueByLot {
		response.RevenueByLot = append(response.RevenueByLot, LotRevenueResponse{
			LotID:        revenue.LotID,
			LotName:      revenue.LotName,
			Reservations: revenue.Reservations,
			Revenue:      revenue.Revenue,
		})
	}
	return response
}

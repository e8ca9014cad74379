package stats

import "github.com/m04kA/SMC-ParkingService/internal/infra/storage/archive"

// LotOccupancy сводка занятости одной парковки
type LotOccupancy struct {
	LotID          string
	Name           string
	TotalSpots     int
	AvailableSpots int
	OccupiedSpots  int
	OccupancyRate  int // процент, 0-100
}

// Summary сводка для админской панели
type Summary struct {
	TotalReservations  int
	TotalPayments      int
	ActiveReservations int
	TotalRevenue       float64
	OccupancyRate      int // процент по всем парковкам, 0-100
	Lots               []LotOccupancy
	RevenueByLot       []archive.LotRevenue // историческая выручка, если архив включён
}

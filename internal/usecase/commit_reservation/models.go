package commit_reservation

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модель запроса на коммит резервации
type Request struct {
	SessionID     string               // ID сессии бронирования
	UserID        string               // ID пользователя
	PaymentMethod domain.PaymentMethod // Тег способа оплаты (обработка симулируется)
}

// Response модель ответа с созданной резервацией
type Response struct {
	ID         string                 // ID резервации
	LotID      string                 // ID парковки
	LotName    string                 // Название парковки (денормализовано)
	SpotID     string                 // ID места
	SpotNumber int                    // Номер места (денормализовано)
	UserID     string                 // ID пользователя
	StartTime  time.Time              // Начало брони
	EndTime    time.Time              // Конец брони
	Price      float64                // Цена = PricePerHour * DurationHours
	Payment    domain.PaymentMethod   // Способ оплаты
	Timestamp  time.Time              // Время создания
	Vehicle    *domain.VehicleDetails // Данные транспорта (опционально)
}

func fromDomain(r *domain.Reservation) *Response {
	return &Response{
		ID:         r.ID,
		LotID:      r.LotID,
		LotName:    r.LotName,
		SpotID:     r.SpotID,
		SpotNumber: r.SpotNumber,
		UserID:     r.UserID,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Price:      r.Price,
		Payment:    r.Payment,
		Timestamp:  r.Timestamp,
		Vehicle:    r.Vehicle,
	}
}

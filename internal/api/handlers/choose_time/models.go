package choose_time

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ChooseTimeRequest HTTP request model
type ChooseTimeRequest struct {
	Date          string `json:"date"`      // "2026-08-31"
	StartTime     string `json:"startTime"` // "10:00"
	DurationHours int    `json:"durationHours"`
}

// Start собирает момент начала брони из даты и времени запроса
func (r *ChooseTimeRequest) Start() (time.Time, error) {
	return time.ParseInLocation(
		domain.DateFormat+" "+domain.TimeFormat,
		r.Date+" "+r.StartTime,
		time.Local,
	)
}

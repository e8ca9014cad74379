package enter_vehicle

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// EnterVehicleRequest HTTP request model
type EnterVehicleRequest struct {
	VehicleType   string `json:"vehicleType"`   // "2-wheeler" | "4-wheeler" | "other"
	VehicleNumber string `json:"vehicleNumber"` // "KA01AB1234", регистр не важен
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *EnterVehicleRequest) ToDomain() domain.VehicleDetails {
	return domain.VehicleDetails{
		Type:   domain.VehicleType(r.VehicleType),
		Number: r.VehicleNumber,
	}
}

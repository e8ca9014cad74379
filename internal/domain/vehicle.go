package domain

import (
	"regexp"
	"strings"
)

// VehicleType represents the kind of vehicle being parked
type VehicleType string

const (
	VehicleTypeTwoWheeler  VehicleType = "2-wheeler"
	VehicleTypeFourWheeler VehicleType = "4-wheeler"
	VehicleTypeOther       VehicleType = "other"
)

// IsValidVehicleType returns true if the value is one of the known vehicle types
func IsValidVehicleType(t VehicleType) bool {
	return t == VehicleTypeTwoWheeler || t == VehicleTypeFourWheeler || t == VehicleTypeOther
}

// VehicleDetails describes the vehicle a reservation is made for
type VehicleDetails struct {
	Type   VehicleType `json:"type"`
	Number string      `json:"number"`
}

// vehicleNumberPattern: two letters, 1-2 digits, 1-2 letters, 4 digits (e.g. KA01AB1234)
var vehicleNumberPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{1,2}[A-Z]{1,2}[0-9]{4}$`)

// NormalizeVehicleNumber приводит номер к каноническому виду для проверки и хранения
func NormalizeVehicleNumber(number string) string {
	return strings.ToUpper(strings.TrimSpace(number))
}

// IsValidVehicleNumber reports whether the registration number matches the
// fixed plate pattern after normalization.
func IsValidVehicleNumber(number string) bool {
	return vehicleNumberPattern.MatchString(NormalizeVehicleNumber(number))
}

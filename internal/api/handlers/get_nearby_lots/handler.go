package get_nearby_lots

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

const (
	msgInvalidCoordinates = "некорректные координаты, ожидаются числа lat и lng"
	msgInvalidLimit       = "некорректный limit, ожидается положительное число"
)

type Handler struct {
	service  NearbyService
	position PositionProvider
	logger   Logger
}

func NewHandler(service NearbyService, position PositionProvider, logger Logger) *Handler {
	return &Handler{
		service:  service,
		position: position,
		logger:   logger,
	}
}

// Handle GET /api/v1/lots/nearby?lat=&lng=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var position domain.Coordinate
	latStr, lngStr := query.Get("lat"), query.Get("lng")
	if latStr != "" || lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			h.logger.Warn("GET /lots/nearby - Invalid coordinates: lat=%q, lng=%q", latStr, lngStr)
			handlers.RespondBadRequest(w, msgInvalidCoordinates)
			return
		}
		position = domain.Coordinate{Latitude: lat, Longitude: lng}
	} else {
		// Координаты не переданы: берём позицию устройства с fallback
		// на дефолтную координату
		position = h.position.CurrentPositionWithFallback(r.Context())
	}

	limit := 0
	if limitStr := query.Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /lots/nearby - Invalid limit: %q", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	lots := h.service.FindNearby(position, limit)

	response := make([]*NearbyLotResponse, 0, len(lots))
	for i := range lots {
		response = append(response, FromService(&lots[i]))
	}

	h.logger.Info("GET /lots/nearby - Nearby lots retrieved: position=(%.4f, %.4f), count=%d",
		position.Latitude, position.Longitude, len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}

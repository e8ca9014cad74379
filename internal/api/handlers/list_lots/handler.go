package list_lots

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

type Handler struct {
	catalog LotCatalog
	logger  Logger
}

func NewHandler(catalog LotCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/lots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lots := h.catalog.Lots()

	response := make([]*LotResponse, 0, len(lots))
	for i := range lots {
		response = append(response, FromDomain(&lots[i]))
	}

	h.logger.Info("GET /lots - Lots retrieved successfully: count=%d", len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}

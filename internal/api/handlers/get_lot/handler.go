package get_lot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/infra/catalog"
)

const (
	msgLotNotFound = "парковка не найдена"
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

// Handle GET /api/v1/lots/{lotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	lotID := vars["lotId"]

	lot, err := h.catalog.Lot(lotID)
	if err != nil {
		if errors.Is(err, catalog.ErrLotNotFound) {
			h.logger.Warn("GET /lots/{lotId} - Lot not found: lot_id=%s", lotID)
			handlers.RespondNotFound(w, msgLotNotFound)
			return
		}
		h.logger.Error("GET /lots/{lotId} - Failed to get lot: lot_id=%s, error=%v", lotID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /lots/{lotId} - Lot retrieved successfully: lot_id=%s", lotID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(&lot))
}

package admin_summary

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

type Handler struct {
	stats  StatsService
	logger Logger
}

func NewHandler(stats StatsService, logger Logger) *Handler {
	return &Handler{
		stats:  stats,
		logger: logger,
	}
}

// Handle GET /api/v1/admin/summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	summary := h.stats.Summary(r.Context(), time.Now())

	h.logger.Info("GET /admin/summary - Summary retrieved: reservations=%d, revenue=%.2f, occupancy=%d%%",
		summary.TotalReservations, summary.TotalRevenue, summary.OccupancyRate)
	handlers.RespondJSON(w, http.StatusOK, FromService(summary))
}

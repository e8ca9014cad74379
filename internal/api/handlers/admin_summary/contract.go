package admin_summary

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/service/stats"
)

type StatsService interface {
	Summary(ctx context.Context, now time.Time) *stats.Summary
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

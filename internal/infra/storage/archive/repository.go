package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

// LotRevenue агрегированная выручка по одной парковке
type LotRevenue struct {
	LotID        string
	LotName      string
	Reservations int
	Revenue      float64
}

// Repository Postgres-архив завершённых резерваций.
// Архив - best-effort история для админской отчётности: ошибки записи
// не влияют на коммит резервации, источником истины остаётся ledger.
type Repository struct {
	db *sql.DB
}

// NewRepository создает новый экземпляр архивного репозитория
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Insert добавляет резервацию в архив
func (r *Repository) Insert(ctx context.Context, reservation *domain.Reservation) error {
	var vehicle interface{}
	if reservation.Vehicle != nil {
		data, err := json.Marshal(reservation.Vehicle)
		if err != nil {
			return fmt.Errorf("%w: Insert - marshal vehicle: %v", ErrBuildQuery, err)
		}
		vehicle = data
	}

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"lot_id",
			"lot_name",
			"spot_id",
			"spot_number",
			"user_id",
			"start_time",
			"end_time",
			"price",
			"payment_method",
			"created_at",
			"vehicle_details",
		).
		Values(
			reservation.ID,
			reservation.LotID,
			reservation.LotName,
			reservation.SpotID,
			reservation.SpotNumber,
			reservation.UserID,
			reservation.StartTime,
			reservation.EndTime,
			reservation.Price,
			string(reservation.Payment),
			reservation.Timestamp,
			vehicle,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// RevenueByLot возвращает количество резерваций и выручку по каждой парковке
func (r *Repository) RevenueByLot(ctx context.Context) ([]LotRevenue, error) {
	query, args, err := psqlbuilder.Select(
		"lot_id",
		"lot_name",
		"COUNT(*) AS reservations",
		"COALESCE(SUM(price), 0) AS revenue",
	).
		From("reservations").
		GroupBy("lot_id", "lot_name").
		OrderBy("revenue DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: RevenueByLot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: RevenueByLot - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []LotRevenue
	for rows.Next() {
		var row LotRevenue
		if err := rows.Scan(&row.LotID, &row.LotName, &row.Reservations, &row.Revenue); err != nil {
			return nil, fmt.Errorf("%w: RevenueByLot - scan row: %v", ErrScanRow, err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: RevenueByLot - iterate rows: %v", ErrExecQuery, err)
	}

	return result, nil
}

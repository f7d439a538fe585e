package repositories

import (
	"context"
	"database/sql"
	"strings"

	"goairline/internal/cart"
	intconfig "goairline/internal/config"
	"goairline/internal/domain"
	"goairline/internal/utils"
)

// SeatRepo reads a flight's seat map.
type SeatRepo struct {
	DB *sql.DB
}

func (r SeatRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListByFlight returns every seat of a flight ordered by row and column.
func (r SeatRepo) ListByFlight(ctx context.Context, flightNumber string) ([]cart.Seat, error) {
	flightNumber = strings.ToUpper(strings.TrimSpace(flightNumber))
	if flightNumber == "" {
		return nil, domain.ValidationError{Field: "flightNumber", Msg: "required"}
	}
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not connected"}
	}

	rows, err := db.QueryContext(ctx, `
		SELECT seat_number, COALESCE(seat_row,0), COALESCE(column_label,''), COALESCE(seat_status,'AVAILABLE')
		FROM seats
		WHERE flight_number=?
		ORDER BY seat_row ASC, column_label ASC`, flightNumber)
	if err != nil {
		return nil, domain.UpstreamError{Op: "load seats", Err: err}
	}
	defer rows.Close()

	out := []cart.Seat{}
	for rows.Next() {
		var (
			id, col, status string
			row             int
		)
		if err := rows.Scan(&id, &row, &col, &status); err != nil {
			return nil, domain.UpstreamError{Op: "scan seat", Err: err}
		}
		out = append(out, cart.Seat{
			ID:          utils.NormalizeSeatID(id),
			Row:         row,
			ColumnLabel: strings.ToUpper(strings.TrimSpace(col)),
			Status:      cart.SeatStatus(strings.ToUpper(strings.TrimSpace(status))),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, domain.UpstreamError{Op: "load seats", Err: err}
	}
	return out, nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"goairline/internal/cart"
	intconfig "goairline/internal/config"
	"goairline/internal/domain"
)

// FlightRepo resolves flight numbers into segment descriptors.
type FlightRepo struct {
	DB *sql.DB
}

func (r FlightRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByNumber loads one flight. Unknown numbers yield domain.NotFoundError.
func (r FlightRepo) GetByNumber(ctx context.Context, flightNumber string) (cart.Descriptor, error) {
	var out cart.Descriptor
	flightNumber = strings.ToUpper(strings.TrimSpace(flightNumber))
	if flightNumber == "" {
		return out, domain.ValidationError{Field: "flightNumber", Msg: "required"}
	}
	db := r.db()
	if db == nil {
		return out, domain.InternalError{Msg: "database not connected"}
	}

	var size string
	err := db.QueryRowContext(ctx, `
		SELECT flight_number, COALESCE(airline,''), COALESCE(source_airport,''), COALESCE(destination_airport,''),
		       COALESCE(aircraft_size,''), COALESCE(departure_date,''), COALESCE(departure_time,''),
		       COALESCE(arrival_date,''), COALESCE(arrival_time,''), COALESCE(price,0)
		FROM flights
		WHERE flight_number=?
		LIMIT 1`, flightNumber).Scan(
		&out.FlightNumber,
		&out.Airline,
		&out.SourceAirport,
		&out.DestinationAirport,
		&size,
		&out.DepartureDate,
		&out.DepartureTime,
		&out.ArrivalDate,
		&out.ArrivalTime,
		&out.Price,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return out, domain.NotFoundError{Resource: "flight " + flightNumber, Err: err}
	}
	if err != nil {
		return out, domain.UpstreamError{Op: "load flight", Err: err}
	}
	out.AircraftSize = cart.AircraftSize(strings.ToUpper(size))
	return out, nil
}

// GetByNumbers loads flights in the given order.
func (r FlightRepo) GetByNumbers(ctx context.Context, flightNumbers []string) ([]cart.Descriptor, error) {
	out := make([]cart.Descriptor, 0, len(flightNumbers))
	for _, fn := range flightNumbers {
		d, err := r.GetByNumber(ctx, fn)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

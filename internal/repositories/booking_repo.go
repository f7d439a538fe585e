package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"goairline/internal/cart"
	intconfig "goairline/internal/config"
	"goairline/internal/domain"
	"goairline/internal/domain/models"
)

// BookingRepo is the booking store behind cart submission.
type BookingRepo struct {
	DB  *sql.DB
	Now func() time.Time
}

func (r BookingRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r BookingRepo) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

const insertBookingSQL = `INSERT INTO bookings
	(booking_no, user_id, trip_type, flight_number, airline, source_airport, destination_airport,
	 departure_date, departure_time, arrival_date, arrival_time, contact_email, contact_phone,
	 special_fare_type, passenger_count, total_amount, status, journey_status, booking_time)
	VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`

const occupySeatSQL = `UPDATE seats SET seat_status='OCCUPIED'
	WHERE flight_number=? AND seat_number=? AND seat_status='AVAILABLE'`

const insertPassengerSQL = `INSERT INTO booking_passengers
	(booking_id, passenger_name, age, gender, passport_number, seat_no)
	VALUES (?,?,?,?,?,?)`

// Create stores every segment of the payload in one transaction and marks
// the chosen seats occupied. A seat taken since the inventory was read fails
// the whole booking with domain.ConflictError.
func (r BookingRepo) Create(ctx context.Context, userID int64, p cart.Payload) (models.Confirmation, error) {
	var out models.Confirmation
	if len(p.Segments) == 0 {
		return out, domain.ValidationError{Field: "segments", Msg: "empty payload"}
	}
	db := r.db()
	if db == nil {
		return out, domain.InternalError{Msg: "database not connected"}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return out, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	ids := make([]int64, 0, len(p.Segments))
	for _, seg := range p.Segments {
		res, err := tx.ExecContext(ctx, insertBookingSQL,
			seg.BookingNo, userID, string(seg.TripType), seg.FlightNumber, seg.Airline,
			seg.SourceAirport, seg.DestinationAirport,
			seg.DepartureDate, seg.DepartureTime, seg.ArrivalDate, seg.ArrivalTime,
			seg.ContactEmail, seg.ContactPhone, string(seg.SpecialFareType),
			seg.PassengerCount, seg.TotalAmount, string(seg.Status), string(seg.JourneyStatus),
			seg.BookingTime.UTC().Format("2006-01-02 15:04:05"),
		)
		if err != nil {
			return out, fmt.Errorf("insert booking %s: %w", seg.FlightNumber, err)
		}
		bookingID, err := res.LastInsertId()
		if err != nil {
			return out, err
		}
		ids = append(ids, bookingID)

		for _, ps := range seg.Passengers {
			res, err := tx.ExecContext(ctx, occupySeatSQL, seg.FlightNumber, ps.SeatNo)
			if err != nil {
				return out, fmt.Errorf("occupy seat %s: %w", ps.SeatNo, err)
			}
			if n, err := res.RowsAffected(); err != nil || n == 0 {
				return out, domain.ConflictError{
					Resource: "seat",
					Msg:      fmt.Sprintf("seat %s on %s is no longer available", ps.SeatNo, seg.FlightNumber),
					Err:      err,
				}
			}
			if _, err := tx.ExecContext(ctx, insertPassengerSQL,
				bookingID, ps.Name, ps.Age, string(ps.Gender), ps.PassportNumber, ps.SeatNo); err != nil {
				return out, fmt.Errorf("insert passenger: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return out, err
	}
	committed = true

	return models.Confirmation{
		BookingNo:  p.Reference,
		BookingIDs: ids,
		Status:     string(p.Segments[0].Status),
		CreatedAt:  r.now().UTC(),
	}, nil
}

// GetByReference loads every segment booked under one booking reference.
func (r BookingRepo) GetByReference(ctx context.Context, ref string) ([]models.StoredBooking, error) {
	ref = strings.ToUpper(strings.TrimSpace(ref))
	if ref == "" {
		return nil, domain.ValidationError{Field: "reference", Msg: "required"}
	}
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not connected"}
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, booking_no, user_id, trip_type, flight_number, COALESCE(airline,''),
		       COALESCE(source_airport,''), COALESCE(destination_airport,''),
		       COALESCE(departure_date,''), COALESCE(departure_time,''),
		       COALESCE(arrival_date,''), COALESCE(arrival_time,''),
		       COALESCE(contact_email,''), COALESCE(contact_phone,''), COALESCE(special_fare_type,'NONE'),
		       passenger_count, total_amount, status, journey_status
		FROM bookings
		WHERE booking_no=?
		ORDER BY id ASC`, ref)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.StoredBooking{}
	for rows.Next() {
		var b models.StoredBooking
		if err := rows.Scan(
			&b.ID, &b.BookingNo, &b.UserID, &b.TripType, &b.FlightNumber, &b.Airline,
			&b.SourceAirport, &b.DestinationAirport,
			&b.DepartureDate, &b.DepartureTime, &b.ArrivalDate, &b.ArrivalTime,
			&b.ContactEmail, &b.ContactPhone, &b.SpecialFareType,
			&b.PassengerCount, &b.TotalAmount, &b.Status, &b.JourneyStatus,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, domain.NotFoundError{Resource: "booking " + ref}
	}

	for i := range out {
		ps, err := r.listPassengers(ctx, db, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Passengers = ps
	}
	return out, nil
}

func (r BookingRepo) listPassengers(ctx context.Context, db *sql.DB, bookingID int64) ([]models.StoredPassenger, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT passenger_name, COALESCE(age,0), COALESCE(gender,''), COALESCE(passport_number,''), seat_no
		FROM booking_passengers
		WHERE booking_id=?
		ORDER BY id ASC`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.StoredPassenger{}
	for rows.Next() {
		var p models.StoredPassenger
		if err := rows.Scan(&p.Name, &p.Age, &p.Gender, &p.PassportNumber, &p.SeatNo); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

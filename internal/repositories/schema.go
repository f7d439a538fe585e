package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaDDL = []string{`
CREATE TABLE IF NOT EXISTS flights (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	flight_number VARCHAR(20) NOT NULL,
	airline VARCHAR(100) NULL,
	source_airport VARCHAR(10) NULL,
	destination_airport VARCHAR(10) NULL,
	aircraft_size VARCHAR(10) NOT NULL DEFAULT 'MEDIUM',
	departure_date VARCHAR(10) NULL,
	departure_time VARCHAR(8) NULL,
	arrival_date VARCHAR(10) NULL,
	arrival_time VARCHAR(8) NULL,
	price BIGINT NOT NULL DEFAULT 0,
	UNIQUE KEY uniq_flight_number (flight_number)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`, `
CREATE TABLE IF NOT EXISTS seats (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	flight_number VARCHAR(20) NOT NULL,
	seat_number VARCHAR(10) NOT NULL,
	seat_row INT NOT NULL,
	column_label VARCHAR(2) NOT NULL,
	seat_status VARCHAR(10) NOT NULL DEFAULT 'AVAILABLE',
	UNIQUE KEY uniq_flight_seat (flight_number, seat_number)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`, `
CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_no VARCHAR(20) NOT NULL,
	user_id BIGINT NOT NULL,
	trip_type VARCHAR(12) NOT NULL,
	flight_number VARCHAR(20) NOT NULL,
	airline VARCHAR(100) NULL,
	source_airport VARCHAR(10) NULL,
	destination_airport VARCHAR(10) NULL,
	departure_date VARCHAR(10) NULL,
	departure_time VARCHAR(8) NULL,
	arrival_date VARCHAR(10) NULL,
	arrival_time VARCHAR(8) NULL,
	contact_email VARCHAR(255) NULL,
	contact_phone VARCHAR(50) NULL,
	special_fare_type VARCHAR(20) NOT NULL DEFAULT 'NONE',
	passenger_count INT NOT NULL,
	total_amount BIGINT NOT NULL,
	status VARCHAR(12) NOT NULL,
	journey_status VARCHAR(12) NOT NULL,
	booking_time DATETIME NOT NULL,
	KEY idx_booking_no (booking_no)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`, `
CREATE TABLE IF NOT EXISTS booking_passengers (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_id BIGINT NOT NULL,
	passenger_name VARCHAR(255) NOT NULL,
	age INT NULL,
	gender VARCHAR(10) NULL,
	passport_number VARCHAR(50) NULL,
	seat_no VARCHAR(10) NOT NULL,
	UNIQUE KEY uniq_booking_seat (booking_id, seat_no),
	KEY idx_booking (booking_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
}

// EnsureSchema creates the booking tables when missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("db not available")
	}
	for _, ddl := range schemaDDL {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return err
		}
	}
	return nil
}

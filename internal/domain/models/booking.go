package models

import "time"

// Confirmation is what the booking store returns for a submitted cart.
// Handlers forward it to the client unchanged.
type Confirmation struct {
	BookingNo  string    `json:"bookingNo"`
	BookingIDs []int64   `json:"bookingIds"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// StoredBooking is one persisted segment booking.
type StoredBooking struct {
	ID                 int64
	BookingNo          string
	UserID             int64
	TripType           string
	FlightNumber       string
	Airline            string
	SourceAirport      string
	DestinationAirport string
	DepartureDate      string
	DepartureTime      string
	ArrivalDate        string
	ArrivalTime        string
	ContactEmail       string
	ContactPhone       string
	SpecialFareType    string
	PassengerCount     int
	TotalAmount        int64
	Status             string
	JourneyStatus      string
	Passengers         []StoredPassenger
}

// StoredPassenger is one passenger row of a stored booking.
type StoredPassenger struct {
	Name           string
	Age            int
	Gender         string
	PassportNumber string
	SeatNo         string
}

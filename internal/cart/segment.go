package cart

import "time"

// Descriptor is a flight leg as returned by flight search.
type Descriptor struct {
	FlightNumber       string       `json:"flightNumber"`
	Airline            string       `json:"airline"`
	SourceAirport      string       `json:"sourceAirport"`
	DestinationAirport string       `json:"destinationAirport"`
	AircraftSize       AircraftSize `json:"aircraftSize"`
	DepartureDate      string       `json:"departureDate"`
	DepartureTime      string       `json:"departureTime"`
	ArrivalDate        string       `json:"arrivalDate"`
	ArrivalTime        string       `json:"arrivalTime"`
	Price              int64        `json:"price"`
}

// Segment is the booking draft for one leg. Its seat vector always has one
// slot per roster passenger; "" marks an unassigned slot.
type Segment struct {
	Flight         Descriptor
	ContactEmail   string
	ContactPhone   string
	FareType       FareType
	PassengerCount int
	TotalAmount    int64
	Status         BookingStatus
	JourneyStatus  JourneyStatus
	BookedAt       time.Time

	seats   []string
	history []string
}

func newSegment(d Descriptor, passengers int, fare FareType, now time.Time) *Segment {
	s := &Segment{
		Flight:        d,
		FareType:      fare,
		Status:        StatusPending,
		JourneyStatus: JourneyNotStarted,
		BookedAt:      now,
	}
	s.resize(passengers)
	return s
}

// Seats returns a copy of the assignment vector in roster order.
func (s *Segment) Seats() []string {
	out := make([]string, len(s.seats))
	copy(out, s.seats)
	return out
}

// SeatOf returns the seat held by roster index i on this segment.
func (s *Segment) SeatOf(i int) string {
	if i < 0 || i >= len(s.seats) {
		return ""
	}
	return s.seats[i]
}

// Assigned lists the non-empty slots in roster order.
func (s *Segment) Assigned() []string {
	out := make([]string, 0, len(s.seats))
	for _, id := range s.seats {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}

// Holds reports whether seat id is assigned to anyone on this segment.
func (s *Segment) Holds(id string) bool {
	return s.slotOf(id) >= 0
}

func (s *Segment) slotOf(id string) int {
	for i, v := range s.seats {
		if v == id {
			return i
		}
	}
	return -1
}

// resize grows or truncates the vector; truncated seats are forgotten.
func (s *Segment) resize(n int) {
	switch {
	case n > len(s.seats):
		s.seats = append(s.seats, make([]string, n-len(s.seats))...)
	case n < len(s.seats):
		for _, id := range s.seats[n:] {
			s.forget(id)
		}
		s.seats = s.seats[:n]
	}
	s.PassengerCount = n
	s.TotalAmount = s.Flight.Price * int64(n)
}

// removeSlot deletes roster index i, shifting later slots down.
func (s *Segment) removeSlot(i int) {
	s.forget(s.seats[i])
	s.seats = append(s.seats[:i], s.seats[i+1:]...)
	s.PassengerCount = len(s.seats)
	s.TotalAmount = s.Flight.Price * int64(len(s.seats))
}

func (s *Segment) forget(id string) {
	if id == "" {
		return
	}
	for i, v := range s.history {
		if v == id {
			s.history = append(s.history[:i], s.history[i+1:]...)
			return
		}
	}
}

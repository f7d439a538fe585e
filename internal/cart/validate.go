package cart

import "goairline/internal/domain"

// Validate reports the first rule that blocks submission, or nil. Seat
// coverage is checked on every segment before passenger details.
func Validate(c *TripCart, requireDocument bool) error {
	for si, s := range c.segments {
		for pi, id := range s.seats {
			if id == "" {
				return domain.IncompleteCartError{Segment: si, Passenger: pi, Field: "seat", Reason: "not selected"}
			}
		}
	}
	for pi, p := range c.roster {
		if f := p.missing(requireDocument); f != "" {
			return domain.IncompleteCartError{Segment: -1, Passenger: pi, Field: string(f), Reason: "is required"}
		}
	}
	return nil
}

// CompletedPassengers counts passengers whose details are filled in,
// ignoring seats. Drives the "n/m info added" progress indicator.
func CompletedPassengers(c *TripCart, requireDocument bool) int {
	n := 0
	for _, p := range c.roster {
		if p.missing(requireDocument) == "" {
			n++
		}
	}
	return n
}

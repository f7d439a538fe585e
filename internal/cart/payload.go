package cart

import (
	"encoding/json"
	"time"
)

// PassengerPayload is one passenger as the booking API expects it.
type PassengerPayload struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         Gender `json:"gender"`
	PassportNumber string `json:"passportNumber"`
	SeatNo         string `json:"seatNo"`
}

// SegmentPayload is one booked leg. The API has no notion of a shared
// roster, so every segment carries its own passenger list.
type SegmentPayload struct {
	BookingNo          string             `json:"bookingNo"`
	FlightNumber       string             `json:"flightNumber"`
	Airline            string             `json:"airline,omitempty"`
	SourceAirport      string             `json:"sourceAirport,omitempty"`
	DestinationAirport string             `json:"destinationAirport,omitempty"`
	AircraftSize       AircraftSize       `json:"aircraftSize"`
	TripType           TripType           `json:"tripType"`
	DepartureDate      string             `json:"departureDate"`
	DepartureTime      string             `json:"departureTime"`
	ArrivalDate        string             `json:"arrivalDate"`
	ArrivalTime        string             `json:"arrivalTime"`
	ContactEmail       string             `json:"contactEmail"`
	ContactPhone       string             `json:"contactPhone"`
	BookingTime        time.Time          `json:"bookingTime"`
	PassengerCount     int                `json:"passengerCount"`
	TotalAmount        int64              `json:"totalAmount"`
	Status             BookingStatus      `json:"status"`
	SpecialFareType    FareType           `json:"specialFareType"`
	JourneyStatus      JourneyStatus      `json:"journeyStatus"`
	Passengers         []PassengerPayload `json:"passengers"`
}

// Payload is either a single segment (ONE_WAY) or an ordered list of segments.
type Payload struct {
	TripType  TripType
	Reference string
	Segments  []SegmentPayload
}

// MarshalJSON emits a bare object for one-way trips and an array otherwise.
func (p Payload) MarshalJSON() ([]byte, error) {
	if p.TripType == OneWay && len(p.Segments) == 1 {
		return json.Marshal(p.Segments[0])
	}
	segs := p.Segments
	if segs == nil {
		segs = []SegmentPayload{}
	}
	return json.Marshal(segs)
}

// ToPayload converts the cart to its wire form. It does not validate.
func ToPayload(c *TripCart) Payload {
	out := Payload{
		TripType:  c.TripType,
		Reference: c.Reference,
		Segments:  make([]SegmentPayload, 0, len(c.segments)),
	}
	for _, s := range c.segments {
		passengers := make([]PassengerPayload, len(c.roster))
		for i, p := range c.roster {
			passengers[i] = PassengerPayload{
				Name:           p.Name,
				Age:            p.Age,
				Gender:         p.Gender,
				PassportNumber: p.TravelDocumentID,
				SeatNo:         s.SeatOf(i),
			}
		}
		out.Segments = append(out.Segments, SegmentPayload{
			BookingNo:          c.Reference,
			FlightNumber:       s.Flight.FlightNumber,
			Airline:            s.Flight.Airline,
			SourceAirport:      s.Flight.SourceAirport,
			DestinationAirport: s.Flight.DestinationAirport,
			AircraftSize:       s.Flight.AircraftSize,
			TripType:           c.TripType,
			DepartureDate:      s.Flight.DepartureDate,
			DepartureTime:      s.Flight.DepartureTime,
			ArrivalDate:        s.Flight.ArrivalDate,
			ArrivalTime:        s.Flight.ArrivalTime,
			ContactEmail:       s.ContactEmail,
			ContactPhone:       s.ContactPhone,
			BookingTime:        s.BookedAt,
			PassengerCount:     s.PassengerCount,
			TotalAmount:        s.TotalAmount,
			Status:             s.Status,
			SpecialFareType:    s.FareType,
			JourneyStatus:      s.JourneyStatus,
			Passengers:         passengers,
		})
	}
	return out
}

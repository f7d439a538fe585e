package services

import (
	"goairline/internal/cart"
	"goairline/internal/utils"
)

type CartView struct {
	ID            string           `json:"cartId"`
	TripType      cart.TripType    `json:"tripType"`
	Reference     string           `json:"bookingNo"`
	ActiveSegment int              `json:"activeSegment"`
	Passengers    []cart.Passenger `json:"passengers"`
	// Completed counts passengers whose details are all filled in.
	Completed int           `json:"completedPassengers"`
	Segments  []SegmentView `json:"segments"`
}

type SegmentView struct {
	Index           int                `json:"index"`
	Flight          cart.Descriptor    `json:"flight"`
	ContactEmail    string             `json:"contactEmail"`
	ContactPhone    string             `json:"contactPhone"`
	FareType        cart.FareType      `json:"specialFareType"`
	PassengerCount  int                `json:"passengerCount"`
	TotalAmount     int64              `json:"totalAmount"`
	TotalLabel      string             `json:"totalLabel"`
	Status          cart.BookingStatus `json:"status"`
	JourneyStatus   cart.JourneyStatus `json:"journeyStatus"`
	Seats           []string           `json:"seats"`
	InventoryLoaded bool               `json:"inventoryLoaded"`
}

type SeatView struct {
	cart.Seat
	Selected bool `json:"selected"`
	// Passenger is the roster index holding the seat, -1 if none.
	Passenger int `json:"passenger"`
}

type SeatMapView struct {
	Segment         int        `json:"segment"`
	FlightNumber    string     `json:"flightNumber"`
	InventoryLoaded bool       `json:"inventoryLoaded"`
	Seats           []SeatView `json:"seats"`
}

func (s *CartService) view(id string, c *cart.TripCart) CartView {
	v := CartView{
		ID:            id,
		TripType:      c.TripType,
		Reference:     c.Reference,
		ActiveSegment: c.Active(),
		Passengers:    c.Roster(),
		Completed:     cart.CompletedPassengers(c, s.Booking.RequireDocument),
		Segments:      make([]SegmentView, 0, c.SegmentCount()),
	}
	for i := 0; i < c.SegmentCount(); i++ {
		seg, _ := c.Segment(i)
		v.Segments = append(v.Segments, SegmentView{
			Index:           i,
			Flight:          seg.Flight,
			ContactEmail:    seg.ContactEmail,
			ContactPhone:    seg.ContactPhone,
			FareType:        seg.FareType,
			PassengerCount:  seg.PassengerCount,
			TotalAmount:     seg.TotalAmount,
			TotalLabel:      utils.FormatAmount(utils.Currency, seg.TotalAmount),
			Status:          seg.Status,
			JourneyStatus:   seg.JourneyStatus,
			Seats:           seg.Seats(),
			InventoryLoaded: c.Inventory(i) != nil,
		})
	}
	return v
}

func seatMapView(c *cart.TripCart, seg int) SeatMapView {
	segment, err := c.Segment(seg)
	if err != nil {
		return SeatMapView{Segment: seg}
	}
	inv := c.Inventory(seg)
	out := SeatMapView{
		Segment:         seg,
		FlightNumber:    segment.Flight.FlightNumber,
		InventoryLoaded: inv != nil,
		Seats:           []SeatView{},
	}
	holder := map[string]int{}
	for i, id := range segment.Seats() {
		if id != "" {
			holder[id] = i
		}
	}
	for _, st := range inv.Seats() {
		p, ok := holder[st.ID]
		if !ok {
			p = -1
		}
		out.Seats = append(out.Seats, SeatView{Seat: st, Selected: ok, Passenger: p})
	}
	return out
}

package cart

import (
	"sort"

	"goairline/internal/utils"
)

type SeatStatus string

const (
	SeatAvailable SeatStatus = "AVAILABLE"
	SeatOccupied  SeatStatus = "OCCUPIED"
)

// Seat is one entry of a flight's seat map as returned by seat lookup.
type Seat struct {
	ID          string     `json:"seatNumber"`
	Row         int        `json:"rowNumber"`
	ColumnLabel string     `json:"columnLabel"`
	Status      SeatStatus `json:"seatStatus"`
}

// Inventory is a read-only snapshot of one flight's seats keyed by canonical
// seat id. A nil *Inventory means the seat map has not loaded yet.
type Inventory struct {
	FlightNumber string
	seats        map[string]Seat
	order        []string
}

func NewInventory(flightNumber string, seats []Seat) *Inventory {
	inv := &Inventory{
		FlightNumber: flightNumber,
		seats:        make(map[string]Seat, len(seats)),
		order:        make([]string, 0, len(seats)),
	}
	for _, s := range seats {
		id := utils.NormalizeSeatID(s.ID)
		if id == "" {
			continue
		}
		s.ID = id
		if s.Status != SeatOccupied {
			s.Status = SeatAvailable
		}
		if _, dup := inv.seats[id]; !dup {
			inv.order = append(inv.order, id)
		}
		inv.seats[id] = s
	}
	sort.SliceStable(inv.order, func(i, j int) bool {
		a, b := inv.seats[inv.order[i]], inv.seats[inv.order[j]]
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.ColumnLabel < b.ColumnLabel
	})
	return inv
}

// Lookup returns the seat with the given canonical id.
func (inv *Inventory) Lookup(id string) (Seat, bool) {
	if inv == nil {
		return Seat{}, false
	}
	s, ok := inv.seats[id]
	return s, ok
}

// Seats lists the inventory ordered by row then column.
func (inv *Inventory) Seats() []Seat {
	if inv == nil {
		return nil
	}
	out := make([]Seat, 0, len(inv.order))
	for _, id := range inv.order {
		out = append(out, inv.seats[id])
	}
	return out
}

func (inv *Inventory) Len() int {
	if inv == nil {
		return 0
	}
	return len(inv.order)
}

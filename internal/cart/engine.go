package cart

import "goairline/internal/utils"

type ResultKind string

const (
	ResultAssigned         ResultKind = "ASSIGNED"
	ResultReleased         ResultKind = "RELEASED"
	ResultRejectedOccupied ResultKind = "REJECTED_OCCUPIED"
	ResultRejectedInvalid  ResultKind = "REJECTED_INVALID"
)

// SeatResult reports what a seat click did. Rejections leave the cart as it was.
type SeatResult struct {
	Kind ResultKind `json:"result"`
	Seat string     `json:"seat,omitempty"`
	// Evicted is the seat bumped to make room when everyone was seated.
	Evicted string `json:"evicted,omitempty"`
	// Passenger is the roster index now holding Seat, -1 when nobody does.
	Passenger int `json:"passenger"`
}

func (r SeatResult) OK() bool {
	return r.Kind == ResultAssigned || r.Kind == ResultReleased
}

// Engine toggles seats on a single segment of a cart. The zero value uses
// BindRepack.
type Engine struct {
	Mode BindingMode
}

// SelectActive toggles rawID on the cart's active segment.
func (e Engine) SelectActive(c *TripCart, rawID string) SeatResult {
	return e.SelectSeat(c, c.Active(), rawID)
}

// SelectSeat toggles rawID on segment seg. Selecting a held seat releases it;
// selecting a free seat assigns it, evicting the oldest assignment when every
// passenger already has a seat. Other segments are never touched.
func (e Engine) SelectSeat(c *TripCart, seg int, rawID string) SeatResult {
	id := utils.NormalizeSeatID(rawID)
	if id == "" || seg < 0 || seg >= len(c.segments) {
		return SeatResult{Kind: ResultRejectedInvalid, Seat: id, Passenger: -1}
	}

	inv := c.inventories[seg]
	if inv == nil {
		return SeatResult{Kind: ResultRejectedOccupied, Seat: id, Passenger: -1}
	}
	seat, ok := inv.Lookup(id)
	if !ok {
		return SeatResult{Kind: ResultRejectedInvalid, Seat: id, Passenger: -1}
	}
	if seat.Status == SeatOccupied {
		return SeatResult{Kind: ResultRejectedOccupied, Seat: id, Passenger: -1}
	}

	s := c.segments[seg]
	if e.Mode == BindStable {
		return selectStable(s, id)
	}
	return selectRepack(s, id)
}

func selectRepack(s *Segment, id string) SeatResult {
	assigned := s.Assigned()
	res := SeatResult{Seat: id, Passenger: -1}

	if i := indexOf(assigned, id); i >= 0 {
		assigned = append(assigned[:i], assigned[i+1:]...)
		s.forget(id)
		res.Kind = ResultReleased
	} else {
		if len(assigned) >= len(s.seats) {
			res.Evicted = assigned[0]
			assigned = assigned[1:]
			s.forget(res.Evicted)
		}
		assigned = append(assigned, id)
		s.history = append(s.history, id)
		res.Kind = ResultAssigned
	}

	for i := range s.seats {
		if i < len(assigned) {
			s.seats[i] = assigned[i]
		} else {
			s.seats[i] = ""
		}
	}
	if res.Kind == ResultAssigned {
		res.Passenger = s.slotOf(id)
	}
	return res
}

func selectStable(s *Segment, id string) SeatResult {
	if slot := s.slotOf(id); slot >= 0 {
		s.seats[slot] = ""
		s.forget(id)
		return SeatResult{Kind: ResultReleased, Seat: id, Passenger: -1}
	}

	res := SeatResult{Kind: ResultAssigned, Seat: id}
	slot := s.slotOf("")
	if slot < 0 {
		oldest := s.seats[0]
		if len(s.history) > 0 {
			oldest = s.history[0]
		}
		slot = s.slotOf(oldest)
		res.Evicted = oldest
		s.forget(oldest)
	}
	s.seats[slot] = id
	s.history = append(s.history, id)
	res.Passenger = slot
	return res
}

func indexOf(list []string, v string) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return -1
}

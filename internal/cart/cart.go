package cart

import (
	"fmt"
	"strings"
	"time"

	"goairline/internal/domain"
)

// MaxPassengers is the most passengers one booking may carry.
const MaxPassengers = 9

// Options carries the search form inputs a cart is created from.
type Options struct {
	TripType     TripType
	Passengers   int
	FareType     FareType
	ContactEmail string
	ContactPhone string
	// Reference overrides the generated booking reference (tests, replays).
	Reference       string
	ReferencePrefix string
	Now             func() time.Time
}

// TripCart aggregates the segments of one trip around a single shared roster.
// It is not safe for concurrent use; callers serialise access.
type TripCart struct {
	TripType  TripType
	Reference string

	segments    []*Segment
	inventories []*Inventory
	roster      []Passenger
	active      int
}

// New builds a cart with one segment per leg and a roster of
// opts.Passengers default passengers (at least one, at most MaxPassengers).
func New(legs []Descriptor, opts Options) (*TripCart, error) {
	tripType := opts.TripType
	if tripType == "" {
		tripType = OneWay
	}
	if !tripType.accepts(len(legs)) {
		return nil, domain.ValidationError{Field: "flights", Msg: "segment count does not match trip type " + string(tripType)}
	}
	for _, leg := range legs {
		if strings.TrimSpace(leg.FlightNumber) == "" {
			return nil, domain.ValidationError{Field: "flightNumber", Msg: "required"}
		}
	}

	fare := opts.FareType
	if fare == "" {
		fare = FareNone
	}
	n := opts.Passengers
	if n < 1 {
		n = 1
	}
	if n > MaxPassengers {
		return nil, tooManyPassengers()
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	ref := opts.Reference
	if ref == "" {
		ref = NewReference(opts.ReferencePrefix)
	}

	c := &TripCart{
		TripType:    tripType,
		Reference:   ref,
		segments:    make([]*Segment, 0, len(legs)),
		inventories: make([]*Inventory, len(legs)),
		roster:      make([]Passenger, n),
	}
	bookedAt := now().UTC()
	for _, leg := range legs {
		c.segments = append(c.segments, newSegment(leg, n, fare, bookedAt))
	}
	c.segments[0].ContactEmail = strings.TrimSpace(opts.ContactEmail)
	c.segments[0].ContactPhone = strings.TrimSpace(opts.ContactPhone)
	return c, nil
}

func (c *TripCart) SegmentCount() int { return len(c.segments) }

// Segment returns segment i for reading. Callers must not mutate its vector.
func (c *TripCart) Segment(i int) (*Segment, error) {
	if i < 0 || i >= len(c.segments) {
		return nil, domain.OutOfRangeError{Collection: "segment", Index: i, Len: len(c.segments)}
	}
	return c.segments[i], nil
}

func (c *TripCart) RosterSize() int { return len(c.roster) }

// Roster returns a copy of the passenger list.
func (c *TripCart) Roster() []Passenger {
	out := make([]Passenger, len(c.roster))
	copy(out, c.roster)
	return out
}

func (c *TripCart) Passenger(i int) (Passenger, error) {
	if i < 0 || i >= len(c.roster) {
		return Passenger{}, domain.OutOfRangeError{Collection: "passenger", Index: i, Len: len(c.roster)}
	}
	return c.roster[i], nil
}

// ResizeRoster appends default passengers or truncates from the end. Every
// segment's vector follows in lockstep; seats of dropped passengers are freed.
func (c *TripCart) ResizeRoster(n int) error {
	if n < 1 {
		return domain.ValidationError{Field: "passengers", Msg: "at least one passenger is required"}
	}
	if n > MaxPassengers {
		return tooManyPassengers()
	}
	switch {
	case n > len(c.roster):
		c.roster = append(c.roster, make([]Passenger, n-len(c.roster))...)
	case n < len(c.roster):
		c.roster = c.roster[:n]
	}
	for _, s := range c.segments {
		s.resize(n)
	}
	return nil
}

// AddPassenger appends one default passenger and returns its index.
func (c *TripCart) AddPassenger() (int, error) {
	n := len(c.roster) + 1
	if err := c.ResizeRoster(n); err != nil {
		return -1, err
	}
	return n - 1, nil
}

func tooManyPassengers() error {
	return domain.ValidationError{Field: "passengers", Msg: fmt.Sprintf("at most %d passengers per booking", MaxPassengers)}
}

// RemovePassenger deletes roster index i on every segment; later passengers
// move down one index together with their seats.
func (c *TripCart) RemovePassenger(i int) error {
	if i < 0 || i >= len(c.roster) {
		return domain.OutOfRangeError{Collection: "passenger", Index: i, Len: len(c.roster)}
	}
	if len(c.roster) == 1 {
		return domain.ValidationError{Field: "passengers", Msg: "at least one passenger is required"}
	}
	c.roster = append(c.roster[:i], c.roster[i+1:]...)
	for _, s := range c.segments {
		s.removeSlot(i)
	}
	return nil
}

func (c *TripCart) UpdatePassenger(i int, field Field, value string) error {
	if i < 0 || i >= len(c.roster) {
		return domain.OutOfRangeError{Collection: "passenger", Index: i, Len: len(c.roster)}
	}
	return c.roster[i].set(field, value)
}

// SetContact edits the contact and fare type of one segment only.
func (c *TripCart) SetContact(seg int, email, phone string, fare FareType) error {
	s, err := c.Segment(seg)
	if err != nil {
		return err
	}
	s.ContactEmail = strings.TrimSpace(email)
	s.ContactPhone = strings.TrimSpace(phone)
	if fare != "" {
		s.FareType = fare
	}
	return nil
}

// SeedContact copies the first segment's contact into every later segment
// that has none yet. It is a one-time default, not a sync.
func (c *TripCart) SeedContact() int {
	first := c.segments[0]
	seeded := 0
	for _, s := range c.segments[1:] {
		if s.ContactEmail != "" || s.ContactPhone != "" {
			continue
		}
		s.ContactEmail = first.ContactEmail
		s.ContactPhone = first.ContactPhone
		seeded++
	}
	return seeded
}

func (c *TripCart) Active() int { return c.active }

func (c *TripCart) ActiveSegment() *Segment { return c.segments[c.active] }

// Advance moves to the next segment. It is a no-op on the last one.
func (c *TripCart) Advance() bool {
	if c.active >= len(c.segments)-1 {
		return false
	}
	c.active++
	return true
}

// Retreat moves to the previous segment. It is a no-op on the first one.
func (c *TripCart) Retreat() bool {
	if c.active <= 0 {
		return false
	}
	c.active--
	return true
}

// SetInventory installs the latest seat snapshot for segment seg.
func (c *TripCart) SetInventory(seg int, inv *Inventory) error {
	if _, err := c.Segment(seg); err != nil {
		return err
	}
	c.inventories[seg] = inv
	return nil
}

// Inventory returns the loaded snapshot for seg, or nil.
func (c *TripCart) Inventory(seg int) *Inventory {
	if seg < 0 || seg >= len(c.inventories) {
		return nil
	}
	return c.inventories[seg]
}

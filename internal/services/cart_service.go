package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"goairline/internal/cart"
	"goairline/internal/domain"
	"goairline/internal/domain/models"
	"goairline/internal/metrics"
	"goairline/internal/utils"

	"github.com/google/uuid"
)

// FlightLookup resolves the flights chosen in search results.
type FlightLookup interface {
	GetByNumbers(ctx context.Context, flightNumbers []string) ([]cart.Descriptor, error)
}

// SeatLookup returns the current seat map of a flight.
type SeatLookup interface {
	ListByFlight(ctx context.Context, flightNumber string) ([]cart.Seat, error)
}

// CreateCartInput is what the search form hands over when the user proceeds.
type CreateCartInput struct {
	TripType      string
	FlightNumbers []string
	Passengers    int
	FareType      string
	ContactEmail  string
	ContactPhone  string
}

// CartService keeps live carts in memory and applies user actions to them
// one at a time per cart.
type CartService struct {
	Flights         FlightLookup
	Seats           SeatLookup
	Booking         BookingService
	Engine          cart.Engine
	ReferencePrefix string
	IdleTTL         time.Duration
	Metrics         *metrics.Metrics
	Now             func() time.Time

	mu       sync.RWMutex
	sessions map[string]*cartSession
}

type cartSession struct {
	mu      sync.Mutex
	cart    *cart.TripCart
	touched time.Time
	// closed is set once the cart is submitted or dropped; callers already
	// queued on mu must not act on it.
	closed bool
}

func (s *CartService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create builds a cart for the chosen flights and loads every segment's seat
// map. A seat map that fails to load stays empty; selections on that segment
// are rejected until RefreshInventory succeeds.
func (s *CartService) Create(ctx context.Context, in CreateCartInput) (CartView, error) {
	tripType, ok := cart.ParseTripType(in.TripType)
	if !ok {
		return CartView{}, domain.ValidationError{Field: "tripType", Msg: "unknown trip type " + in.TripType}
	}
	fare, ok := cart.ParseFareType(in.FareType)
	if !ok {
		return CartView{}, domain.ValidationError{Field: "specialFareType", Msg: "unknown fare type " + in.FareType}
	}
	if len(in.FlightNumbers) == 0 {
		return CartView{}, domain.ValidationError{Field: "flightNumbers", Msg: "at least one flight is required"}
	}
	if s.Flights == nil {
		return CartView{}, domain.InternalError{Msg: "flight lookup not configured"}
	}

	legs, err := s.Flights.GetByNumbers(ctx, in.FlightNumbers)
	if err != nil {
		return CartView{}, err
	}
	c, err := cart.New(legs, cart.Options{
		TripType:        tripType,
		Passengers:      in.Passengers,
		FareType:        fare,
		ContactEmail:    in.ContactEmail,
		ContactPhone:    in.ContactPhone,
		ReferencePrefix: s.ReferencePrefix,
		Now:             s.Now,
	})
	if err != nil {
		return CartView{}, err
	}
	for i := 0; i < c.SegmentCount(); i++ {
		s.loadInventory(ctx, c, i)
	}

	id := uuid.NewString()
	s.mu.Lock()
	if s.sessions == nil {
		s.sessions = map[string]*cartSession{}
	}
	s.sessions[id] = &cartSession{cart: c, touched: s.now()}
	s.mu.Unlock()
	if s.Metrics != nil {
		s.Metrics.ActiveCarts.Inc()
	}

	utils.LogEvent(utils.RequestIDFrom(ctx), "cart", "create",
		fmt.Sprintf("cart_id=%s reference=%s trip=%s segments=%d passengers=%d", id, c.Reference, c.TripType, c.SegmentCount(), c.RosterSize()))
	return s.view(id, c), nil
}

// loadInventory fetches one segment's seat map; failures leave it unloaded.
func (s *CartService) loadInventory(ctx context.Context, c *cart.TripCart, seg int) error {
	if s.Seats == nil {
		return domain.InternalError{Msg: "seat lookup not configured"}
	}
	segment, err := c.Segment(seg)
	if err != nil {
		return err
	}
	seats, err := s.Seats.ListByFlight(ctx, segment.Flight.FlightNumber)
	if err != nil {
		utils.L().Warnw("seat map not loaded",
			"module", "cart", "request_id", utils.RequestIDFrom(ctx),
			"flight", segment.Flight.FlightNumber, "error", err)
		return err
	}
	return c.SetInventory(seg, cart.NewInventory(segment.Flight.FlightNumber, seats))
}

// with runs fn on the cart under its session lock.
func (s *CartService) with(id string, fn func(c *cart.TripCart) error) (CartView, error) {
	return s.withSession(id, func(sess *cartSession) error { return fn(sess.cart) })
}

func (s *CartService) withSession(id string, fn func(sess *cartSession) error) (CartView, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return CartView{}, domain.NotFoundError{Resource: "cart"}
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return CartView{}, domain.NotFoundError{Resource: "cart"}
	}
	sess.touched = s.now()
	if err := fn(sess); err != nil {
		return CartView{}, err
	}
	return s.view(id, sess.cart), nil
}

func (s *CartService) Get(ctx context.Context, id string) (CartView, error) {
	return s.with(id, func(*cart.TripCart) error { return nil })
}

// Discard drops the cart, e.g. when the user navigates away.
func (s *CartService) Discard(ctx context.Context, id string) error {
	sess, ok := s.drop(ctx, id, "discard")
	if !ok {
		return domain.NotFoundError{Resource: "cart"}
	}
	sess.mu.Lock()
	sess.closed = true
	sess.mu.Unlock()
	return nil
}

// drop removes id from the session map. Callers must not hold a session lock:
// Sweep takes s.mu before session locks.
func (s *CartService) drop(ctx context.Context, id, reason string) (*cartSession, bool) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return nil, false
	}
	if s.Metrics != nil {
		s.Metrics.ActiveCarts.Dec()
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "cart", reason, "cart_id="+id)
	return sess, true
}

func (s *CartService) ResizeRoster(ctx context.Context, id string, n int) (CartView, error) {
	return s.with(id, func(c *cart.TripCart) error { return c.ResizeRoster(n) })
}

func (s *CartService) AddPassenger(ctx context.Context, id string) (CartView, error) {
	return s.with(id, func(c *cart.TripCart) error {
		_, err := c.AddPassenger()
		return err
	})
}

func (s *CartService) RemovePassenger(ctx context.Context, id string, index int) (CartView, error) {
	return s.with(id, func(c *cart.TripCart) error { return c.RemovePassenger(index) })
}

func (s *CartService) UpdatePassenger(ctx context.Context, id string, index int, field, value string) (CartView, error) {
	f, ok := cart.ParseField(field)
	if !ok {
		return CartView{}, domain.ValidationError{Field: "field", Msg: "unknown passenger field " + field}
	}
	return s.with(id, func(c *cart.TripCart) error { return c.UpdatePassenger(index, f, value) })
}

func (s *CartService) SetContact(ctx context.Context, id string, seg int, email, phone, fareType string) (CartView, error) {
	var fare cart.FareType
	if strings.TrimSpace(fareType) != "" {
		var ok bool
		if fare, ok = cart.ParseFareType(fareType); !ok {
			return CartView{}, domain.ValidationError{Field: "specialFareType", Msg: "unknown fare type " + fareType}
		}
	}
	return s.with(id, func(c *cart.TripCart) error { return c.SetContact(seg, email, phone, fare) })
}

func (s *CartService) SeedContact(ctx context.Context, id string) (CartView, error) {
	return s.with(id, func(c *cart.TripCart) error {
		c.SeedContact()
		return nil
	})
}

func (s *CartService) Advance(ctx context.Context, id string) (CartView, error) {
	return s.with(id, func(c *cart.TripCart) error {
		c.Advance()
		return nil
	})
}

func (s *CartService) Retreat(ctx context.Context, id string) (CartView, error) {
	return s.with(id, func(c *cart.TripCart) error {
		c.Retreat()
		return nil
	})
}

// SelectSeat toggles a seat on segment seg, or on the active segment when
// seg is nil. Engine rejections are returned in the result, not as errors.
func (s *CartService) SelectSeat(ctx context.Context, id string, seg *int, seatID string) (cart.SeatResult, CartView, error) {
	var res cart.SeatResult
	view, err := s.with(id, func(c *cart.TripCart) error {
		if seg == nil {
			res = s.Engine.SelectActive(c, seatID)
		} else {
			res = s.Engine.SelectSeat(c, *seg, seatID)
		}
		return nil
	})
	if err != nil {
		return res, view, err
	}
	if s.Metrics != nil {
		s.Metrics.SeatSelections.WithLabelValues(string(res.Kind)).Inc()
	}
	if !res.OK() {
		utils.LogEvent(utils.RequestIDFrom(ctx), "cart", "select_seat",
			fmt.Sprintf("cart_id=%s seat=%s result=%s", id, res.Seat, res.Kind))
	}
	return res, view, nil
}

// RefreshInventory re-fetches the active segment's seat map.
func (s *CartService) RefreshInventory(ctx context.Context, id string) (CartView, error) {
	return s.with(id, func(c *cart.TripCart) error {
		if err := s.loadInventory(ctx, c, c.Active()); err != nil {
			return domain.UpstreamError{Op: "load seat map", Err: err}
		}
		return nil
	})
}

// SeatMap lists the active segment's seats with their selection state.
func (s *CartService) SeatMap(ctx context.Context, id string) (SeatMapView, error) {
	var out SeatMapView
	_, err := s.with(id, func(c *cart.TripCart) error {
		out = seatMapView(c, c.Active())
		return nil
	})
	return out, err
}

// Validate reports the first rule blocking submission, nil when complete.
func (s *CartService) Validate(ctx context.Context, id string) (issue error, err error) {
	_, err = s.with(id, func(c *cart.TripCart) error {
		issue = s.Booking.Validate(c)
		return nil
	})
	return issue, err
}

func (s *CartService) Payload(ctx context.Context, id string) (cart.Payload, error) {
	var p cart.Payload
	_, err := s.with(id, func(c *cart.TripCart) error {
		p = s.Booking.Payload(c)
		return nil
	})
	return p, err
}

// Submit hands the cart to the booking store. The cart is closed only when
// the store confirms; on failure it stays editable for a manual retry. A
// submit queued behind a successful one sees the cart as gone.
func (s *CartService) Submit(ctx context.Context, id string, userID int64) (models.Confirmation, error) {
	var conf models.Confirmation
	_, err := s.withSession(id, func(sess *cartSession) error {
		var err error
		if conf, err = s.Booking.Submit(ctx, sess.cart, userID); err != nil {
			return err
		}
		sess.closed = true
		return nil
	})
	if err != nil {
		return conf, err
	}
	s.drop(ctx, id, "submit")
	return conf, nil
}

// Sweep discards carts idle for longer than IdleTTL and returns how many.
func (s *CartService) Sweep(now time.Time) int {
	if s.IdleTTL <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := now.Sub(sess.touched) > s.IdleTTL
		if idle {
			sess.closed = true
		}
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			n++
		}
	}
	if n > 0 && s.Metrics != nil {
		s.Metrics.ActiveCarts.Sub(float64(n))
	}
	return n
}

// RunJanitor sweeps idle carts every interval until ctx is done.
func (s *CartService) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(s.now()); n > 0 {
				utils.L().Infow("idle carts discarded", "module", "cart", "count", n)
			}
		}
	}
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"goairline/internal/cart"
	"goairline/internal/domain"
	"goairline/internal/domain/models"
	"goairline/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type fakeStore struct {
	calls   int
	last    cart.Payload
	userID  int64
	err     error
	confirm models.Confirmation
}

func (f *fakeStore) Create(_ context.Context, userID int64, p cart.Payload) (models.Confirmation, error) {
	f.calls++
	f.last = p
	f.userID = userID
	if f.err != nil {
		return models.Confirmation{}, f.err
	}
	if f.confirm.BookingNo == "" {
		f.confirm = models.Confirmation{BookingNo: p.Reference, Status: "PENDING", CreatedAt: time.Now()}
	}
	return f.confirm, nil
}

func readyCart(t *testing.T) *cart.TripCart {
	t.Helper()
	c, err := cart.New([]cart.Descriptor{{FlightNumber: "GA100", Price: 5000}}, cart.Options{
		TripType:   cart.OneWay,
		Passengers: 1,
		Reference:  "GOATEST01",
	})
	if err != nil {
		t.Fatalf("cart.New: %v", err)
	}
	if err := c.SetInventory(0, cart.NewInventory("GA100", []cart.Seat{{ID: "1A", Row: 1, ColumnLabel: "A", Status: cart.SeatAvailable}})); err != nil {
		t.Fatal(err)
	}
	cart.Engine{}.SelectSeat(c, 0, "1A")
	for f, v := range map[cart.Field]string{cart.FieldName: "Ana", cart.FieldAge: "30", cart.FieldGender: "FEMALE", cart.FieldTravelDocument: "P1"} {
		if err := c.UpdatePassenger(0, f, v); err != nil {
			t.Fatal(err)
		}
	}
	return c
}

func TestBookingSubmitIncompleteCart(t *testing.T) {
	c := readyCart(t)
	_ = c.UpdatePassenger(0, cart.FieldName, "")
	store := &fakeStore{}
	m := metrics.New("test", prometheus.NewRegistry())
	svc := BookingService{Store: store, RequireDocument: true, Metrics: m}

	_, err := svc.Submit(context.Background(), c, 1)
	if !domain.IsIncompleteCart(err) {
		t.Fatalf("expected incomplete cart error, got %v", err)
	}
	if store.calls != 0 {
		t.Fatalf("store must not be called for incomplete carts")
	}
	if got := testutil.ToFloat64(m.Submissions.WithLabelValues("incomplete")); got != 1 {
		t.Fatalf("incomplete submissions = %v", got)
	}
}

func TestBookingSubmitWrapsStoreError(t *testing.T) {
	boom := errors.New("connection reset")
	store := &fakeStore{err: boom}
	svc := BookingService{Store: store, RequireDocument: true}

	_, err := svc.Submit(context.Background(), readyCart(t), 1)
	if !domain.IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("upstream error should wrap the store error")
	}
	if store.calls != 1 {
		t.Fatalf("store called %d times, want exactly 1", store.calls)
	}
}

func TestBookingSubmitSuccess(t *testing.T) {
	store := &fakeStore{}
	m := metrics.New("test", prometheus.NewRegistry())
	svc := BookingService{Store: store, RequireDocument: true, Metrics: m}

	conf, err := svc.Submit(context.Background(), readyCart(t), 42)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if conf.BookingNo != "GOATEST01" || store.userID != 42 {
		t.Fatalf("unexpected confirmation %+v user %d", conf, store.userID)
	}
	if len(store.last.Segments) != 1 || store.last.Segments[0].Passengers[0].SeatNo != "1A" {
		t.Fatalf("unexpected payload %+v", store.last)
	}
	if got := testutil.ToFloat64(m.Submissions.WithLabelValues("ok")); got != 1 {
		t.Fatalf("ok submissions = %v", got)
	}
}

func TestBookingSubmitWithoutStore(t *testing.T) {
	_, err := BookingService{}.Submit(context.Background(), readyCart(t), 1)
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

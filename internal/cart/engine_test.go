package cart

import (
	"reflect"
	"testing"
	"time"
)

func testCart(t *testing.T, tripType TripType, legs, passengers int) *TripCart {
	t.Helper()
	descs := make([]Descriptor, legs)
	for i := range descs {
		descs[i] = Descriptor{FlightNumber: "GA10" + string(rune('0'+i)), AircraftSize: AircraftMedium, Price: 5000}
	}
	c, err := New(descs, Options{
		TripType:   tripType,
		Passengers: passengers,
		Reference:  "GOATEST01",
		Now:        func() time.Time { return time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return c
}

func seatsAvailable(ids ...string) []Seat {
	out := make([]Seat, 0, len(ids))
	for i, id := range ids {
		out = append(out, Seat{ID: id, Row: 1 + i/6, ColumnLabel: string(rune('A' + i%6)), Status: SeatAvailable})
	}
	return out
}

func loadAll(t *testing.T, c *TripCart, seats []Seat) {
	t.Helper()
	for i := 0; i < c.SegmentCount(); i++ {
		if err := c.SetInventory(i, NewInventory("X", seats)); err != nil {
			t.Fatalf("SetInventory(%d): %v", i, err)
		}
	}
}

func vector(t *testing.T, c *TripCart, seg int) []string {
	t.Helper()
	s, err := c.Segment(seg)
	if err != nil {
		t.Fatalf("Segment(%d): %v", seg, err)
	}
	return s.Seats()
}

func TestSelectSeatExampleScenario(t *testing.T) {
	c := testCart(t, OneWay, 1, 1)
	loadAll(t, c, []Seat{
		{ID: "A1", Row: 1, ColumnLabel: "A", Status: SeatAvailable},
		{ID: "A2", Row: 1, ColumnLabel: "B", Status: SeatOccupied},
	})
	var e Engine

	if res := e.SelectSeat(c, 0, "A2"); res.Kind != ResultRejectedOccupied {
		t.Fatalf("occupied seat: got %s", res.Kind)
	}
	if got := vector(t, c, 0); !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("after occupied: got %q", got)
	}

	res := e.SelectSeat(c, 0, "A1")
	if res.Kind != ResultAssigned || res.Passenger != 0 {
		t.Fatalf("select A1: got %+v", res)
	}
	if got := vector(t, c, 0); !reflect.DeepEqual(got, []string{"A1"}) {
		t.Fatalf("after select: got %q", got)
	}

	if res := e.SelectSeat(c, 0, "A1"); res.Kind != ResultReleased {
		t.Fatalf("reselect A1: got %s", res.Kind)
	}
	if got := vector(t, c, 0); !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("after deselect: got %q", got)
	}
}

func TestSelectSeatEvictsOldest(t *testing.T) {
	c := testCart(t, OneWay, 1, 2)
	loadAll(t, c, seatsAvailable("X", "Y", "Z"))
	var e Engine

	e.SelectSeat(c, 0, "X")
	e.SelectSeat(c, 0, "Y")
	res := e.SelectSeat(c, 0, "Z")
	if res.Kind != ResultAssigned || res.Evicted != "X" {
		t.Fatalf("expected X evicted, got %+v", res)
	}
	if got := vector(t, c, 0); !reflect.DeepEqual(got, []string{"Y", "Z"}) {
		t.Fatalf("got %q want [Y Z]", got)
	}
}

func TestSelectSeatOverflowKeepsCount(t *testing.T) {
	for k := 1; k <= 4; k++ {
		c := testCart(t, OneWay, 1, k)
		ids := []string{"1A", "1B", "1C", "1D", "1E"}
		loadAll(t, c, seatsAvailable(ids...))
		var e Engine
		for _, id := range ids[:k] {
			e.SelectSeat(c, 0, id)
		}
		e.SelectSeat(c, 0, ids[k])

		s, _ := c.Segment(0)
		assigned := s.Assigned()
		if len(assigned) != k {
			t.Fatalf("k=%d: got %d assigned", k, len(assigned))
		}
		if s.Holds(ids[0]) {
			t.Fatalf("k=%d: oldest seat %s still assigned: %q", k, ids[0], assigned)
		}
		if !s.Holds(ids[k]) {
			t.Fatalf("k=%d: new seat %s missing", k, ids[k])
		}
	}
}

func TestSelectSeatTwiceIsIdentity(t *testing.T) {
	c := testCart(t, OneWay, 1, 3)
	loadAll(t, c, seatsAvailable("1A", "1B", "1C", "1D"))
	var e Engine
	e.SelectSeat(c, 0, "1A")
	e.SelectSeat(c, 0, "1B")
	before := vector(t, c, 0)

	e.SelectSeat(c, 0, "1C")
	e.SelectSeat(c, 0, "1C")

	if got := vector(t, c, 0); !reflect.DeepEqual(got, before) {
		t.Fatalf("got %q want %q", got, before)
	}
}

func TestSelectSeatNormalizesID(t *testing.T) {
	c := testCart(t, OneWay, 1, 1)
	loadAll(t, c, seatsAvailable("12a"))
	res := Engine{}.SelectSeat(c, 0, "  12A ")
	if res.Kind != ResultAssigned || res.Seat != "12A" {
		t.Fatalf("got %+v", res)
	}
}

func TestSelectSeatRejections(t *testing.T) {
	c := testCart(t, RoundTrip, 2, 1)
	if err := c.SetInventory(0, NewInventory("GA100", seatsAvailable("1A"))); err != nil {
		t.Fatal(err)
	}
	var e Engine

	cases := []struct {
		name string
		seg  int
		id   string
		want ResultKind
	}{
		{"empty id", 0, "  ", ResultRejectedInvalid},
		{"negative segment", -1, "1A", ResultRejectedInvalid},
		{"segment past end", 2, "1A", ResultRejectedInvalid},
		{"unknown seat", 0, "99Z", ResultRejectedInvalid},
		{"inventory not loaded", 1, "1A", ResultRejectedOccupied},
	}
	for _, tc := range cases {
		res := e.SelectSeat(c, tc.seg, tc.id)
		if res.Kind != tc.want {
			t.Fatalf("%s: got %s want %s", tc.name, res.Kind, tc.want)
		}
		if res.OK() {
			t.Fatalf("%s: rejection reported OK", tc.name)
		}
	}
	for seg := 0; seg < 2; seg++ {
		if got := vector(t, c, seg); !reflect.DeepEqual(got, []string{""}) {
			t.Fatalf("segment %d changed: %q", seg, got)
		}
	}
}

func TestOccupiedSeatNeverChangesAnySegment(t *testing.T) {
	c := testCart(t, MultiCity, 3, 2)
	seats := append(seatsAvailable("1A", "1B"), Seat{ID: "2A", Row: 2, ColumnLabel: "A", Status: SeatOccupied})
	loadAll(t, c, seats)
	var e Engine
	e.SelectSeat(c, 0, "1A")
	e.SelectSeat(c, 1, "1B")

	before := [][]string{vector(t, c, 0), vector(t, c, 1), vector(t, c, 2)}
	for seg := 0; seg < 3; seg++ {
		if res := e.SelectSeat(c, seg, "2A"); res.Kind != ResultRejectedOccupied {
			t.Fatalf("segment %d: got %s", seg, res.Kind)
		}
	}
	after := [][]string{vector(t, c, 0), vector(t, c, 1), vector(t, c, 2)}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("vectors changed: before %q after %q", before, after)
	}
}

func TestRoundTripSegmentsAreIndependent(t *testing.T) {
	c := testCart(t, RoundTrip, 2, 2)
	loadAll(t, c, seatsAvailable("A", "B", "C", "D", "E"))
	var e Engine
	e.SelectSeat(c, 0, "A")
	e.SelectSeat(c, 0, "B")
	e.SelectSeat(c, 1, "C")
	e.SelectSeat(c, 1, "D")

	want := []string{"C", "D"}
	if got := vector(t, c, 1); !reflect.DeepEqual(got, want) {
		t.Fatalf("segment 1: got %q", got)
	}

	e.SelectSeat(c, 0, "E")
	e.SelectSeat(c, 0, "B")
	e.SelectSeat(c, 0, "C")

	if got := vector(t, c, 1); !reflect.DeepEqual(got, want) {
		t.Fatalf("segment 1 changed after segment 0 edits: got %q", got)
	}
}

func TestSelectActiveFollowsNavigation(t *testing.T) {
	c := testCart(t, RoundTrip, 2, 1)
	loadAll(t, c, seatsAvailable("1A", "2A"))
	var e Engine

	e.SelectActive(c, "1A")
	c.Advance()
	e.SelectActive(c, "2A")

	if got := vector(t, c, 0); !reflect.DeepEqual(got, []string{"1A"}) {
		t.Fatalf("segment 0: %q", got)
	}
	if got := vector(t, c, 1); !reflect.DeepEqual(got, []string{"2A"}) {
		t.Fatalf("segment 1: %q", got)
	}
}

func TestRepackShiftsPassengerOnEviction(t *testing.T) {
	c := testCart(t, OneWay, 1, 2)
	loadAll(t, c, seatsAvailable("A", "B", "C"))
	var e Engine
	e.SelectSeat(c, 0, "A")
	e.SelectSeat(c, 0, "B")
	res := e.SelectSeat(c, 0, "C")

	// passenger 1 held B, after repack passenger 0 holds B
	if got := vector(t, c, 0); !reflect.DeepEqual(got, []string{"B", "C"}) {
		t.Fatalf("got %q", got)
	}
	if res.Passenger != 1 {
		t.Fatalf("C should land on passenger 1, got %d", res.Passenger)
	}
}

func TestStableBindingKeepsPassengerSeat(t *testing.T) {
	c := testCart(t, OneWay, 1, 3)
	loadAll(t, c, seatsAvailable("A", "B", "C", "D"))
	e := Engine{Mode: BindStable}

	e.SelectSeat(c, 0, "A")
	e.SelectSeat(c, 0, "B")
	e.SelectSeat(c, 0, "C")

	// releasing B leaves a hole for passenger 1 only
	e.SelectSeat(c, 0, "B")
	if got := vector(t, c, 0); !reflect.DeepEqual(got, []string{"A", "", "C"}) {
		t.Fatalf("after release: %q", got)
	}

	res := e.SelectSeat(c, 0, "D")
	if res.Passenger != 1 || res.Evicted != "" {
		t.Fatalf("D should fill the hole: %+v", res)
	}

	// full: oldest assignment (A, passenger 0) is replaced in place
	res = e.SelectSeat(c, 0, "B")
	if res.Evicted != "A" || res.Passenger != 0 {
		t.Fatalf("expected A evicted from passenger 0: %+v", res)
	}
	if got := vector(t, c, 0); !reflect.DeepEqual(got, []string{"B", "D", "C"}) {
		t.Fatalf("after eviction: %q", got)
	}

	// next oldest is C (passenger 2)
	e.SelectSeat(c, 0, "A")
	if got := vector(t, c, 0); !reflect.DeepEqual(got, []string{"B", "D", "A"}) {
		t.Fatalf("second eviction: %q", got)
	}
}

func TestStableBindingTwiceIsIdentity(t *testing.T) {
	c := testCart(t, OneWay, 1, 2)
	loadAll(t, c, seatsAvailable("A", "B", "C"))
	e := Engine{Mode: BindStable}
	e.SelectSeat(c, 0, "A")
	before := vector(t, c, 0)
	e.SelectSeat(c, 0, "C")
	e.SelectSeat(c, 0, "C")
	if got := vector(t, c, 0); !reflect.DeepEqual(got, before) {
		t.Fatalf("got %q want %q", got, before)
	}
}

package cart

import (
	"encoding/json"
	"errors"
	"testing"

	"goairline/internal/domain"
)

func fillPassenger(t *testing.T, c *TripCart, i int, name, doc string) {
	t.Helper()
	for f, v := range map[Field]string{FieldName: name, FieldAge: "30", FieldGender: "MALE", FieldTravelDocument: doc} {
		if err := c.UpdatePassenger(i, f, v); err != nil {
			t.Fatalf("UpdatePassenger(%d,%s): %v", i, f, err)
		}
	}
}

func completeRoundTrip(t *testing.T) *TripCart {
	t.Helper()
	c := testCart(t, RoundTrip, 2, 2)
	loadAll(t, c, seatsAvailable("1A", "1B", "2A", "2B"))
	var e Engine
	e.SelectSeat(c, 0, "1A")
	e.SelectSeat(c, 0, "1B")
	e.SelectSeat(c, 1, "2A")
	e.SelectSeat(c, 1, "2B")
	fillPassenger(t, c, 0, "Ana", "P1")
	fillPassenger(t, c, 1, "Budi", "P2")
	return c
}

func TestValidateCompleteCart(t *testing.T) {
	c := completeRoundTrip(t)
	if err := Validate(c, true); err != nil {
		t.Fatalf("expected valid cart, got %v", err)
	}
}

func TestValidateReportsMissingSeatFirst(t *testing.T) {
	c := completeRoundTrip(t)
	_ = c.UpdatePassenger(0, FieldName, "")
	Engine{}.SelectSeat(c, 1, "2B")

	err := Validate(c, true)
	var ic domain.IncompleteCartError
	if !errors.As(err, &ic) {
		t.Fatalf("expected IncompleteCartError, got %v", err)
	}
	if ic.Segment != 1 || ic.Passenger != 1 || ic.Field != "seat" {
		t.Fatalf("got %+v", ic)
	}
}

func TestValidateReportsPassengerField(t *testing.T) {
	cases := []struct {
		field Field
		value string
	}{
		{FieldName, ""},
		{FieldAge, ""},
		{FieldGender, "SELECT GENDER"},
		{FieldTravelDocument, ""},
	}
	for _, tc := range cases {
		c := completeRoundTrip(t)
		if err := c.UpdatePassenger(1, tc.field, tc.value); err != nil {
			t.Fatal(err)
		}
		err := Validate(c, true)
		var ic domain.IncompleteCartError
		if !errors.As(err, &ic) {
			t.Fatalf("%s: expected IncompleteCartError, got %v", tc.field, err)
		}
		if ic.Segment != -1 || ic.Passenger != 1 || ic.Field != string(tc.field) {
			t.Fatalf("%s: got %+v", tc.field, ic)
		}
	}
}

func TestValidateDocumentOptional(t *testing.T) {
	c := completeRoundTrip(t)
	_ = c.UpdatePassenger(0, FieldTravelDocument, "")
	if err := Validate(c, false); err != nil {
		t.Fatalf("document not required: got %v", err)
	}
	if CompletedPassengers(c, true) != 1 || CompletedPassengers(c, false) != 2 {
		t.Fatalf("unexpected completed counts")
	}
}

func TestPayloadOneWayIsObject(t *testing.T) {
	c := testCart(t, OneWay, 1, 1)
	loadAll(t, c, seatsAvailable("3C"))
	Engine{}.SelectSeat(c, 0, "3C")
	fillPassenger(t, c, 0, "Ana", "P1")

	raw, err := json.Marshal(ToPayload(c))
	if err != nil {
		t.Fatal(err)
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		t.Fatalf("one-way payload should be an object: %s", raw)
	}
	if obj["bookingNo"] != "GOATEST01" || obj["tripType"] != "ONE_WAY" {
		t.Fatalf("unexpected payload: %s", raw)
	}
	ps := obj["passengers"].([]any)
	p := ps[0].(map[string]any)
	if p["seatNo"] != "3C" || p["passportNumber"] != "P1" || p["name"] != "Ana" {
		t.Fatalf("unexpected passenger: %v", p)
	}
}

func TestPayloadRoundTripIsOrderedArray(t *testing.T) {
	c := completeRoundTrip(t)
	raw, err := json.Marshal(ToPayload(c))
	if err != nil {
		t.Fatal(err)
	}
	var segs []SegmentPayload
	if err := json.Unmarshal(raw, &segs); err != nil {
		t.Fatalf("round-trip payload should be an array: %s", raw)
	}
	if len(segs) != 2 || segs[0].FlightNumber != "GA100" || segs[1].FlightNumber != "GA101" {
		t.Fatalf("segment order: %+v", segs)
	}
	for i, s := range segs {
		if s.BookingNo != "GOATEST01" || s.PassengerCount != 2 || s.TotalAmount != 10000 {
			t.Fatalf("segment %d: %+v", i, s)
		}
		if s.Passengers[0].Name != "Ana" || s.Passengers[1].Name != "Budi" {
			t.Fatalf("segment %d names: %+v", i, s.Passengers)
		}
	}
	if segs[0].Passengers[1].SeatNo != "1B" || segs[1].Passengers[1].SeatNo != "2B" {
		t.Fatalf("seats not per segment: %+v / %+v", segs[0].Passengers, segs[1].Passengers)
	}
}

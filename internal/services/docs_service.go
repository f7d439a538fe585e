package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"goairline/internal/domain"
	"goairline/internal/domain/models"
	"goairline/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// BookingReader loads the stored segments of a booking reference.
type BookingReader interface {
	GetByReference(ctx context.Context, ref string) ([]models.StoredBooking, error)
}

// DocsService menghasilkan PDF e-ticket per booking reference.
type DocsService struct {
	Bookings BookingReader
}

// GenerateETicket renders every segment of ref on one PDF. A non-zero userID
// must own every segment; otherwise the booking is reported as not found.
// Segments of one reference with mixed owners are never rendered.
func (s DocsService) GenerateETicket(ctx context.Context, ref string, userID int64) ([]byte, string, error) {
	if s.Bookings == nil {
		return nil, "", domain.InternalError{Msg: "booking reader not configured"}
	}
	segs, err := s.Bookings.GetByReference(ctx, ref)
	if err != nil {
		return nil, "", err
	}
	if len(segs) == 0 {
		return nil, "", domain.NotFoundError{Resource: "booking " + ref}
	}
	owner := userID
	if owner == 0 {
		owner = segs[0].UserID
	}
	for _, b := range segs {
		if b.UserID != owner {
			return nil, "", domain.NotFoundError{Resource: "booking " + ref}
		}
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "docs", "generate_eticket",
		fmt.Sprintf("reference=%s segments=%d", segs[0].BookingNo, len(segs)))
	return buildETicketPDF(segs)
}

func buildETicketPDF(segs []models.StoredBooking) ([]byte, string, error) {
	ref := segs[0].BookingNo
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket "+ref, false)

	for i, b := range segs {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 18)
		pdf.Cell(0, 10, "E-TICKET")
		pdf.Ln(12)

		pdf.SetFont("Helvetica", "", 12)
		lines := []string{
			fmt.Sprintf("Booking No     : %s", ref),
			fmt.Sprintf("Segment        : %d of %d (%s)", i+1, len(segs), safe(b.TripType, "-")),
			fmt.Sprintf("Flight         : %s %s", safe(b.FlightNumber, "-"), b.Airline),
			fmt.Sprintf("Route          : %s -> %s", safe(b.SourceAirport, "-"), safe(b.DestinationAirport, "-")),
			fmt.Sprintf("Departure      : %s %s", safe(utils.DateOnly(b.DepartureDate), "-"), safe(utils.ClockHM(b.DepartureTime), "-")),
			fmt.Sprintf("Arrival        : %s %s", safe(utils.DateOnly(b.ArrivalDate), "-"), safe(utils.ClockHM(b.ArrivalTime), "-")),
			fmt.Sprintf("Contact        : %s / %s", safe(b.ContactEmail, "-"), safe(b.ContactPhone, "-")),
			fmt.Sprintf("Fare           : %s", safe(b.SpecialFareType, "NONE")),
			fmt.Sprintf("Status         : %s", safe(b.Status, "-")),
			fmt.Sprintf("Total          : %s", utils.FormatAmount(utils.Currency, b.TotalAmount)),
		}
		for _, s := range lines {
			pdf.Cell(0, 7, s)
			pdf.Ln(7)
		}

		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 11)
		for _, h := range []struct {
			w float64
			t string
		}{{10, "#"}, {70, "Passenger"}, {20, "Age"}, {25, "Gender"}, {40, "Passport"}, {20, "Seat"}} {
			pdf.CellFormat(h.w, 7, h.t, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 11)
		for n, p := range b.Passengers {
			pdf.CellFormat(10, 7, fmt.Sprintf("%d", n+1), "1", 0, "L", false, 0, "")
			pdf.CellFormat(70, 7, safe(p.Name, "-"), "1", 0, "L", false, 0, "")
			pdf.CellFormat(20, 7, fmt.Sprintf("%d", p.Age), "1", 0, "L", false, 0, "")
			pdf.CellFormat(25, 7, safe(p.Gender, "-"), "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 7, safe(p.PassportNumber, "-"), "1", 0, "L", false, 0, "")
			pdf.CellFormat(20, 7, safe(p.SeatNo, "-"), "1", 0, "L", false, 0, "")
			pdf.Ln(-1)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please carry a valid photo ID matching the passenger name. Boarding closes 25 minutes before departure.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", safeFilenamePart(ref))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"goairline/internal/http/middleware"
	"goairline/internal/services"

	"github.com/gin-gonic/gin"
)

// Stringish menoleransi string/number/bool menjadi string.
type Stringish string

func (s *Stringish) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case string(b) == "null" || len(b) == 0:
		*s = ""
		return nil
	case len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Stringish(str)
		return nil
	default:
		// number/bool -> stringify best-effort
		*s = Stringish(strings.Trim(string(b), `"`))
		return nil
	}
}

func (s Stringish) String() string { return string(s) }

// BookingHandler serves documents for submitted bookings.
type BookingHandler struct {
	Docs services.DocsService
}

// GET /api/bookings/:reference/e-ticket
func (h BookingHandler) ETicket(c *gin.Context) {
	ref := strings.TrimSpace(c.Param("reference"))
	if ref == "" {
		respondError(c, http.StatusBadRequest, "invalid_reference", "booking reference tidak valid", nil)
		return
	}

	pdfBytes, filename, err := h.Docs.GenerateETicket(c.Request.Context(), ref, middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

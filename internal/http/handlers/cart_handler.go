package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"goairline/internal/domain"
	"goairline/internal/http/middleware"
	"goairline/internal/services"
	"goairline/internal/utils"

	"github.com/gin-gonic/gin"
)

// CartHandler exposes the booking cart to the front-end.
type CartHandler struct {
	Carts *services.CartService
}

type createCartRequest struct {
	TripType      string    `json:"tripType"`
	FlightNumbers []string  `json:"flightNumbers"`
	Passengers    Stringish `json:"passengers"`
	FareType      string    `json:"specialFareType"`
	ContactEmail  string    `json:"contactEmail"`
	ContactPhone  string    `json:"contactPhone"`
}

type resizeRequest struct {
	Count Stringish `json:"count"`
}

type updatePassengerRequest struct {
	Field string    `json:"field"`
	Value Stringish `json:"value"`
}

type contactRequest struct {
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	FareType     string `json:"specialFareType"`
}

type selectSeatRequest struct {
	Seat       Stringish `json:"seat"`
	SeatNumber Stringish `json:"seatNumber"`
	SeatNo     Stringish `json:"seatNo"`
}

func (r selectSeatRequest) id() string {
	return utils.FirstNonEmpty(r.Seat.String(), r.SeatNumber.String(), r.SeatNo.String())
}

// POST /api/carts
func (h CartHandler) Create(c *gin.Context) {
	var req createCartRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	passengers := 1
	if raw := strings.TrimSpace(req.Passengers.String()); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			RespondDomainError(c, domain.ValidationError{Field: "passengers", Msg: "must be a number"})
			return
		}
		passengers = n
	}

	view, err := h.Carts.Create(c.Request.Context(), services.CreateCartInput{
		TripType:      req.TripType,
		FlightNumbers: req.FlightNumbers,
		Passengers:    passengers,
		FareType:      req.FareType,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GET /api/carts/:id
func (h CartHandler) Get(c *gin.Context) {
	h.respond(c)(h.Carts.Get(c.Request.Context(), c.Param("id")))
}

// DELETE /api/carts/:id
func (h CartHandler) Discard(c *gin.Context) {
	if err := h.Carts.Discard(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PUT /api/carts/:id/passengers
func (h CartHandler) ResizeRoster(c *gin.Context) {
	var req resizeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(req.Count.String()))
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "count", Msg: "must be a number"})
		return
	}
	h.respond(c)(h.Carts.ResizeRoster(c.Request.Context(), c.Param("id"), n))
}

// POST /api/carts/:id/passengers
func (h CartHandler) AddPassenger(c *gin.Context) {
	h.respond(c)(h.Carts.AddPassenger(c.Request.Context(), c.Param("id")))
}

// PATCH /api/carts/:id/passengers/:index
func (h CartHandler) UpdatePassenger(c *gin.Context) {
	idx, ok := intParam(c, "index")
	if !ok {
		return
	}
	var req updatePassengerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	h.respond(c)(h.Carts.UpdatePassenger(c.Request.Context(), c.Param("id"), idx, req.Field, req.Value.String()))
}

// DELETE /api/carts/:id/passengers/:index
func (h CartHandler) RemovePassenger(c *gin.Context) {
	idx, ok := intParam(c, "index")
	if !ok {
		return
	}
	h.respond(c)(h.Carts.RemovePassenger(c.Request.Context(), c.Param("id"), idx))
}

// PUT /api/carts/:id/segments/:segment/contact
func (h CartHandler) SetContact(c *gin.Context) {
	seg, ok := intParam(c, "segment")
	if !ok {
		return
	}
	var req contactRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	h.respond(c)(h.Carts.SetContact(c.Request.Context(), c.Param("id"), seg, req.ContactEmail, req.ContactPhone, req.FareType))
}

// POST /api/carts/:id/contact/seed
func (h CartHandler) SeedContact(c *gin.Context) {
	h.respond(c)(h.Carts.SeedContact(c.Request.Context(), c.Param("id")))
}

// POST /api/carts/:id/next
func (h CartHandler) Next(c *gin.Context) {
	h.respond(c)(h.Carts.Advance(c.Request.Context(), c.Param("id")))
}

// POST /api/carts/:id/prev
func (h CartHandler) Prev(c *gin.Context) {
	h.respond(c)(h.Carts.Retreat(c.Request.Context(), c.Param("id")))
}

// GET /api/carts/:id/seats
func (h CartHandler) SeatMap(c *gin.Context) {
	sm, err := h.Carts.SeatMap(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sm)
}

// POST /api/carts/:id/seats and /api/carts/:id/segments/:segment/seats
func (h CartHandler) SelectSeat(c *gin.Context) {
	var seg *int
	if c.Param("segment") != "" {
		n, ok := intParam(c, "segment")
		if !ok {
			return
		}
		seg = &n
	}
	var req selectSeatRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	res, view, err := h.Carts.SelectSeat(c.Request.Context(), c.Param("id"), seg, req.id())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": res, "cart": view})
}

// POST /api/carts/:id/inventory/refresh
func (h CartHandler) RefreshInventory(c *gin.Context) {
	h.respond(c)(h.Carts.RefreshInventory(c.Request.Context(), c.Param("id")))
}

// GET /api/carts/:id/validation
func (h CartHandler) Validate(c *gin.Context) {
	verr, err := h.Carts.Validate(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if verr != nil {
		c.JSON(http.StatusOK, gin.H{"complete": false, "message": verr.Error(), "issue": verr})
		return
	}
	c.JSON(http.StatusOK, gin.H{"complete": true})
}

// GET /api/carts/:id/payload
func (h CartHandler) Payload(c *gin.Context) {
	p, err := h.Carts.Payload(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/carts/:id/submit
func (h CartHandler) Submit(c *gin.Context) {
	conf, err := h.Carts.Submit(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conf)
}

func (h CartHandler) respond(c *gin.Context) func(services.CartView, error) {
	return func(v services.CartView, err error) {
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

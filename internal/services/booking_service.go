package services

import (
	"context"
	"fmt"
	"time"

	"goairline/internal/cart"
	"goairline/internal/domain"
	"goairline/internal/domain/models"
	"goairline/internal/metrics"
	"goairline/internal/utils"
)

// BookingStore is the booking API collaborator a finished cart is handed to.
type BookingStore interface {
	Create(ctx context.Context, userID int64, p cart.Payload) (models.Confirmation, error)
}

// BookingService validates a cart and submits it to the booking store.
type BookingService struct {
	Store           BookingStore
	RequireDocument bool
	Metrics         *metrics.Metrics
}

// Validate returns the first rule that blocks submission as a
// domain.IncompleteCartError, or nil.
func (s BookingService) Validate(c *cart.TripCart) error {
	return cart.Validate(c, s.RequireDocument)
}

// Payload converts the cart to the booking API wire form.
func (s BookingService) Payload(c *cart.TripCart) cart.Payload {
	return cart.ToPayload(c)
}

// Submit validates, builds the payload and delegates to the store once.
// Store failures come back wrapped in domain.UpstreamError; there is no retry.
func (s BookingService) Submit(ctx context.Context, c *cart.TripCart, userID int64) (models.Confirmation, error) {
	reqID := utils.RequestIDFrom(ctx)
	if err := s.Validate(c); err != nil {
		s.count("incomplete")
		utils.LogEvent(reqID, "booking", "submit", "rejected: "+err.Error())
		return models.Confirmation{}, err
	}
	if s.Store == nil {
		return models.Confirmation{}, domain.InternalError{Msg: "booking store not configured"}
	}

	payload := s.Payload(c)
	start := time.Now()
	conf, err := s.Store.Create(ctx, userID, payload)
	if s.Metrics != nil {
		s.Metrics.SubmitTime.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		s.count("upstream_error")
		utils.L().Errorw("booking submit failed",
			"module", "booking", "request_id", reqID, "reference", c.Reference, "error", err)
		return models.Confirmation{}, domain.UpstreamError{Op: "submit booking", Err: err}
	}

	s.count("ok")
	utils.LogEvent(reqID, "booking", "submit",
		fmt.Sprintf("reference=%s segments=%d passengers=%d", conf.BookingNo, c.SegmentCount(), c.RosterSize()))
	return conf, nil
}

func (s BookingService) count(outcome string) {
	if s.Metrics != nil {
		s.Metrics.Submissions.WithLabelValues(outcome).Inc()
	}
}

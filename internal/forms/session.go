package forms

import (
	"context"
	"fmt"
	"log"

	"github.com/deep-computers/dc-orders/internal/domain"
)

// Notifier delivers an assembled order to the outside world. The SMTP
// implementation lives in internal/services.
type Notifier interface {
	Send(ctx context.Context, rec domain.OrderRecord) error
}

// Phase of the confirmation state machine.
type Phase int

const (
	// PhaseForm is the default editing state.
	PhaseForm Phase = iota
	// PhaseSubmitted is entered on successful or fallback-marked
	// submission and left only by an explicit reset.
	PhaseSubmitted
)

// Result is what the customer is shown after a submit attempt.
type Result struct {
	OrderID  string   `json:"orderId"`
	Status   string   `json:"status"`
	Fallback bool     `json:"fallback"`
	Message  string   `json:"message"`
	Errors   []string `json:"errors,omitempty"`
}

// Session drives one order form through the validate → assemble → submit →
// confirm pipeline. Form → Submitted on success or fallback; Submitted →
// Form only on Reset ("place another order").
type Session struct {
	form     Form
	notifier Notifier
	whatsapp string

	phase   Phase
	orderID string
}

// NewSession wraps a form with a notifier. whatsapp is the manual contact
// channel quoted in the fallback message.
func NewSession(form Form, notifier Notifier, whatsapp string) *Session {
	return &Session{form: form, notifier: notifier, whatsapp: whatsapp}
}

// Phase returns the current state of the confirmation machine.
func (s *Session) Phase() Phase { return s.phase }

// OrderID returns the id carried into the Submitted phase.
func (s *Session) OrderID() string { return s.orderID }

// Submit runs the pipeline. While the validation list is non-empty the
// notifier is never invoked and the session stays in the Form phase. A
// notifier failure does not fail the submission: the order is marked
// submitted locally and the customer is told to contact the business
// directly with the order id. No retry, ever; resubmitting builds a fresh
// record with a fresh id.
func (s *Session) Submit(ctx context.Context) (Result, domain.OrderRecord) {
	if errs := s.form.Errors(); len(errs) > 0 {
		return Result{Status: "invalid", Errors: errs}, domain.OrderRecord{}
	}

	rec := s.form.Assemble()

	if err := s.notifier.Send(ctx, rec); err != nil {
		log.Printf("order %s: notification failed, falling back: %v", rec.OrderID, err)
		s.phase = PhaseSubmitted
		s.orderID = rec.OrderID
		return Result{
			OrderID:  rec.OrderID,
			Status:   "submitted",
			Fallback: true,
			Message:  s.fallbackMessage(rec.OrderID),
		}, rec
	}

	s.phase = PhaseSubmitted
	s.orderID = rec.OrderID
	return Result{
		OrderID: rec.OrderID,
		Status:  "submitted",
		Message: fmt.Sprintf("Order %s received. A confirmation has been sent to you.", rec.OrderID),
	}, rec
}

// Reset returns to the Form phase and clears all form state. This is the
// "place another order" action; there is no automatic reversion.
func (s *Session) Reset() {
	s.form.Reset()
	s.phase = PhaseForm
	s.orderID = ""
}

func (s *Session) fallbackMessage(orderID string) string {
	return fmt.Sprintf(
		"Order %s recorded, but we could not reach our mailbox. Please WhatsApp us at %s with your order id to confirm.",
		orderID, s.whatsapp,
	)
}

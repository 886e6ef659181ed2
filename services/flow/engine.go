// File: services/flow/engine.go
package flow

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"ticketbharat/catalog"
	"ticketbharat/locale"
	"ticketbharat/models"

	"github.com/google/uuid"
)

// Engine drives the scripted booking conversation. Transitions are pure
// and synchronous: one user action is fully applied before the next is
// accepted, and the cosmetic typing delay is only a rendering hint on
// the returned prompt.
type Engine struct {
	Catalog  catalog.Provider
	Payments PaymentHandler
}

func NewEngine(cat catalog.Provider, payments PaymentHandler) *Engine {
	return &Engine{Catalog: cat, Payments: payments}
}

// NewSession starts a fresh conversation in booking mode at the opening
// menu.
func (e *Engine) NewSession(language string) *models.ChatSession {
	lang := locale.Supported(language)
	s := &models.ChatSession{
		SessionID: uuid.New().String(),
		Language:  lang,
		Mode:      models.ModeBooking,
		Step:      models.StepStart,
	}
	appendBot(s, locale.T(lang, "welcome"))
	return s
}

// SwitchMode flips the interaction surface. Entering booking mode
// restarts the flow: the order is cleared and the step returns to state
// selection. The transcript restarts with the mode's welcome line.
func (e *Engine) SwitchMode(s *models.ChatSession, mode models.ChatMode) *models.Prompt {
	s.Mode = mode
	s.Messages = nil
	s.Ticket = nil
	if mode == models.ModeBooking {
		s.Order = models.TicketOrder{}
		s.Step = models.StepSelectState
		appendBot(s, locale.T(s.Language, "welcome_booking"))
	} else {
		appendBot(s, locale.T(s.Language, "welcome_faq"))
	}
	return e.PromptFor(s)
}

// Advance applies one user selection to the session and returns the
// next prompt. Selections that do not belong to the offered options
// yield ErrInvalidSelection; advancing past a step whose required order
// field is still empty yields ErrFlowInvariant.
func (e *Engine) Advance(s *models.ChatSession, sel models.Selection) (*models.Prompt, error) {
	if s.Mode != models.ModeBooking {
		return nil, fmt.Errorf("advance: %w: session is in %s mode", ErrInvalidSelection, s.Mode)
	}

	switch s.Step {
	case models.StepStart:
		return e.advanceStart(s, sel)
	case models.StepSelectState:
		return e.advanceState(s, sel)
	case models.StepSelectCity:
		return e.advanceCity(s, sel)
	case models.StepSelectEvent:
		return e.advanceEvent(s, sel)
	case models.StepSelectDate:
		return e.advanceDate(s, sel)
	case models.StepSelectTime:
		return e.advanceTime(s, sel)
	case models.StepSelectQuantity:
		return e.advanceQuantity(s, sel)
	case models.StepConfirmOrder:
		return e.advanceConfirm(s, sel)
	default:
		return nil, fmt.Errorf("advance: %w: no selection accepted at step %s", ErrInvalidSelection, s.Step)
	}
}

func (e *Engine) advanceStart(s *models.ChatSession, sel models.Selection) (*models.Prompt, error) {
	if sel.Kind != models.SelectMenu {
		return nil, fmt.Errorf("advance start: %w", ErrInvalidSelection)
	}
	switch sel.Value {
	case "book":
		appendUser(s, locale.T(s.Language, "book_tickets"))
		s.Step = models.StepSelectState
		appendBot(s, locale.T(s.Language, "select_state"))
	case "ask":
		appendUser(s, locale.T(s.Language, "ask_question"))
		s.Mode = models.ModeFaq
		appendBot(s, locale.T(s.Language, "welcome_faq"))
	default:
		return nil, fmt.Errorf("advance start: %w: %q", ErrInvalidSelection, sel.Value)
	}
	return e.PromptFor(s), nil
}

func (e *Engine) advanceState(s *models.ChatSession, sel models.Selection) (*models.Prompt, error) {
	if sel.Kind != models.SelectState || sel.Value == "" {
		return nil, fmt.Errorf("advance state: %w", ErrInvalidSelection)
	}
	if len(e.Catalog.CitiesByState(sel.Value)) == 0 {
		return nil, fmt.Errorf("advance state: %w: unknown state %q", ErrInvalidSelection, sel.Value)
	}
	appendUser(s, sel.Value)
	s.Order.State = sel.Value
	s.Step = models.StepSelectCity
	appendBot(s, locale.T(s.Language, "select_city"))
	return e.PromptFor(s), nil
}

func (e *Engine) advanceCity(s *models.ChatSession, sel models.Selection) (*models.Prompt, error) {
	if sel.Kind != models.SelectCity || sel.Value == "" {
		return nil, fmt.Errorf("advance city: %w", ErrInvalidSelection)
	}
	if s.Order.State == "" {
		return nil, fmt.Errorf("advance city: %w: no state selected", ErrFlowInvariant)
	}
	appendUser(s, sel.Value)
	s.Order.City = sel.Value

	// A city with no events does not advance the step; the user is
	// re-prompted to pick a different city.
	events := e.Catalog.EventsByStateAndCity(s.Order.State, sel.Value)
	if len(events) == 0 {
		notice := locale.T(s.Language, "no_events_found")
		appendBot(s, notice)
		p := e.PromptFor(s)
		p.Notice = notice
		return p, nil
	}

	s.Step = models.StepSelectEvent
	appendBot(s, locale.T(s.Language, "select_event"))
	return e.PromptFor(s), nil
}

func (e *Engine) advanceEvent(s *models.ChatSession, sel models.Selection) (*models.Prompt, error) {
	if sel.Kind != models.SelectEvent || sel.Value == "" {
		return nil, fmt.Errorf("advance event: %w", ErrInvalidSelection)
	}
	if s.Order.State == "" || s.Order.City == "" {
		return nil, fmt.Errorf("advance event: %w: location not selected", ErrFlowInvariant)
	}
	event, ok := e.Catalog.EventByID(sel.Value)
	if !ok || event.State != s.Order.State || event.City != s.Order.City {
		return nil, fmt.Errorf("advance event: %w: event %q not offered here", ErrInvalidSelection, sel.Value)
	}
	appendUser(s, event.Name)
	s.Order.EventID = event.ID
	s.Order.EventName = event.Name
	s.Order.Venue = event.Venue
	s.Order.Category = event.Category
	s.Step = models.StepSelectDate
	appendBot(s, locale.T(s.Language, "select_date"))
	return e.PromptFor(s), nil
}

func (e *Engine) advanceDate(s *models.ChatSession, sel models.Selection) (*models.Prompt, error) {
	if sel.Kind != models.SelectDate || sel.Value == "" {
		return nil, fmt.Errorf("advance date: %w", ErrInvalidSelection)
	}
	event, err := e.selectedEvent(s)
	if err != nil {
		return nil, err
	}
	if !event.HasDate(sel.Value) {
		return nil, fmt.Errorf("advance date: %w: %q is not a valid date for %s", ErrInvalidSelection, sel.Value, event.ID)
	}
	appendUser(s, sel.Value)
	s.Order.Date = sel.Value
	s.Step = models.StepSelectTime
	appendBot(s, locale.T(s.Language, "select_time"))
	return e.PromptFor(s), nil
}

func (e *Engine) advanceTime(s *models.ChatSession, sel models.Selection) (*models.Prompt, error) {
	if sel.Kind != models.SelectTime || sel.Value == "" {
		return nil, fmt.Errorf("advance time: %w", ErrInvalidSelection)
	}
	event, err := e.selectedEvent(s)
	if err != nil {
		return nil, err
	}
	if !event.HasTime(sel.Value) {
		return nil, fmt.Errorf("advance time: %w: %q is not a valid slot for %s", ErrInvalidSelection, sel.Value, event.ID)
	}
	appendUser(s, sel.Value)
	s.Order.Time = sel.Value
	s.Step = models.StepSelectQuantity
	appendBot(s, locale.T(s.Language, "select_quantity"))
	return e.PromptFor(s), nil
}

func (e *Engine) advanceQuantity(s *models.ChatSession, sel models.Selection) (*models.Prompt, error) {
	if sel.Kind != models.SelectQuantities {
		return nil, fmt.Errorf("advance quantity: %w", ErrInvalidSelection)
	}
	event, err := e.selectedEvent(s)
	if err != nil {
		return nil, err
	}

	quantities := ClampQuantities(event, sel.Quantities)
	s.Order.Tickets = quantities
	s.Order.TotalAmount = ComputeTotal(event, quantities)
	if s.Order.TicketCount() == 0 {
		return nil, fmt.Errorf("advance quantity: %w: at least one ticket required", ErrInvalidSelection)
	}

	appendUser(s, formatQuantities(quantities))
	s.Step = models.StepConfirmOrder
	appendBot(s, locale.T(s.Language, "order_summary"))
	return e.PromptFor(s), nil
}

func (e *Engine) advanceConfirm(s *models.ChatSession, sel models.Selection) (*models.Prompt, error) {
	if sel.Kind != models.SelectConfirm {
		return nil, fmt.Errorf("advance confirm: %w", ErrInvalidSelection)
	}
	if !s.Order.Complete() {
		return nil, fmt.Errorf("advance confirm: %w: order incomplete", ErrFlowInvariant)
	}
	appendUser(s, locale.T(s.Language, "proceed_to_payment"))
	s.Step = models.StepPayment
	return e.PromptFor(s), nil
}

// CompletePayment applies the mock payment callback. Success issues the
// digital ticket; anything else rolls back to the order summary with the
// order untouched.
func (e *Engine) CompletePayment(ctx context.Context, s *models.ChatSession, success bool) (*models.Prompt, error) {
	if s.Step != models.StepPayment {
		return nil, fmt.Errorf("complete payment: %w: step is %s", ErrFlowInvariant, s.Step)
	}
	if !success {
		s.Step = models.StepConfirmOrder
		appendBot(s, locale.T(s.Language, "payment_cancelled"))
		return e.PromptFor(s), nil
	}

	ticket, err := e.Payments.ProcessPayment(ctx, s.Order)
	if err != nil {
		return nil, fmt.Errorf("complete payment: %w", err)
	}
	s.Ticket = ticket
	s.Step = models.StepTicketIssued
	appendBot(s, locale.T(s.Language, "payment_successful"))
	appendBot(s, locale.T(s.Language, "ticket_issued"))
	return e.PromptFor(s), nil
}

func (e *Engine) selectedEvent(s *models.ChatSession) (models.Event, error) {
	if s.Order.EventID == "" {
		return models.Event{}, fmt.Errorf("%w: no event selected", ErrFlowInvariant)
	}
	event, ok := e.Catalog.EventByID(s.Order.EventID)
	if !ok {
		return models.Event{}, fmt.Errorf("%w: selected event %q missing from catalog", ErrFlowInvariant, s.Order.EventID)
	}
	return event, nil
}

// AppendUserMessage records a user utterance on the transcript.
func (e *Engine) AppendUserMessage(s *models.ChatSession, content string) {
	appendUser(s, content)
}

// AppendBotMessage records a bot reply on the transcript.
func (e *Engine) AppendBotMessage(s *models.ChatSession, content string) {
	appendBot(s, content)
}

func appendUser(s *models.ChatSession, content string) {
	s.Messages = append(s.Messages, models.Message{
		ID:      uuid.New().String(),
		Sender:  models.SenderUser,
		Content: content,
	})
}

func appendBot(s *models.ChatSession, content string) {
	s.Messages = append(s.Messages, models.Message{
		ID:      uuid.New().String(),
		Sender:  models.SenderBot,
		Content: content,
	})
}

func formatQuantities(quantities map[string]int) string {
	tiers := make([]string, 0, len(quantities))
	for tier, qty := range quantities {
		if qty > 0 {
			tiers = append(tiers, tier)
		}
	}
	sort.Strings(tiers)

	parts := make([]string, 0, len(tiers))
	for _, tier := range tiers {
		parts = append(parts, fmt.Sprintf("%d %s", quantities[tier], tier))
	}
	return strings.Join(parts, ", ")
}

// typingDelayMs picks the cosmetic delay the client applies before
// rendering the bot's next message. Bounded, and never blocks the
// transition itself.
func typingDelayMs() int {
	return 1000 + rand.Intn(500)
}

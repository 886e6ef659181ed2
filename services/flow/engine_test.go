package flow

import (
	"context"
	"testing"

	"ticketbharat/catalog"
	"ticketbharat/models"
	"ticketbharat/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	cat := catalog.NewStaticProvider()
	return NewEngine(cat, NewMockPaymentHandler(utils.GetLogger()))
}

func advance(t *testing.T, e *Engine, s *models.ChatSession, kind models.SelectionKind, value string) *models.Prompt {
	t.Helper()
	prompt, err := e.Advance(s, models.Selection{Kind: kind, Value: value})
	require.NoError(t, err)
	return prompt
}

func TestBookingScenarioEndToEnd(t *testing.T) {
	e := newTestEngine()
	s := e.NewSession("en")

	assert.Equal(t, models.ModeBooking, s.Mode)
	assert.Equal(t, models.StepStart, s.Step)

	advance(t, e, s, models.SelectMenu, "book")
	assert.Equal(t, models.StepSelectState, s.Step)

	advance(t, e, s, models.SelectState, "Maharashtra")
	assert.Equal(t, models.StepSelectCity, s.Step)
	assert.Equal(t, "Maharashtra", s.Order.State)

	prompt := advance(t, e, s, models.SelectCity, "Mumbai")
	assert.Equal(t, models.StepSelectEvent, s.Step)
	require.NotEmpty(t, prompt.Events)
	for _, ev := range prompt.Events {
		assert.Equal(t, "Maharashtra", ev.State)
		assert.Equal(t, "Mumbai", ev.City)
	}

	prompt = advance(t, e, s, models.SelectEvent, "movie-1")
	assert.Equal(t, models.StepSelectDate, s.Step)
	assert.Equal(t, "Pushpa 2: The Rule", s.Order.EventName)
	assert.Contains(t, prompt.ValidDates, "2025-09-06")

	advance(t, e, s, models.SelectDate, "2025-09-06")
	assert.Equal(t, models.StepSelectTime, s.Step)

	advance(t, e, s, models.SelectTime, "10:00 AM")
	assert.Equal(t, models.StepSelectQuantity, s.Step)

	prompt, err := e.Advance(s, models.Selection{
		Kind:       models.SelectQuantities,
		Quantities: map[string]int{"regular": 2, "premium": 0},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StepConfirmOrder, s.Step)
	assert.Equal(t, 2*200.0, s.Order.TotalAmount)
	require.NotNil(t, prompt.Order)

	advance(t, e, s, models.SelectConfirm, "")
	assert.Equal(t, models.StepPayment, s.Step)

	prompt, err = e.CompletePayment(context.Background(), s, true)
	require.NoError(t, err)
	assert.Equal(t, models.StepTicketIssued, s.Step)
	require.NotNil(t, s.Ticket)
	assert.Equal(t, "Pushpa 2: The Rule", s.Ticket.EventName)
	assert.Equal(t, "2025-09-06", s.Ticket.Date)
	assert.Equal(t, "10:00 AM", s.Ticket.Time)
	assert.Equal(t, 400.0, s.Ticket.TotalAmount)
	assert.NotEmpty(t, s.Ticket.QRPayload)
	assert.Equal(t, models.ControlTicketCard, prompt.Control)
}

func TestCityWithoutEventsReprompts(t *testing.T) {
	e := newTestEngine()
	s := e.NewSession("en")
	advance(t, e, s, models.SelectMenu, "book")
	advance(t, e, s, models.SelectState, "Maharashtra")

	// Nagpur has no fixture events.
	prompt := advance(t, e, s, models.SelectCity, "Nagpur")
	assert.Equal(t, models.StepSelectCity, s.Step, "step must not advance")
	assert.Equal(t, models.ControlCityList, prompt.Control)
	assert.NotEmpty(t, prompt.Notice)
}

func TestQuantityClamping(t *testing.T) {
	e := newTestEngine()
	event, ok := e.Catalog.EventByID("movie-1")
	require.True(t, ok)

	clamped := ClampQuantities(event, map[string]int{
		"regular": -1,
		"premium": 3,
		"vip":     2, // not a priced tier
	})
	assert.Equal(t, 0, clamped["regular"])
	assert.Equal(t, 3, clamped["premium"])
	_, hasVIP := clamped["vip"]
	assert.False(t, hasVIP)
}

func TestComputeTotalIsPure(t *testing.T) {
	e := newTestEngine()
	event, _ := e.Catalog.EventByID("movie-1")

	q := map[string]int{"regular": 2, "premium": 1}
	assert.Equal(t, 2*200.0+1*350.0, ComputeTotal(event, q))
	assert.Equal(t, 0.0, ComputeTotal(event, nil))
}

func TestZeroTicketsRejected(t *testing.T) {
	e := newTestEngine()
	s := e.NewSession("en")
	advance(t, e, s, models.SelectMenu, "book")
	advance(t, e, s, models.SelectState, "Maharashtra")
	advance(t, e, s, models.SelectCity, "Mumbai")
	advance(t, e, s, models.SelectEvent, "movie-1")
	advance(t, e, s, models.SelectDate, "2025-09-06")
	advance(t, e, s, models.SelectTime, "10:00 AM")

	_, err := e.Advance(s, models.Selection{
		Kind:       models.SelectQuantities,
		Quantities: map[string]int{"regular": 0, "premium": 0},
	})
	assert.ErrorIs(t, err, ErrInvalidSelection)
	assert.Equal(t, models.StepSelectQuantity, s.Step)
}

func TestInvalidSelections(t *testing.T) {
	e := newTestEngine()
	s := e.NewSession("en")
	advance(t, e, s, models.SelectMenu, "book")

	_, err := e.Advance(s, models.Selection{Kind: models.SelectCity, Value: "Mumbai"})
	assert.ErrorIs(t, err, ErrInvalidSelection, "wrong selection kind for step")

	_, err = e.Advance(s, models.Selection{Kind: models.SelectState, Value: "Atlantis"})
	assert.ErrorIs(t, err, ErrInvalidSelection, "state not in catalog")

	advance(t, e, s, models.SelectState, "Maharashtra")
	advance(t, e, s, models.SelectCity, "Mumbai")

	// movie-2 plays in Bangalore, not Mumbai.
	_, err = e.Advance(s, models.Selection{Kind: models.SelectEvent, Value: "movie-2"})
	assert.ErrorIs(t, err, ErrInvalidSelection)

	advance(t, e, s, models.SelectEvent, "movie-1")
	_, err = e.Advance(s, models.Selection{Kind: models.SelectDate, Value: "2030-01-01"})
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestFlowInvariantViolationIsFatal(t *testing.T) {
	e := newTestEngine()
	s := e.NewSession("en")

	// Force an unreachable state: confirm step with an empty order.
	s.Step = models.StepConfirmOrder
	_, err := e.Advance(s, models.Selection{Kind: models.SelectConfirm})
	assert.ErrorIs(t, err, ErrFlowInvariant)

	s2 := e.NewSession("en")
	s2.Step = models.StepSelectCity
	_, err = e.Advance(s2, models.Selection{Kind: models.SelectCity, Value: "Mumbai"})
	assert.ErrorIs(t, err, ErrFlowInvariant, "city selection without a state")
}

func TestPaymentCancelRollsBack(t *testing.T) {
	e := newTestEngine()
	s := e.NewSession("en")
	advance(t, e, s, models.SelectMenu, "book")
	advance(t, e, s, models.SelectState, "Maharashtra")
	advance(t, e, s, models.SelectCity, "Mumbai")
	advance(t, e, s, models.SelectEvent, "movie-1")
	advance(t, e, s, models.SelectDate, "2025-09-06")
	advance(t, e, s, models.SelectTime, "10:00 AM")
	_, err := e.Advance(s, models.Selection{
		Kind:       models.SelectQuantities,
		Quantities: map[string]int{"regular": 1},
	})
	require.NoError(t, err)
	advance(t, e, s, models.SelectConfirm, "")

	orderBefore := s.Order
	prompt, err := e.CompletePayment(context.Background(), s, false)
	require.NoError(t, err)
	assert.Equal(t, models.StepConfirmOrder, s.Step)
	assert.Equal(t, orderBefore, s.Order, "order untouched on cancel")
	assert.Nil(t, s.Ticket)
	assert.Equal(t, models.ControlOrderSummary, prompt.Control)
}

func TestSwitchModeResetsFlow(t *testing.T) {
	e := newTestEngine()
	s := e.NewSession("en")
	advance(t, e, s, models.SelectMenu, "book")
	advance(t, e, s, models.SelectState, "Maharashtra")
	advance(t, e, s, models.SelectCity, "Mumbai")

	prompt := e.SwitchMode(s, models.ModeFaq)
	assert.Equal(t, models.ModeFaq, s.Mode)
	assert.Equal(t, models.ControlFreeText, prompt.Control)

	prompt = e.SwitchMode(s, models.ModeBooking)
	assert.Equal(t, models.ModeBooking, s.Mode)
	assert.Equal(t, models.StepSelectState, s.Step)
	assert.Equal(t, models.TicketOrder{}, s.Order, "order cleared on re-entry")
	assert.Equal(t, models.ControlStateList, prompt.Control)
}

func TestFaqModeSuspendsStep(t *testing.T) {
	e := newTestEngine()
	s := e.NewSession("hi")
	advance(t, e, s, models.SelectMenu, "ask")
	assert.Equal(t, models.ModeFaq, s.Mode)
	assert.Equal(t, models.ControlFreeText, e.PromptFor(s).Control)

	_, err := e.Advance(s, models.Selection{Kind: models.SelectState, Value: "Delhi"})
	assert.ErrorIs(t, err, ErrInvalidSelection, "booking selections rejected in faq mode")
}

func TestQuantitySummaryStableOrder(t *testing.T) {
	q := map[string]int{"regular": 2, "premium": 1, "balcony": 0}
	// Tier order must not depend on map iteration; the transcript line
	// for the same order is identical across runs.
	for i := 0; i < 20; i++ {
		assert.Equal(t, "1 premium, 2 regular", formatQuantities(q))
	}
	assert.Equal(t, "", formatQuantities(nil))
}

func TestTypingDelayBounds(t *testing.T) {
	e := newTestEngine()
	s := e.NewSession("en")
	for i := 0; i < 50; i++ {
		d := e.PromptFor(s).TypingDelayMs
		assert.GreaterOrEqual(t, d, 1000)
		assert.Less(t, d, 1500)
	}
}

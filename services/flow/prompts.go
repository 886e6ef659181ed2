package flow

import "ticketbharat/models"

// PromptFor selects the input affordance for the session's current
// position. While the mode is faq the step is suspended and the client
// always gets a free-text input.
func (e *Engine) PromptFor(s *models.ChatSession) *models.Prompt {
	p := &models.Prompt{TypingDelayMs: typingDelayMs()}

	if s.Mode == models.ModeFaq {
		p.Control = models.ControlFreeText
		return p
	}

	switch s.Step {
	case models.StepStart:
		p.Control = models.ControlMenu
		p.Options = []string{"book", "ask"}
	case models.StepSelectState:
		p.Control = models.ControlStateList
		p.Options = e.Catalog.States()
	case models.StepSelectCity:
		p.Control = models.ControlCityList
		p.Options = e.Catalog.CitiesByState(s.Order.State)
	case models.StepSelectEvent:
		p.Control = models.ControlEventCards
		p.Events = e.Catalog.EventsByStateAndCity(s.Order.State, s.Order.City)
	case models.StepSelectDate:
		p.Control = models.ControlDatePicker
		if event, ok := e.Catalog.EventByID(s.Order.EventID); ok {
			p.ValidDates = event.Dates
		}
	case models.StepSelectTime:
		p.Control = models.ControlTimeGrid
		if event, ok := e.Catalog.EventByID(s.Order.EventID); ok {
			p.Options = event.Times
		}
	case models.StepSelectQuantity:
		p.Control = models.ControlTierStepper
		if event, ok := e.Catalog.EventByID(s.Order.EventID); ok {
			p.Tiers = event.Prices
		}
	case models.StepConfirmOrder:
		p.Control = models.ControlOrderSummary
		order := s.Order
		p.Order = &order
	case models.StepPayment:
		p.Control = models.ControlPaymentDialog
		order := s.Order
		p.Order = &order
	case models.StepTicketIssued:
		p.Control = models.ControlTicketCard
		p.Ticket = s.Ticket
	}
	return p
}

package models

// SelectionKind identifies which control produced a user selection.
type SelectionKind string

const (
	SelectMenu       SelectionKind = "menu" // "book" | "ask" at the start step
	SelectState      SelectionKind = "state"
	SelectCity       SelectionKind = "city"
	SelectEvent      SelectionKind = "event"
	SelectDate       SelectionKind = "date"
	SelectTime       SelectionKind = "time"
	SelectQuantities SelectionKind = "quantities" // confirms the tier counts
	SelectConfirm    SelectionKind = "confirm"    // order summary -> payment
)

// Selection is a single discrete user action fed into the flow engine.
type Selection struct {
	Kind       SelectionKind  `json:"kind" binding:"required"`
	Value      string         `json:"value,omitempty"`
	Quantities map[string]int `json:"quantities,omitempty"`
}

// ControlKind tells the client which input affordance to render for the
// current step.
type ControlKind string

const (
	ControlMenu          ControlKind = "menu"
	ControlStateList     ControlKind = "state_list"
	ControlCityList      ControlKind = "city_list"
	ControlEventCards    ControlKind = "event_cards"
	ControlDatePicker    ControlKind = "date_picker"
	ControlTimeGrid      ControlKind = "time_grid"
	ControlTierStepper   ControlKind = "tier_stepper"
	ControlOrderSummary  ControlKind = "order_summary"
	ControlPaymentDialog ControlKind = "payment_dialog"
	ControlTicketCard    ControlKind = "ticket_card"
	ControlFreeText      ControlKind = "free_text"
)

// Prompt describes what the client should render next: the control for
// the current step plus the data needed to populate it. TypingDelayMs is
// a purely cosmetic hint; the session state is already mutated when the
// prompt is built.
type Prompt struct {
	Control       ControlKind        `json:"control"`
	Options       []string           `json:"options,omitempty"`
	Events        []Event            `json:"events,omitempty"`
	ValidDates    []string           `json:"validDates,omitempty"`
	Tiers         map[string]float64 `json:"tiers,omitempty"`
	Order         *TicketOrder       `json:"order,omitempty"`
	Ticket        *IssuedTicket      `json:"ticket,omitempty"`
	Notice        string             `json:"notice,omitempty"`
	TypingDelayMs int                `json:"typingDelayMs"`
}

package models

// ChatStep is the current position in the scripted booking sequence.
type ChatStep string

const (
	StepStart          ChatStep = "start"
	StepSelectState    ChatStep = "select_state"
	StepSelectCity     ChatStep = "select_city"
	StepSelectEvent    ChatStep = "select_event"
	StepSelectDate     ChatStep = "select_date"
	StepSelectTime     ChatStep = "select_time"
	StepSelectQuantity ChatStep = "select_quantity"
	StepConfirmOrder   ChatStep = "confirm_order"
	StepPayment        ChatStep = "payment"
	StepTicketIssued   ChatStep = "ticket_issued"
)

// ChatMode selects which interaction surface is active. While the mode
// is faq the step is suspended and the client renders a free-text input.
type ChatMode string

const (
	ModeBooking ChatMode = "booking"
	ModeFaq     ChatMode = "faq"
)

// Sender tags for chat transcript entries.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Message is one transcript entry. Content is opaque to the server
// beyond being a rendered string.
type Message struct {
	ID      string `json:"id"`
	Sender  string `json:"sender"`
	Content string `json:"content"`
}

// ChatSession holds all per-conversation state. Sessions are ephemeral:
// serialized to Redis with a TTL, never persisted.
type ChatSession struct {
	SessionID string        `json:"sessionId"`
	Language  string        `json:"language"`
	Mode      ChatMode      `json:"mode"`
	Step      ChatStep      `json:"step"`
	Order     TicketOrder   `json:"order"`
	Messages  []Message     `json:"messages"`
	Ticket    *IssuedTicket `json:"ticket,omitempty"`

	// Resolving is set while a free-text question is being answered.
	// Further questions are rejected until the in-flight one completes,
	// so outcomes are always applied in order.
	Resolving bool `json:"resolving,omitempty"`
}

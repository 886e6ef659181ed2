package models

// TicketOrder is the booking accumulated across the chat flow.
// Fields are filled in step order; the whole struct is reset when a
// session restarts or switches back into booking mode.
type TicketOrder struct {
	State       string         `json:"state,omitempty"`
	City        string         `json:"city,omitempty"`
	EventID     string         `json:"eventId,omitempty"`
	EventName   string         `json:"eventName,omitempty"`
	Venue       string         `json:"venue,omitempty"`
	Category    EventCategory  `json:"category,omitempty"`
	Date        string         `json:"date,omitempty"`
	Time        string         `json:"time,omitempty"`
	Tickets     map[string]int `json:"tickets,omitempty"` // tier name -> quantity
	TotalAmount float64        `json:"totalAmount,omitempty"`
}

// TicketCount returns the total number of tickets across all tiers.
func (o *TicketOrder) TicketCount() int {
	n := 0
	for _, qty := range o.Tickets {
		n += qty
	}
	return n
}

// Complete reports whether the order is payable: every selection made
// and at least one ticket requested.
func (o *TicketOrder) Complete() bool {
	return o.State != "" && o.City != "" && o.EventID != "" &&
		o.Date != "" && o.Time != "" && o.TicketCount() > 0
}

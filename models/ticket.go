package models

// IssuedTicket is the finalized booking handed to the presentation
// layer after a successful payment.
type IssuedTicket struct {
	TicketID    string         `json:"ticketId"`
	EventName   string         `json:"eventName"`
	Venue       string         `json:"venue"`
	Date        string         `json:"date"`
	Time        string         `json:"time"`
	Tickets     map[string]int `json:"tickets"`
	TotalAmount float64        `json:"totalAmount"`

	// QRPayload is the string a client encodes into the ticket QR code.
	QRPayload string `json:"qrPayload"`
}

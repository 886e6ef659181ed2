package flow

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ticketbharat/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentHandler finalizes a completed order into an issued ticket.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, order models.TicketOrder) (*models.IssuedTicket, error)
}

// MockPaymentHandler simulates a successful charge. There is no real
// transaction behind the demo; the contract is just success or cancel,
// and cancel never reaches this handler.
type MockPaymentHandler struct {
	logger *zap.Logger
}

func NewMockPaymentHandler(logger *zap.Logger) *MockPaymentHandler {
	return &MockPaymentHandler{logger: logger}
}

func (h *MockPaymentHandler) ProcessPayment(ctx context.Context, order models.TicketOrder) (*models.IssuedTicket, error) {
	if !order.Complete() {
		return nil, fmt.Errorf("process payment: %w: order incomplete", ErrFlowInvariant)
	}

	time.Sleep(300 * time.Millisecond) // Simulate payment processing

	ticket := &models.IssuedTicket{
		TicketID:    uuid.New().String(),
		EventName:   order.EventName,
		Venue:       order.Venue,
		Date:        order.Date,
		Time:        order.Time,
		Tickets:     order.Tickets,
		TotalAmount: order.TotalAmount,
	}

	// The QR payload is what a client renders into the ticket QR code.
	qr, err := json.Marshal(map[string]interface{}{
		"ticketId": ticket.TicketID,
		"event":    ticket.EventName,
		"date":     ticket.Date,
		"time":     ticket.Time,
		"tickets":  ticket.Tickets,
	})
	if err != nil {
		return nil, fmt.Errorf("encode ticket payload: %w", err)
	}
	ticket.QRPayload = string(qr)

	h.logger.Info("Mock payment successful",
		zap.String("ticket", ticket.TicketID),
		zap.Float64("amount", ticket.TotalAmount))
	return ticket, nil
}

package amqp

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Ledger operations carried by LedgerChangedMessage.
const (
	OperationInsert = "insert"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

var ErrInvalidMessage = errors.New("invalid ledger change message")

// LedgerChangedMessage announces a committed mutation. It carries only the
// id; consumers re-read the ledger for current data.
type LedgerChangedMessage struct {
	MessageID string    `json:"message_id"`
	Operation string    `json:"operation"`
	ExpenseID int64     `json:"expense_id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewLedgerChangedMessage stamps a message with a fresh id and the current time.
func NewLedgerChangedMessage(op string, expenseID int64) *LedgerChangedMessage {
	return &LedgerChangedMessage{
		MessageID: uuid.NewString(),
		Operation: op,
		ExpenseID: expenseID,
		Timestamp: time.Now().UTC(),
	}
}

// Validate checks the fields a consumer relies on.
func (m *LedgerChangedMessage) Validate() error {
	switch m.Operation {
	case OperationInsert, OperationUpdate, OperationDelete:
	default:
		return fmt.Errorf("%w: operation %q", ErrInvalidMessage, m.Operation)
	}
	if m.ExpenseID <= 0 {
		return fmt.Errorf("%w: expense_id %d", ErrInvalidMessage, m.ExpenseID)
	}
	if _, err := uuid.Parse(m.MessageID); err != nil {
		return fmt.Errorf("%w: message_id %q", ErrInvalidMessage, m.MessageID)
	}
	return nil
}

// ToJSON converts the message to JSON bytes
func (m *LedgerChangedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// LedgerChangedMessageFromJSON decodes and validates a message body.
func LedgerChangedMessageFromJSON(data []byte) (*LedgerChangedMessage, error) {
	var msg LedgerChangedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return &msg, nil
}

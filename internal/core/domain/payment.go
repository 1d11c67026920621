package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus indicates where a payment is in its approval cycle.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentAccepted PaymentStatus = "ACCEPTED"
	PaymentRejected PaymentStatus = "REJECTED"
)

// PaymentType tags how the money changed hands.
type PaymentType string

const (
	PaymentTypeCash  PaymentType = "CASH"
	PaymentTypeOther PaymentType = "OTHER"
)

// PaymentAction is a lifecycle event recorded in a payment's history.
type PaymentAction string

const (
	ActionCreated  PaymentAction = "CREATED"
	ActionEdited   PaymentAction = "EDITED"
	ActionAccepted PaymentAction = "ACCEPTED"
	ActionRejected PaymentAction = "REJECTED"
	ActionDeleted  PaymentAction = "DELETED"
)

// Payment is a money-owed record between two group members, optionally
// currency-converted. It is created PENDING, moves to ACCEPTED or REJECTED
// through the recipient's decision, and reopens to PENDING on every update.
type Payment struct {
	ID           string                `json:"id"`
	GroupID      string                `json:"groupId"`
	CreatorID    string                `json:"creatorId"`
	RecipientID  string                `json:"recipientId"`
	Title        string                `json:"title"`
	Type         PaymentType           `json:"type"`
	Amount       Amount                `json:"amount"`
	FxData       *FxData               `json:"fxData,omitempty"`
	Date         time.Time             `json:"date"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
	AttachmentID string                `json:"attachmentId"`
	Status       PaymentStatus         `json:"status"`
	History      []PaymentHistoryEntry `json:"history"`
}

// Amount is a positive decimal value in a 3-letter uppercase currency.
type Amount struct {
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
}

// FxData is the conversion applied to a payment's base amount. It is present
// iff a target currency was requested.
type FxData struct {
	TargetCurrency string          `json:"targetCurrency"`
	ExchangeRate   decimal.Decimal `json:"exchangeRate"`
}

// PaymentHistoryEntry is an immutable audit record of one lifecycle event.
// The first entry of every payment is CREATED by the creator; entries are
// never removed or reordered.
type PaymentHistoryEntry struct {
	ParticipantID string        `json:"participantId"`
	Action        PaymentAction `json:"paymentAction"`
	CreatedAt     time.Time     `json:"createdAt"`
	Comment       *string       `json:"comment,omitempty"`
}

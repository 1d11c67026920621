package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the persistence-layer row shape for a payment. History is
// stored as a JSONB document alongside the flat columns.
type Payment struct {
	PaymentID        string
	GroupID          string
	CreatorID        string
	RecipientID      string
	Title            string
	Type             string
	AmountValue      decimal.Decimal
	AmountCurrency   string
	FxTargetCurrency *string
	FxExchangeRate   *decimal.Decimal
	Date             time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	AttachmentID     string
	Status           string
	History          []PaymentHistoryEntry
}

// PaymentHistoryEntry is the JSONB element shape of one history record.
type PaymentHistoryEntry struct {
	ParticipantID string    `json:"participantId"`
	Action        string    `json:"paymentAction"`
	CreatedAt     time.Time `json:"createdAt"`
	Comment       *string   `json:"comment,omitempty"`
}

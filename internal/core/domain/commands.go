package domain

import (
	"time"

	"github.com/google/uuid"
)

// Decision is the recipient's response to a pending payment.
type Decision string

const (
	DecisionAccept Decision = "ACCEPT"
	DecisionReject Decision = "REJECT"
)

// ToStatus maps a decision to the payment status it produces.
func (d Decision) ToStatus() PaymentStatus {
	if d == DecisionAccept {
		return PaymentAccepted
	}
	return PaymentRejected
}

// ToAction maps a decision to the history action it records.
func (d Decision) ToAction() PaymentAction {
	if d == DecisionAccept {
		return ActionAccepted
	}
	return ActionRejected
}

// PaymentCreation carries the fields needed to create a payment.
type PaymentCreation struct {
	GroupID        string
	CreatorID      string
	RecipientID    string
	Title          string
	Type           PaymentType
	Amount         Amount
	TargetCurrency *string
	Date           time.Time
	Message        *string
	AttachmentID   *string
}

// ToPayment materializes a new PENDING payment with a fresh identifier and a
// seeded CREATED history entry.
func (c PaymentCreation) ToPayment(fxData *FxData, attachmentID string) Payment {
	now := time.Now()
	return Payment{
		ID:           uuid.NewString(),
		GroupID:      c.GroupID,
		CreatorID:    c.CreatorID,
		RecipientID:  c.RecipientID,
		Title:        c.Title,
		Type:         c.Type,
		Amount:       c.Amount,
		FxData:       fxData,
		Date:         c.Date,
		CreatedAt:    now,
		UpdatedAt:    now,
		AttachmentID: attachmentID,
		Status:       PaymentPending,
		History: []PaymentHistoryEntry{
			{ParticipantID: c.CreatorID, Action: ActionCreated, CreatedAt: now, Comment: c.Message},
		},
	}
}

// PaymentUpdate carries the proposed replacement values for a payment plus
// the acting user's identity.
type PaymentUpdate struct {
	ID             string
	GroupID        string
	UserID         string
	Title          string
	Type           PaymentType
	Amount         Amount
	TargetCurrency *string
	Date           time.Time
	Message        *string
	AttachmentID   *string
}

// PaymentDecision carries a recipient's ACCEPT or REJECT response.
type PaymentDecision struct {
	UserID    string
	PaymentID string
	GroupID   string
	Decision  Decision
	Message   *string
}

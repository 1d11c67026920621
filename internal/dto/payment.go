package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/splitgem/payment-manager/internal/core/domain"
)

// AmountDto carries a money amount on the wire.
type AmountDto struct {
	Value    decimal.Decimal `json:"value" binding:"required,gt=0"`
	Currency string          `json:"currency" binding:"required,currencycode"`
}

func (a AmountDto) toDomain() domain.Amount {
	return domain.Amount{Value: a.Value, Currency: a.Currency}
}

// PaymentCreationRequest is the body of the create-payment endpoint.
type PaymentCreationRequest struct {
	Title          string    `json:"title" binding:"required,notblank,max=30"`
	Type           string    `json:"type" binding:"required,oneof=CASH OTHER"`
	Amount         AmountDto `json:"amount" binding:"required"`
	TargetCurrency *string   `json:"targetCurrency" binding:"omitempty,currencycode"`
	Date           time.Time `json:"date" binding:"required"`
	RecipientID    string    `json:"recipientId" binding:"required,notblank"`
	Message        *string   `json:"message" binding:"omitempty,notblank"`
	AttachmentID   *string   `json:"attachmentId" binding:"omitempty,notblank"`
}

// ToDomain builds the creation command for the acting user and group.
func (r PaymentCreationRequest) ToDomain(userID, groupID string) domain.PaymentCreation {
	return domain.PaymentCreation{
		GroupID:        groupID,
		CreatorID:      userID,
		RecipientID:    r.RecipientID,
		Title:          r.Title,
		Type:           domain.PaymentType(r.Type),
		Amount:         r.Amount.toDomain(),
		TargetCurrency: r.TargetCurrency,
		Date:           r.Date,
		Message:        r.Message,
		AttachmentID:   r.AttachmentID,
	}
}

// PaymentUpdateRequest is the body of the update-payment endpoint.
type PaymentUpdateRequest struct {
	Title          string    `json:"title" binding:"required,notblank,max=30"`
	Type           string    `json:"type" binding:"required,oneof=CASH OTHER"`
	Amount         AmountDto `json:"amount" binding:"required"`
	TargetCurrency *string   `json:"targetCurrency" binding:"omitempty,currencycode"`
	Date           time.Time `json:"date" binding:"required"`
	Message        *string   `json:"message" binding:"omitempty,notblank"`
	AttachmentID   *string   `json:"attachmentId" binding:"omitempty,notblank"`
}

// ToDomain builds the update command for the addressed payment.
func (r PaymentUpdateRequest) ToDomain(paymentID, groupID, userID string) domain.PaymentUpdate {
	return domain.PaymentUpdate{
		ID:             paymentID,
		GroupID:        groupID,
		UserID:         userID,
		Title:          r.Title,
		Type:           domain.PaymentType(r.Type),
		Amount:         r.Amount.toDomain(),
		TargetCurrency: r.TargetCurrency,
		Date:           r.Date,
		Message:        r.Message,
		AttachmentID:   r.AttachmentID,
	}
}

// PaymentDecisionRequest is the body of the decide endpoint.
type PaymentDecisionRequest struct {
	PaymentID string  `json:"paymentId" binding:"required,notblank"`
	GroupID   string  `json:"groupId" binding:"required,notblank"`
	Decision  string  `json:"decision" binding:"required,oneof=ACCEPT REJECT"`
	Message   *string `json:"message" binding:"omitempty,notblank"`
}

// ToDomain builds the decision command for the acting user.
func (r PaymentDecisionRequest) ToDomain(userID string) domain.PaymentDecision {
	return domain.PaymentDecision{
		UserID:    userID,
		PaymentID: r.PaymentID,
		GroupID:   r.GroupID,
		Decision:  domain.Decision(r.Decision),
		Message:   r.Message,
	}
}

// FxDataDto carries resolved conversion data on the wire.
type FxDataDto struct {
	TargetCurrency string          `json:"targetCurrency"`
	ExchangeRate   decimal.Decimal `json:"exchangeRate"`
}

// PaymentHistoryEntryDto is one audit record on the wire.
type PaymentHistoryEntryDto struct {
	ParticipantID string    `json:"participantId"`
	PaymentAction string    `json:"paymentAction"`
	CreatedAt     time.Time `json:"createdAt"`
	Comment       *string   `json:"comment,omitempty"`
}

// PaymentResponse is the full wire representation of a payment.
type PaymentResponse struct {
	ID           string                   `json:"id"`
	GroupID      string                   `json:"groupId"`
	CreatorID    string                   `json:"creatorId"`
	RecipientID  string                   `json:"recipientId"`
	Title        string                   `json:"title"`
	Type         string                   `json:"type"`
	Amount       AmountDto                `json:"amount"`
	FxData       *FxDataDto               `json:"fxData,omitempty"`
	Date         time.Time                `json:"date"`
	CreatedAt    time.Time                `json:"createdAt"`
	UpdatedAt    time.Time                `json:"updatedAt"`
	AttachmentID string                   `json:"attachmentId"`
	Status       string                   `json:"status"`
	History      []PaymentHistoryEntryDto `json:"history"`
}

// NewPaymentResponse maps a domain payment to its wire representation.
func NewPaymentResponse(p domain.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:           p.ID,
		GroupID:      p.GroupID,
		CreatorID:    p.CreatorID,
		RecipientID:  p.RecipientID,
		Title:        p.Title,
		Type:         string(p.Type),
		Amount:       AmountDto{Value: p.Amount.Value, Currency: p.Amount.Currency},
		FxData:       newFxDataDto(p.FxData),
		Date:         p.Date,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		AttachmentID: p.AttachmentID,
		Status:       string(p.Status),
		History:      make([]PaymentHistoryEntryDto, len(p.History)),
	}
	for i, h := range p.History {
		resp.History[i] = PaymentHistoryEntryDto{
			ParticipantID: h.ParticipantID,
			PaymentAction: string(h.Action),
			CreatedAt:     h.CreatedAt,
			Comment:       h.Comment,
		}
	}
	return resp
}

func newFxDataDto(fx *domain.FxData) *FxDataDto {
	if fx == nil {
		return nil
	}
	return &FxDataDto{TargetCurrency: fx.TargetCurrency, ExchangeRate: fx.ExchangeRate}
}

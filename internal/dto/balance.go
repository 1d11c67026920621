package dto

import (
	"github.com/shopspring/decimal"
	"github.com/splitgem/payment-manager/internal/core/domain"
)

// BalanceElementDto is one payment's contribution to a user's net position.
type BalanceElementDto struct {
	Value        decimal.Decimal  `json:"value"`
	Currency     string           `json:"currency"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate,omitempty"`
}

// UserBalanceResponse is a user's per-transaction balance in a group.
type UserBalanceResponse struct {
	UserID   string              `json:"userId"`
	Elements []BalanceElementDto `json:"elements"`
}

// NewUserBalanceResponse maps balance elements to the wire shape.
func NewUserBalanceResponse(userID string, elements []domain.BalanceElement) UserBalanceResponse {
	resp := UserBalanceResponse{
		UserID:   userID,
		Elements: make([]BalanceElementDto, len(elements)),
	}
	for i, e := range elements {
		resp.Elements[i] = BalanceElementDto{
			Value:        e.Value,
			Currency:     e.Currency,
			ExchangeRate: e.ExchangeRate,
		}
	}
	return resp
}

package domain

import "github.com/shopspring/decimal"

// BalanceElement is one counterparty payment's contribution to a user's net
// position: positive when the user created the payment, negative when they
// received it. Elements are presented per-transaction; no netting is done.
type BalanceElement struct {
	Value        decimal.Decimal  `json:"value"`
	Currency     string           `json:"currency"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate,omitempty"`
}

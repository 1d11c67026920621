package services

import (
	"context"
	"fmt"

	"github.com/splitgem/payment-manager/internal/core/domain"
	portssvc "github.com/splitgem/payment-manager/internal/core/ports/services"
)

// BalanceService computes a user's net position across a group's accepted
// payments. Balance is presented per-transaction: each payment yields its
// own element, no cross-currency netting is performed.
type BalanceService struct {
	payments portssvc.PaymentReaderSvc
}

// NewBalanceService creates a BalanceService.
func NewBalanceService(payments portssvc.PaymentReaderSvc) *BalanceService {
	return &BalanceService{payments: payments}
}

// GetUserBalance maps the group's accepted payments to the user's balance
// elements, preserving the date-ascending input order.
func (s *BalanceService) GetUserBalance(ctx context.Context, groupID, userID string) ([]domain.BalanceElement, error) {
	accepted, err := s.payments.GetAcceptedGroupPayments(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load accepted payments for balance: %w", err)
	}

	elements := make([]domain.BalanceElement, 0, len(accepted))
	for _, payment := range accepted {
		if element := toBalanceElement(userID, payment); element != nil {
			elements = append(elements, *element)
		}
	}
	return elements, nil
}

// toBalanceElement returns nil when the user is neither creator nor
// recipient. The value is signed positive for the creator, negative for the
// recipient; currency and rate come from the FX data when present.
func toBalanceElement(userID string, payment domain.Payment) *domain.BalanceElement {
	if userID != payment.CreatorID && userID != payment.RecipientID {
		return nil
	}

	value := payment.Amount.Value
	if userID == payment.RecipientID {
		value = value.Neg()
	}

	element := domain.BalanceElement{
		Value:    value,
		Currency: payment.Amount.Currency,
	}
	if payment.FxData != nil {
		element.Currency = payment.FxData.TargetCurrency
		rate := payment.FxData.ExchangeRate
		element.ExchangeRate = &rate
	}
	return &element
}

package validation

import "github.com/splitgem/payment-manager/internal/core/domain"

// ModificationData is the bundle the no-op-update rule operates on.
type ModificationData struct {
	Original domain.Payment
	Update   domain.PaymentUpdate
}

// NewModificationRuleSet builds the no-op-update rule: an update must change
// at least one of title, type, amount, target currency, or date. Whether this
// rule runs at all is a service-level policy.
func NewModificationRuleSet() RuleSet[ModificationData] {
	return NewRuleSet(
		Check[ModificationData]{
			Message: NoModification,
			Valid: func(d ModificationData) bool {
				return modifies(d.Update, d.Original)
			},
		},
	)
}

func modifies(update domain.PaymentUpdate, payment domain.Payment) bool {
	return payment.Title != update.Title ||
		payment.Type != update.Type ||
		!payment.Amount.Value.Equal(update.Amount.Value) ||
		payment.Amount.Currency != update.Amount.Currency ||
		!sameTargetCurrency(payment.FxData, update.TargetCurrency) ||
		!payment.Date.Equal(update.Date)
}

func sameTargetCurrency(fx *domain.FxData, target *string) bool {
	if fx == nil || target == nil {
		return fx == nil && target == nil
	}
	return fx.TargetCurrency == *target
}

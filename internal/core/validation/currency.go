package validation

import "github.com/splitgem/payment-manager/internal/core/domain"

// CurrencyData is the bundle the currency rules operate on. TargetCurrency
// is nil when no conversion was requested.
type CurrencyData struct {
	GroupCurrencies     []domain.Currency
	AvailableCurrencies []domain.Currency
	BaseCurrency        string
	TargetCurrency      *string
}

// NewCurrencyRuleSet builds the four interlocking currency rules. The
// presence of a target currency acts as a guard: rule one applies only when
// no target currency was requested, rules two to four only when one was.
func NewCurrencyRuleSet() RuleSet[CurrencyData] {
	return NewRuleSet(
		Check[CurrencyData]{
			Message: BaseCurrencyNotInGroupCurrencies,
			Valid: func(d CurrencyData) bool {
				return d.TargetCurrency != nil || containsCurrency(d.GroupCurrencies, d.BaseCurrency)
			},
		},
		Check[CurrencyData]{
			Message: BaseCurrencyEqualToTargetCurrency,
			Valid: func(d CurrencyData) bool {
				return d.TargetCurrency == nil || d.BaseCurrency != *d.TargetCurrency
			},
		},
		Check[CurrencyData]{
			Message: TargetCurrencyNotInGroupCurrencies,
			Valid: func(d CurrencyData) bool {
				return d.TargetCurrency == nil || containsCurrency(d.GroupCurrencies, *d.TargetCurrency)
			},
		},
		Check[CurrencyData]{
			Message: BaseCurrencyNotAvailable,
			Valid: func(d CurrencyData) bool {
				return d.TargetCurrency == nil || containsCurrency(d.AvailableCurrencies, d.BaseCurrency)
			},
		},
	)
}

func containsCurrency(currencies []domain.Currency, code string) bool {
	for _, c := range currencies {
		if c.Code == code {
			return true
		}
	}
	return false
}

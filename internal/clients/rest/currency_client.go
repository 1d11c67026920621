package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"github.com/splitgem/payment-manager/internal/core/domain"
	portsclients "github.com/splitgem/payment-manager/internal/core/ports/clients"
)

// CurrencyManagerClient calls the external currency-rate service.
type CurrencyManagerClient struct {
	restClient
}

// NewCurrencyManagerClient creates a client for the currency manager at baseURL.
func NewCurrencyManagerClient(baseURL string, timeout time.Duration) *CurrencyManagerClient {
	return &CurrencyManagerClient{restClient: newRestClient(baseURL, "currency-manager", timeout)}
}

var _ portsclients.CurrencyManagerClient = (*CurrencyManagerClient)(nil)

type currenciesResponse struct {
	Currencies []struct {
		Code string `json:"code"`
	} `json:"currencies"`
}

type exchangeRateResponse struct {
	Value decimal.Decimal `json:"value"`
}

// GetAvailableCurrencies lists the currency codes the rate provider supports.
func (c *CurrencyManagerClient) GetAvailableCurrencies(ctx context.Context) ([]domain.Currency, error) {
	var resp currenciesResponse
	addr := fmt.Sprintf("%s/internal/currencies", c.baseURL)
	if err := c.doJSON(ctx, http.MethodGet, addr, &resp); err != nil {
		return nil, err
	}

	currencies := make([]domain.Currency, 0, len(resp.Currencies))
	for _, cur := range resp.Currencies {
		currencies = append(currencies, domain.Currency{Code: cur.Code})
	}
	return currencies, nil
}

// GetExchangeRate fetches the base-to-target rate for the transaction date.
func (c *CurrencyManagerClient) GetExchangeRate(ctx context.Context, baseCurrency, targetCurrency string, date time.Time) (decimal.Decimal, error) {
	var resp exchangeRateResponse
	addr := fmt.Sprintf("%s/internal/currencies/from/%s/to/%s?date=%s",
		c.baseURL, baseCurrency, targetCurrency, url.QueryEscape(date.UTC().Format(time.RFC3339)))
	if err := c.doJSON(ctx, http.MethodGet, addr, &resp); err != nil {
		return decimal.Decimal{}, err
	}
	return resp.Value, nil
}

// Package clients declares the contracts of the external collaborators the
// payment core depends on. Transport details live in internal/clients/rest.
package clients

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/splitgem/payment-manager/internal/core/domain"
)

// GroupManagerClient exposes group membership and currency data.
type GroupManagerClient interface {
	// GetGroup fetches a read-only snapshot of the group.
	GetGroup(ctx context.Context, groupID string) (*domain.GroupData, error)

	// GetUserGroups lists the ids of the groups the user belongs to.
	GetUserGroups(ctx context.Context, userID string) ([]string, error)
}

// CurrencyManagerClient exposes the external rate provider.
type CurrencyManagerClient interface {
	// GetAvailableCurrencies lists the currency codes the provider supports.
	GetAvailableCurrencies(ctx context.Context) ([]domain.Currency, error)

	// GetExchangeRate fetches the rate for converting baseCurrency to
	// targetCurrency on the given transaction date.
	GetExchangeRate(ctx context.Context, baseCurrency, targetCurrency string, date time.Time) (decimal.Decimal, error)
}

// AttachmentStoreClient exposes the attachment collaborator.
type AttachmentStoreClient interface {
	// GenerateBlankAttachment requests a blank attachment for the group and
	// user and returns its id.
	GenerateBlankAttachment(ctx context.Context, groupID, userID string) (string, error)
}

// CollaboratorError wraps a failed collaborator call. Retryable marks
// transient (server-side or transport) failures; the core never retries
// internally, the distinction is for the caller's transport mapping.
type CollaboratorError struct {
	Collaborator string
	Retryable    bool
	Err          error
}

func (e *CollaboratorError) Error() string {
	kind := "client error"
	if e.Retryable {
		kind = "retryable error"
	}
	return fmt.Sprintf("%s collaborator %s: %v", e.Collaborator, kind, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err is a retryable collaborator failure.
func IsRetryable(err error) bool {
	var ce *CollaboratorError
	return errors.As(err, &ce) && ce.Retryable
}

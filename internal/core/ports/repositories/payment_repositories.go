package repositories

import (
	"context"

	"github.com/splitgem/payment-manager/internal/core/domain"
)

// PaymentReader defines read operations for payment data.
type PaymentReader interface {
	// FindByPaymentIDAndGroupID retrieves a payment by id within a group.
	// Returns apperrors.ErrNotFound when absent.
	FindByPaymentIDAndGroupID(ctx context.Context, paymentID, groupID string) (*domain.Payment, error)

	// FindByGroupID retrieves the group's payments, filtered and sorted per
	// the options. A nil filter returns every payment in unspecified order.
	FindByGroupID(ctx context.Context, groupID string, filter *domain.FilterOptions) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data.
type PaymentWriter interface {
	// SavePayment persists a payment, replacing any stored state under the
	// same id.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// DeletePayment removes a payment from active storage.
	DeletePayment(ctx context.Context, payment domain.Payment) error
}

// PaymentRepositoryFacade combines all payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// ArchivedPaymentWriter persists the final state of deleted payments.
type ArchivedPaymentWriter interface {
	// AddArchivedPayment records a full copy of a payment being deleted.
	AddArchivedPayment(ctx context.Context, payment domain.Payment) error
}

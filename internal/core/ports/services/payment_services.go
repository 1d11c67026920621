package services

import (
	"context"

	"github.com/splitgem/payment-manager/internal/core/domain"
)

// PaymentReaderSvc defines read operations over payments.
type PaymentReaderSvc interface {
	// GetGroup fetches a read-only group snapshot for access checks and
	// validation context.
	GetGroup(ctx context.Context, groupID string) (*domain.GroupData, error)

	// GetUserGroups lists the ids of the groups the user belongs to.
	GetUserGroups(ctx context.Context, userID string) ([]string, error)

	// GetPayment retrieves a payment. Fails with apperrors.ErrNotFound when
	// absent for the given id and group.
	GetPayment(ctx context.Context, paymentID, groupID string) (*domain.Payment, error)

	// GetGroupActivities lists the group's payments per the filter options.
	GetGroupActivities(ctx context.Context, groupID string, filter domain.FilterOptions) ([]domain.Payment, error)

	// GetAcceptedGroupPayments lists the group's accepted payments, date
	// ascending.
	GetAcceptedGroupPayments(ctx context.Context, groupID string) ([]domain.Payment, error)
}

// PaymentWriterSvc defines operations that mutate payments.
type PaymentWriterSvc interface {
	// CreatePayment validates and persists a new PENDING payment.
	CreatePayment(ctx context.Context, groupData domain.GroupData, creation domain.PaymentCreation) (*domain.Payment, error)

	// Decide applies the recipient's ACCEPT or REJECT to a pending payment
	// and returns the updated payment.
	Decide(ctx context.Context, decision domain.PaymentDecision) (*domain.Payment, error)

	// UpdatePayment replaces a payment's content, reopens it to PENDING and
	// appends an EDITED history entry.
	UpdatePayment(ctx context.Context, groupData domain.GroupData, update domain.PaymentUpdate) (*domain.Payment, error)

	// DeletePayment archives a copy of the payment and removes it from
	// active storage.
	DeletePayment(ctx context.Context, paymentID, groupID, userID string) error
}

// PaymentSvcFacade combines all payment service interfaces.
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}

// BalanceSvcFacade computes per-user balances over accepted payments.
type BalanceSvcFacade interface {
	// GetUserBalance returns one element per accepted payment the user
	// participates in, in date-ascending order.
	GetUserBalance(ctx context.Context, groupID, userID string) ([]domain.BalanceElement, error)
}

// ServiceContainer holds instances of all the application services and is
// the entry point the handlers are wired against.
type ServiceContainer struct {
	Payment PaymentSvcFacade
	Balance BalanceSvcFacade
}

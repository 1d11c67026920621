package services

import (
	portsclients "github.com/splitgem/payment-manager/internal/core/ports/clients"
	portsrepo "github.com/splitgem/payment-manager/internal/core/ports/repositories"
	portssvc "github.com/splitgem/payment-manager/internal/core/ports/services"
)

// ContainerConfig carries the service-level policies chosen at startup.
type ContainerConfig struct {
	RejectNoopUpdates bool
}

// NewServiceContainer wires the application services from their ports. This
// is the composition root for the core.
func NewServiceContainer(
	groupClient portsclients.GroupManagerClient,
	currencyClient portsclients.CurrencyManagerClient,
	attachmentClient portsclients.AttachmentStoreClient,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	archiveRepo portsrepo.ArchivedPaymentWriter,
	cfg ContainerConfig,
) *portssvc.ServiceContainer {
	paymentService := NewPaymentService(
		groupClient,
		currencyClient,
		attachmentClient,
		paymentRepo,
		archiveRepo,
		cfg.RejectNoopUpdates,
	)
	return &portssvc.ServiceContainer{
		Payment: paymentService,
		Balance: NewBalanceService(paymentService),
	}
}

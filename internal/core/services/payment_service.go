package services

import (
	"context"
	"fmt"
	"time"

	"github.com/splitgem/payment-manager/internal/apperrors"
	"github.com/splitgem/payment-manager/internal/core/domain"
	portsclients "github.com/splitgem/payment-manager/internal/core/ports/clients"
	portsrepo "github.com/splitgem/payment-manager/internal/core/ports/repositories"
	"github.com/splitgem/payment-manager/internal/core/validation"
)

// PaymentService is the payment lifecycle engine. It owns every mutation of
// a Payment; validation always runs to completion before any side effect.
type PaymentService struct {
	groupClient       portsclients.GroupManagerClient
	currencyClient    portsclients.CurrencyManagerClient
	attachmentClient  portsclients.AttachmentStoreClient
	paymentRepo       portsrepo.PaymentRepositoryFacade
	archiveRepo       portsrepo.ArchivedPaymentWriter
	rejectNoopUpdates bool

	recipientRules    validation.RuleSet[validation.RecipientData]
	currencyRules     validation.RuleSet[validation.CurrencyData]
	decisionRules     validation.RuleSet[validation.DecisionData]
	creatorRules      validation.RuleSet[validation.CreatorData]
	modificationRules validation.RuleSet[validation.ModificationData]
}

// NewPaymentService creates a PaymentService. rejectNoopUpdates enables the
// policy of rejecting updates that change nothing; the default policy is to
// accept them silently.
func NewPaymentService(
	groupClient portsclients.GroupManagerClient,
	currencyClient portsclients.CurrencyManagerClient,
	attachmentClient portsclients.AttachmentStoreClient,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	archiveRepo portsrepo.ArchivedPaymentWriter,
	rejectNoopUpdates bool,
) *PaymentService {
	return &PaymentService{
		groupClient:       groupClient,
		currencyClient:    currencyClient,
		attachmentClient:  attachmentClient,
		paymentRepo:       paymentRepo,
		archiveRepo:       archiveRepo,
		rejectNoopUpdates: rejectNoopUpdates,
		recipientRules:    validation.NewRecipientRuleSet(),
		currencyRules:     validation.NewCurrencyRuleSet(),
		decisionRules:     validation.NewDecisionRuleSet(),
		creatorRules:      validation.NewCreatorRuleSet(),
		modificationRules: validation.NewModificationRuleSet(),
	}
}

// GetGroup fetches a read-only group snapshot from the group collaborator.
func (s *PaymentService) GetGroup(ctx context.Context, groupID string) (*domain.GroupData, error) {
	return s.groupClient.GetGroup(ctx, groupID)
}

// GetUserGroups lists the ids of the groups the user belongs to.
func (s *PaymentService) GetUserGroups(ctx context.Context, userID string) ([]string, error) {
	return s.groupClient.GetUserGroups(ctx, userID)
}

// CreatePayment validates the creation against the group snapshot, resolves
// the attachment and FX data, persists and returns the new PENDING payment.
func (s *PaymentService) CreatePayment(ctx context.Context, groupData domain.GroupData, creation domain.PaymentCreation) (*domain.Payment, error) {
	available, err := s.currencyClient.GetAvailableCurrencies(ctx)
	if err != nil {
		return nil, err
	}

	failures := s.recipientRules.Validate(validation.RecipientData{
		CreatorID:   creation.CreatorID,
		RecipientID: creation.RecipientID,
		Members:     groupData.Members,
	})
	failures = append(failures, s.currencyRules.Validate(validation.CurrencyData{
		GroupCurrencies:     groupData.Currencies,
		AvailableCurrencies: available,
		BaseCurrency:        creation.Amount.Currency,
		TargetCurrency:      creation.TargetCurrency,
	})...)
	if len(failures) > 0 {
		return nil, apperrors.NewValidationError(failures)
	}

	attachmentID, err := s.resolveAttachment(ctx, creation)
	if err != nil {
		return nil, err
	}

	fxData, err := s.resolveFx(ctx, creation.Amount.Currency, creation.TargetCurrency, creation.Date)
	if err != nil {
		return nil, err
	}

	payment := creation.ToPayment(fxData, attachmentID)
	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to save created payment: %w", err)
	}
	return &payment, nil
}

func (s *PaymentService) resolveAttachment(ctx context.Context, creation domain.PaymentCreation) (string, error) {
	if creation.AttachmentID != nil {
		return *creation.AttachmentID, nil
	}
	return s.attachmentClient.GenerateBlankAttachment(ctx, creation.GroupID, creation.CreatorID)
}

// resolveFx returns nil without any external call when no target currency is
// requested; otherwise it fetches the rate for the base/target pair on the
// transaction date.
func (s *PaymentService) resolveFx(ctx context.Context, baseCurrency string, targetCurrency *string, date time.Time) (*domain.FxData, error) {
	if targetCurrency == nil {
		return nil, nil
	}
	rate, err := s.currencyClient.GetExchangeRate(ctx, baseCurrency, *targetCurrency, date)
	if err != nil {
		return nil, err
	}
	return &domain.FxData{TargetCurrency: *targetCurrency, ExchangeRate: rate}, nil
}

// GetPayment retrieves a payment by id within a group.
func (s *PaymentService) GetPayment(ctx context.Context, paymentID, groupID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindByPaymentIDAndGroupID(ctx, paymentID, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment with id %s and groupId %s: %w", paymentID, groupID, err)
	}
	return payment, nil
}

// Decide applies the recipient's decision: appends a history entry with the
// decision's action, sets the status and refreshes updatedAt.
func (s *PaymentService) Decide(ctx context.Context, decision domain.PaymentDecision) (*domain.Payment, error) {
	payment, err := s.GetPayment(ctx, decision.PaymentID, decision.GroupID)
	if err != nil {
		return nil, err
	}

	failures := s.decisionRules.Validate(validation.DecisionData{
		UserID:      decision.UserID,
		RecipientID: payment.RecipientID,
	})
	if len(failures) > 0 {
		return nil, apperrors.NewValidationError(failures)
	}

	now := time.Now()
	payment.History = append(payment.History, domain.PaymentHistoryEntry{
		ParticipantID: decision.UserID,
		Action:        decision.Decision.ToAction(),
		CreatedAt:     now,
		Comment:       decision.Message,
	})
	payment.Status = decision.Decision.ToStatus()
	payment.UpdatedAt = now

	if err := s.paymentRepo.SavePayment(ctx, *payment); err != nil {
		return nil, fmt.Errorf("failed to save decided payment: %w", err)
	}
	return payment, nil
}

// DeletePayment removes a payment from active storage after archiving a full
// copy. Archiving runs first: a failed archive leaves the payment active and
// the error propagates.
func (s *PaymentService) DeletePayment(ctx context.Context, paymentID, groupID, userID string) error {
	payment, err := s.GetPayment(ctx, paymentID, groupID)
	if err != nil {
		return err
	}

	failures := s.creatorRules.Validate(validation.CreatorData{
		CreatorID: payment.CreatorID,
		UserID:    userID,
	})
	if len(failures) > 0 {
		return apperrors.NewValidationError(failures)
	}

	if err := s.archiveRepo.AddArchivedPayment(ctx, *payment); err != nil {
		return fmt.Errorf("failed to archive payment %s: %w", paymentID, err)
	}
	if err := s.paymentRepo.DeletePayment(ctx, *payment); err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}
	return nil
}

// UpdatePayment replaces the payment's content with the update's values,
// reopens the approval cycle and appends an EDITED history entry. Identity
// fields, createdAt and prior history are preserved.
func (s *PaymentService) UpdatePayment(ctx context.Context, groupData domain.GroupData, update domain.PaymentUpdate) (*domain.Payment, error) {
	original, err := s.GetPayment(ctx, update.ID, update.GroupID)
	if err != nil {
		return nil, err
	}

	available, err := s.currencyClient.GetAvailableCurrencies(ctx)
	if err != nil {
		return nil, err
	}

	failures := s.creatorRules.Validate(validation.CreatorData{
		CreatorID: original.CreatorID,
		UserID:    update.UserID,
	})
	if s.rejectNoopUpdates {
		failures = append(failures, s.modificationRules.Validate(validation.ModificationData{
			Original: *original,
			Update:   update,
		})...)
	}
	failures = append(failures, s.currencyRules.Validate(validation.CurrencyData{
		GroupCurrencies:     groupData.Currencies,
		AvailableCurrencies: available,
		BaseCurrency:        update.Amount.Currency,
		TargetCurrency:      update.TargetCurrency,
	})...)
	if len(failures) > 0 {
		return nil, apperrors.NewValidationError(failures)
	}

	fxData, err := s.resolveUpdateFx(ctx, *original, update)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updated := *original
	updated.Title = update.Title
	updated.Type = update.Type
	updated.Amount = update.Amount
	updated.FxData = fxData
	updated.Date = update.Date
	updated.UpdatedAt = now
	updated.Status = domain.PaymentPending
	if update.AttachmentID != nil {
		updated.AttachmentID = *update.AttachmentID
	}
	updated.History = append(append([]domain.PaymentHistoryEntry{}, original.History...), domain.PaymentHistoryEntry{
		ParticipantID: original.CreatorID,
		Action:        domain.ActionEdited,
		CreatedAt:     now,
		Comment:       update.Message,
	})

	if err := s.paymentRepo.SavePayment(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to save updated payment: %w", err)
	}
	return &updated, nil
}

// resolveUpdateFx reuses the stored FX data when the date, base currency and
// target currency are unchanged, avoiding a redundant rate lookup and rate
// drift for unmodified fields.
func (s *PaymentService) resolveUpdateFx(ctx context.Context, original domain.Payment, update domain.PaymentUpdate) (*domain.FxData, error) {
	if original.Date.Equal(update.Date) &&
		original.Amount.Currency == update.Amount.Currency &&
		sameTarget(original.FxData, update.TargetCurrency) {
		return original.FxData, nil
	}
	return s.resolveFx(ctx, update.Amount.Currency, update.TargetCurrency, update.Date)
}

func sameTarget(fx *domain.FxData, target *string) bool {
	if fx == nil || target == nil {
		return fx == nil && target == nil
	}
	return fx.TargetCurrency == *target
}

// GetGroupActivities lists the group's payments per the filter options.
func (s *PaymentService) GetGroupActivities(ctx context.Context, groupID string, filter domain.FilterOptions) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindByGroupID(ctx, groupID, &filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list group %s activities: %w", groupID, err)
	}
	return payments, nil
}

// GetAcceptedGroupPayments lists accepted payments, date ascending.
func (s *PaymentService) GetAcceptedGroupPayments(ctx context.Context, groupID string) ([]domain.Payment, error) {
	accepted := domain.PaymentAccepted
	return s.GetGroupActivities(ctx, groupID, domain.FilterOptions{
		Status:    &accepted,
		SortedBy:  domain.SortedByDate,
		SortOrder: domain.Ascending,
	})
}

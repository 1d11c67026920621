package mapping

import (
	"github.com/splitgem/payment-manager/internal/core/domain"
	"github.com/splitgem/payment-manager/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment.
func ToModelPayment(d domain.Payment) models.Payment {
	m := models.Payment{
		PaymentID:      d.ID,
		GroupID:        d.GroupID,
		CreatorID:      d.CreatorID,
		RecipientID:    d.RecipientID,
		Title:          d.Title,
		Type:           string(d.Type),
		AmountValue:    d.Amount.Value,
		AmountCurrency: d.Amount.Currency,
		Date:           d.Date,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		AttachmentID:   d.AttachmentID,
		Status:         string(d.Status),
		History:        make([]models.PaymentHistoryEntry, len(d.History)),
	}
	if d.FxData != nil {
		target := d.FxData.TargetCurrency
		rate := d.FxData.ExchangeRate
		m.FxTargetCurrency = &target
		m.FxExchangeRate = &rate
	}
	for i, h := range d.History {
		m.History[i] = models.PaymentHistoryEntry{
			ParticipantID: h.ParticipantID,
			Action:        string(h.Action),
			CreatedAt:     h.CreatedAt,
			Comment:       h.Comment,
		}
	}
	return m
}

// ToDomainPayment converts a model Payment to a domain Payment.
func ToDomainPayment(m models.Payment) domain.Payment {
	d := domain.Payment{
		ID:          m.PaymentID,
		GroupID:     m.GroupID,
		CreatorID:   m.CreatorID,
		RecipientID: m.RecipientID,
		Title:       m.Title,
		Type:        domain.PaymentType(m.Type),
		Amount: domain.Amount{
			Value:    m.AmountValue,
			Currency: m.AmountCurrency,
		},
		Date:         m.Date,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		AttachmentID: m.AttachmentID,
		Status:       domain.PaymentStatus(m.Status),
		History:      make([]domain.PaymentHistoryEntry, len(m.History)),
	}
	if m.FxTargetCurrency != nil && m.FxExchangeRate != nil {
		d.FxData = &domain.FxData{
			TargetCurrency: *m.FxTargetCurrency,
			ExchangeRate:   *m.FxExchangeRate,
		}
	}
	for i, h := range m.History {
		d.History[i] = domain.PaymentHistoryEntry{
			ParticipantID: h.ParticipantID,
			Action:        domain.PaymentAction(h.Action),
			CreatedAt:     h.CreatedAt,
			Comment:       h.Comment,
		}
	}
	return d
}

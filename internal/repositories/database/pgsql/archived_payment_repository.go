package pgsql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/splitgem/payment-manager/internal/core/domain"
	portsrepo "github.com/splitgem/payment-manager/internal/core/ports/repositories"
	"github.com/splitgem/payment-manager/internal/utils/mapping"
)

// PgxArchivedPaymentRepository keeps full copies of deleted payments.
type PgxArchivedPaymentRepository struct {
	BaseRepository
}

// NewArchivedPaymentRepository creates a new repository for archived payments.
func NewArchivedPaymentRepository(pool *pgxpool.Pool) portsrepo.ArchivedPaymentWriter {
	return &PgxArchivedPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ArchivedPaymentWriter = (*PgxArchivedPaymentRepository)(nil)

// AddArchivedPayment records the payment's final state. Repeated archives of
// the same payment append separate rows.
func (r *PgxArchivedPaymentRepository) AddArchivedPayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	history, err := json.Marshal(m.History)
	if err != nil {
		return fmt.Errorf("failed to marshal archived payment history: %w", err)
	}

	query := `
		INSERT INTO archived_payments (` + paymentColumns + `, archived_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.PaymentID, m.GroupID, m.CreatorID, m.RecipientID, m.Title, m.Type,
		m.AmountValue, m.AmountCurrency, m.FxTargetCurrency, m.FxExchangeRate,
		m.Date, m.CreatedAt, m.UpdatedAt, m.AttachmentID, m.Status, history,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to archive payment %s: %w", m.PaymentID, err)
	}
	return nil
}

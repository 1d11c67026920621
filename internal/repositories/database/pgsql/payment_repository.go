package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/splitgem/payment-manager/internal/apperrors"
	"github.com/splitgem/payment-manager/internal/core/domain"
	portsrepo "github.com/splitgem/payment-manager/internal/core/ports/repositories"
	"github.com/splitgem/payment-manager/internal/models"
	"github.com/splitgem/payment-manager/internal/utils/mapping"
)

// PgxPaymentRepository persists payments in PostgreSQL. History is stored as
// a JSONB column; filter and sort options compile to SQL.
type PgxPaymentRepository struct {
	BaseRepository
}

// NewPaymentRepository creates a new repository for payment data.
func NewPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, group_id, creator_id, recipient_id, title, type,
	amount_value, amount_currency, fx_target_currency, fx_exchange_rate,
	date, created_at, updated_at, attachment_id, status, history`

// SavePayment upserts the payment row, replacing any stored state under the
// same id. Concurrent writers race last-write-wins.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	history, err := json.Marshal(m.History)
	if err != nil {
		return fmt.Errorf("failed to marshal payment history: %w", err)
	}

	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (payment_id) DO UPDATE SET
			title = EXCLUDED.title,
			type = EXCLUDED.type,
			amount_value = EXCLUDED.amount_value,
			amount_currency = EXCLUDED.amount_currency,
			fx_target_currency = EXCLUDED.fx_target_currency,
			fx_exchange_rate = EXCLUDED.fx_exchange_rate,
			date = EXCLUDED.date,
			updated_at = EXCLUDED.updated_at,
			attachment_id = EXCLUDED.attachment_id,
			status = EXCLUDED.status,
			history = EXCLUDED.history;
	`
	_, err = r.Pool.Exec(ctx, query,
		m.PaymentID, m.GroupID, m.CreatorID, m.RecipientID, m.Title, m.Type,
		m.AmountValue, m.AmountCurrency, m.FxTargetCurrency, m.FxExchangeRate,
		m.Date, m.CreatedAt, m.UpdatedAt, m.AttachmentID, m.Status, history,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment %s: %w", m.PaymentID, err)
	}
	return nil
}

// FindByPaymentIDAndGroupID retrieves one payment, mapping absence to
// apperrors.ErrNotFound.
func (r *PgxPaymentRepository) FindByPaymentIDAndGroupID(ctx context.Context, paymentID, groupID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1 AND group_id = $2;`
	row := r.Pool.QueryRow(ctx, query, paymentID, groupID)

	payment, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query payment %s: %w", paymentID, err)
	}
	return payment, nil
}

// FindByGroupID retrieves the group's payments, filtered and sorted per the
// options.
func (r *PgxPaymentRepository) FindByGroupID(ctx context.Context, groupID string, filter *domain.FilterOptions) ([]domain.Payment, error) {
	query, args := groupPaymentsQuery(groupID, filter)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query group %s payments: %w", groupID, err)
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, *payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payment rows: %w", err)
	}
	return payments, nil
}

// DeletePayment removes the payment row from active storage.
func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, payment domain.Payment) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1;`, payment.ID)
	if err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", payment.ID, err)
	}
	return nil
}

// groupPaymentsQuery compiles the filter/sort contract to SQL: title is a
// case-insensitive substring match, status and creator are exact matches,
// all AND-combined; ordering is by title or date in the requested direction.
func groupPaymentsQuery(groupID string, filter *domain.FilterOptions) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + paymentColumns + ` FROM payments WHERE group_id = $1`)
	args := []any{groupID}

	if filter != nil {
		if filter.Title != nil {
			args = append(args, "%"+*filter.Title+"%")
			fmt.Fprintf(&sb, " AND title ILIKE $%d", len(args))
		}
		if filter.Status != nil {
			args = append(args, string(*filter.Status))
			fmt.Fprintf(&sb, " AND status = $%d", len(args))
		}
		if filter.CreatorID != nil {
			args = append(args, *filter.CreatorID)
			fmt.Fprintf(&sb, " AND creator_id = $%d", len(args))
		}

		column := "date"
		if filter.SortedBy == domain.SortedByTitle {
			column = "title"
		}
		direction := "ASC"
		if filter.SortOrder == domain.Descending {
			direction = "DESC"
		}
		fmt.Fprintf(&sb, " ORDER BY %s %s", column, direction)
	}

	sb.WriteString(";")
	return sb.String(), args
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var m models.Payment
	var history []byte
	err := row.Scan(
		&m.PaymentID, &m.GroupID, &m.CreatorID, &m.RecipientID, &m.Title, &m.Type,
		&m.AmountValue, &m.AmountCurrency, &m.FxTargetCurrency, &m.FxExchangeRate,
		&m.Date, &m.CreatedAt, &m.UpdatedAt, &m.AttachmentID, &m.Status, &history,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(history, &m.History); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payment history: %w", err)
	}
	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

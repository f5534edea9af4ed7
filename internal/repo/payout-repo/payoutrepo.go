package payoutrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/lfreitas-dev/pixadmin/internal/domain"
	"github.com/lfreitas-dev/pixadmin/internal/pg"
	"go.uber.org/zap"
)

const payoutColumns = `
	id, reference, COALESCE(destination_type, ''), COALESCE(destination_key, ''),
	COALESCE(beneficiary_name, ''), COALESCE(doc_type, ''), COALESCE(doc_number, ''),
	amount, status, scheduled_for, approved_by, approved_at, provider_raw, created_at
`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Save(ctx context.Context, payout *domain.Payout) error {
	query := `
        INSERT INTO payouts (reference, destination_type, destination_key, beneficiary_name, doc_type, doc_number, amount, status, scheduled_for)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		payout.Reference, payout.DestinationType, payout.DestinationKey, payout.BeneficiaryName,
		payout.DocType, payout.DocNumber, payout.Amount, payout.Status, payout.ScheduledFor,
	).Scan(&payout.ID, &payout.CreatedAt)
	if err != nil {
		zap.L().Error("can't save payout", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Payout, error) {
	query := `SELECT ` + payoutColumns + ` FROM payouts WHERE id = $1`
	payout, err := r.scanPayout(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find payout", zap.Error(err))
		return nil, err
	}
	return payout, nil
}

func (r *Repository) FindByReference(ctx context.Context, reference string) (*domain.Payout, error) {
	query := `SELECT ` + payoutColumns + ` FROM payouts WHERE reference = $1`
	payout, err := r.scanPayout(r.db.QueryRow(ctx, query, reference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find payout by reference", zap.Error(err))
		return nil, err
	}
	return payout, nil
}

func (r *Repository) List(ctx context.Context, status string) ([]domain.Payout, error) {
	query := `SELECT ` + payoutColumns + ` FROM payouts`
	var args []any
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		payout, err := r.scanPayout(rows)
		if err != nil {
			zap.L().Error("can't scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, *payout)
	}
	return payouts, nil
}

// Approve transitions a payout from "requested" to "approved". The status
// check lives in the statement so concurrent approvals cannot double-apply.
func (r *Repository) Approve(ctx context.Context, id, approvedBy int) (int64, error) {
	query := `
        UPDATE payouts
        SET status = 'approved', approved_by = $1, approved_at = NOW()
        WHERE id = $2 AND status = 'requested'
    `
	var affected int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, approvedBy, id)
		if err != nil {
			zap.L().Error("can't approve payout", zap.Error(err))
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (r *Repository) scanPayout(row pgx.Row) (*domain.Payout, error) {
	var payout domain.Payout
	err := row.Scan(
		&payout.ID, &payout.Reference, &payout.DestinationType, &payout.DestinationKey,
		&payout.BeneficiaryName, &payout.DocType, &payout.DocNumber, &payout.Amount,
		&payout.Status, &payout.ScheduledFor, &payout.ApprovedBy, &payout.ApprovedAt,
		&payout.ProviderRaw, &payout.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &payout, nil
}

package payoutrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const payoutColumns = "id, app, receiver, amount, kind, reference, status, attempts, last_error, created_at, sent_at"

// Repository is the payout outbox. Rows are written inside the bundle
// transaction and drained by the dispatcher.
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

func (r *Repository) Enqueue(ctx context.Context, payout *domain.Payout) error {
	query := `
        INSERT INTO payouts (id, app, receiver, amount, kind, reference, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			payout.ID.String(), string(payout.App), string(payout.Receiver), payout.Amount,
			string(payout.Kind), payout.Reference, string(payout.Status), payout.CreatedAt)
		if err != nil {
			zap.L().Error("can't enqueue payout", zap.Stringer("id", payout.ID), zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) FindPending(ctx context.Context, limit uint32) ([]domain.Payout, error) {
	query := `
        SELECT ` + payoutColumns + `
        FROM payouts
        WHERE status = 'PENDING'
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get pending payouts", zap.Error(err))
		return nil, err
	}
	return collect(rows)
}

func (r *Repository) FindByReceiver(ctx context.Context, receiver domain.Address) ([]domain.Payout, error) {
	query := `
        SELECT ` + payoutColumns + `
        FROM payouts
        WHERE receiver = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, string(receiver))
	if err != nil {
		zap.L().Error("can't get payouts", zap.String("receiver", string(receiver)), zap.Error(err))
		return nil, err
	}
	return collect(rows)
}

func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	query := `
        UPDATE payouts
        SET status = 'SENT', attempts = attempts + 1, sent_at = $1
        WHERE id = $2
    `
	return r.update(ctx, id, query, sentAt, id.String())
}

func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	query := `
        UPDATE payouts
        SET status = 'FAILED', attempts = attempts + 1, last_error = $1
        WHERE id = $2
    `
	return r.update(ctx, id, query, reason, id.String())
}

func (r *Repository) update(ctx context.Context, id uuid.UUID, query string, args ...any) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, args...)
		if err != nil {
			zap.L().Error("failed to update payout", zap.Stringer("id", id), zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("payout %s: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}

func collect(rows pgx.Rows) ([]domain.Payout, error) {
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		var (
			p      domain.Payout
			id     string
			sentAt *time.Time
		)
		err := rows.Scan(&id, &p.App, &p.Receiver, &p.Amount, &p.Kind, &p.Reference,
			&p.Status, &p.Attempts, &p.LastError, &p.CreatedAt, &sentAt)
		if err != nil {
			zap.L().Error("can't scan payout row", zap.Error(err))
			return nil, err
		}
		if p.ID, err = uuid.Parse(id); err != nil {
			zap.L().Error("invalid payout id", zap.String("id", id), zap.Error(err))
			return nil, err
		}
		p.SentAt = sentAt
		payouts = append(payouts, p)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate payouts", zap.Error(err))
		return nil, err
	}
	return payouts, nil
}

package recordrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/campuspay/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Repository keeps program records as JSONB rows keyed by (namespace, key).
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

func (r *Repository) Get(ctx context.Context, namespace, key string) ([]byte, bool, error) {
	query := `
        SELECT value
        FROM records
        WHERE namespace = $1 AND key = $2
    `
	var value []byte
	err := r.db.QueryRow(ctx, query, namespace, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		zap.L().Error("can't get record", zap.String("namespace", namespace), zap.String("key", key), zap.Error(err))
		return nil, false, err
	}
	return value, true, nil
}

func (r *Repository) Put(ctx context.Context, namespace, key string, value []byte) error {
	query := `
        INSERT INTO records (namespace, key, value, size, updated_at)
        VALUES ($1, $2, $3, $4, NOW())
        ON CONFLICT (namespace, key) DO UPDATE
        SET value = EXCLUDED.value, size = EXCLUDED.size, updated_at = NOW()
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, namespace, key, value, len(value))
		if err != nil {
			zap.L().Error("can't put record", zap.String("namespace", namespace), zap.String("key", key), zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) Delete(ctx context.Context, namespace, key string) error {
	query := `
        DELETE FROM records
        WHERE namespace = $1 AND key = $2
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, namespace, key)
		if err != nil {
			zap.L().Error("can't delete record", zap.String("namespace", namespace), zap.String("key", key), zap.Error(err))
			return err
		}
		return nil
	})
}

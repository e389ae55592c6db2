package recordrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/yhw923/zenkeeper/internal/domain"
	"github.com/yhw923/zenkeeper/internal/pg"
)

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

func (r *Repository) Save(ctx context.Context, record *domain.SavingsRecord) (*domain.SavingsRecord, error) {
	query := `
        INSERT INTO savings_records (user_id, marketplace, title, paid, saved, score, wait_cost, recorded_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		record.UserID, record.Marketplace, record.Title,
		record.Paid, record.Saved, record.Score, record.WaitCost, record.RecordedAt,
	).Scan(&record.ID)
	if err != nil {
		zap.L().Error("can't save record", zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.SavingsRecord, error) {
	query := `
        SELECT id, user_id, marketplace, title, paid, saved, score, wait_cost, recorded_at
        FROM savings_records
        WHERE user_id = $1
        ORDER BY recorded_at ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.SavingsRecord
	for rows.Next() {
		var record domain.SavingsRecord
		err := rows.Scan(&record.ID, &record.UserID, &record.Marketplace, &record.Title,
			&record.Paid, &record.Saved, &record.Score, &record.WaitCost, &record.RecordedAt)
		if err != nil {
			zap.L().Error("can't scan record row", zap.Error(err))
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Update rewrites the editable columns of one owned record. A miss (wrong id
// or another user's record) comes back as nil without an error.
func (r *Repository) Update(ctx context.Context, record *domain.SavingsRecord) (*domain.SavingsRecord, error) {
	query := `
        UPDATE savings_records
        SET title = $1, paid = $2, saved = $3, score = $4
        WHERE id = $5 AND user_id = $6
        RETURNING id, user_id, marketplace, title, paid, saved, score, wait_cost, recorded_at
    `
	var updated domain.SavingsRecord
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		return r.db.QueryRow(ctx, query,
			record.Title, record.Paid, record.Saved, record.Score,
			record.ID, record.UserID,
		).Scan(&updated.ID, &updated.UserID, &updated.Marketplace, &updated.Title,
			&updated.Paid, &updated.Saved, &updated.Score, &updated.WaitCost, &updated.RecordedAt)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to update record", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) DeleteByIDs(ctx context.Context, userID int, ids []int) error {
	query := `
        DELETE FROM savings_records
        WHERE user_id = $1 AND id = ANY($2)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, userID, ids)
		if err != nil {
			zap.L().Error("can't delete records", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) SumSavedByUserID(ctx context.Context, userID int) (int, error) {
	query := `
        SELECT COALESCE(SUM(saved), 0)
        FROM savings_records
        WHERE user_id = $1
    `
	var total int
	err := r.db.QueryRow(ctx, query, userID).Scan(&total)
	if err != nil {
		zap.L().Error("can't sum savings", zap.Error(err))
		return 0, err
	}
	return total, nil
}

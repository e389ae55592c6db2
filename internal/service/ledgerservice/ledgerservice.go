package ledgerservice

import (
	"context"
	"errors"
	"time"

	"github.com/yhw923/zenkeeper/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, record *domain.SavingsRecord) (*domain.SavingsRecord, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.SavingsRecord, error)
	Update(ctx context.Context, record *domain.SavingsRecord) (*domain.SavingsRecord, error)
	DeleteByIDs(ctx context.Context, userID int, ids []int) error
	SumSavedByUserID(ctx context.Context, userID int) (int, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

var ErrRecordNotFound = errors.New("record not found")

type Service struct {
	repo     Repo
	userRepo UserRepo
}

func New(repo Repo, userRepo UserRepo) *Service {
	return &Service{
		repo:     repo,
		userRepo: userRepo,
	}
}

// AddRecord appends one confirmed save decision. The efficiency score is
// always computed here from paid/saved; the wait cost comes from the
// evaluation that preceded the decision and is stored as-is.
func (s *Service) AddRecord(ctx context.Context, userID int, record *domain.SavingsRecord) (*domain.SavingsRecord, error) {
	record.UserID = userID
	if record.Marketplace == "" {
		record.Marketplace = "general"
	}
	record.Score = domain.EfficiencyScore(record.Paid, record.Saved)
	record.RecordedAt = time.Now()

	saved, err := s.repo.Save(ctx, record)
	if err != nil {
		zap.L().Error("can't save record", zap.Error(err))
		return nil, err
	}
	zap.L().Info("record saved", zap.Int("userID", userID), zap.Int("saved", record.Saved))
	return saved, nil
}

func (s *Service) GetRecords(ctx context.Context, userID int) ([]domain.SavingsRecord, error) {
	records, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch records", zap.Error(err))
		return nil, err
	}
	return records, nil
}

// UpdateRecord rewrites title, paid and saved of one owned record and
// recomputes the score from the new amounts. Wait cost and timestamp are
// never touched.
func (s *Service) UpdateRecord(ctx context.Context, userID, recordID int, title string, paid, saved int) (*domain.SavingsRecord, error) {
	record := &domain.SavingsRecord{
		ID:     recordID,
		UserID: userID,
		Title:  title,
		Paid:   paid,
		Saved:  saved,
		Score:  domain.EfficiencyScore(paid, saved),
	}

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		zap.L().Error("failed to update record", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrRecordNotFound
	}
	return updated, nil
}

func (s *Service) DeleteRecords(ctx context.Context, userID int, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.repo.DeleteByIDs(ctx, userID, ids); err != nil {
		zap.L().Error("failed to delete records", zap.Error(err))
		return err
	}
	return nil
}

// Summary returns the cumulative saved amount and its tier band.
func (s *Service) Summary(ctx context.Context, userID int) (int, Tier, error) {
	total, err := s.repo.SumSavedByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to aggregate savings", zap.Error(err))
		return 0, 0, err
	}
	return total, ClassifyTier(total), nil
}

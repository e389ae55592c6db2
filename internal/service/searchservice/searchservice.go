package searchservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yhw923/zenkeeper/internal/config"
	"github.com/yhw923/zenkeeper/internal/domain"
	"github.com/yhw923/zenkeeper/internal/search"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type SearchClient interface {
	Search(ctx context.Context, query string) ([]search.Item, error)
}

var ErrEmptyQuery = errors.New("empty search query")

type Service struct {
	client       SearchClient
	baselineRate int
	group        singleflight.Group
}

func New(cfg *config.Config, client SearchClient) *Service {
	return &Service{
		client:       client,
		baselineRate: cfg.TimeValueRate,
	}
}

// Search resolves the query (explicit name first, model code from the URL
// otherwise), fetches one page of listings and ranks them. Identical
// concurrent queries share a single upstream call.
func (s *Service) Search(ctx context.Context, rawURL, name string, referencePrice int) (string, []domain.Candidate, error) {
	query := strings.TrimSpace(name)
	if query == "" {
		query = ModelCode(rawURL)
	}
	if query == "" {
		return "", nil, ErrEmptyQuery
	}

	key := fmt.Sprintf("%s|%d", query, referencePrice)
	v, err, _ := s.group.Do(key, func() (any, error) {
		items, err := s.client.Search(ctx, query)
		if err != nil {
			return nil, err
		}
		return TopDeals(items, referencePrice), nil
	})
	if err != nil {
		zap.L().Error("search failed", zap.String("query", query), zap.Error(err))
		return query, nil, err
	}

	candidates := v.([]domain.Candidate)
	zap.L().Info("search completed", zap.String("query", query), zap.Int("candidates", len(candidates)))
	return query, candidates, nil
}

// Suggest derives a model-code query from a product URL for the UI to
// pre-fill. Empty when nothing extractable; the user can still type a name.
func (s *Service) Suggest(rawURL string) string {
	return ModelCode(rawURL)
}

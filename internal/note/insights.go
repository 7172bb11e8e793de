package note

import (
	"context"
	"fmt"

	dom "github.com/foundrylabs/daybrief/internal/domain"

	"github.com/google/uuid"
)

// GenerateInsight produces one strategic insight from free-form founder
// context and persists it for the dashboard.
func (s *Service) GenerateInsight(ctx context.Context, founderID, founderContext string) (dom.Insight, error) {
	content, err := s.gen.GenerateInsight(ctx, founderContext)
	if err != nil {
		return dom.Insight{}, err
	}

	created, err := s.insights.Create(ctx, dom.Insight{
		ID:        uuid.New().String(),
		FounderID: founderID,
		Type:      "strategic",
		Content:   content,
	})
	if err != nil {
		return dom.Insight{}, fmt.Errorf("persist insight: %w", err)
	}

	s.invalidateDashboard(ctx, founderID)
	return created, nil
}

func (s *Service) ListInsights(ctx context.Context, founderID string, limit int) ([]dom.Insight, error) {
	if limit <= 0 {
		limit = dashboardInsightLimit
	}
	return s.insights.ListActive(ctx, founderID, limit)
}

// DismissInsight hides an insight from future listings. Returns
// ErrInsightNotFound when the insight is missing, already dismissed, or
// owned by another founder.
func (s *Service) DismissInsight(ctx context.Context, founderID, insightID string) error {
	ok, err := s.insights.Dismiss(ctx, founderID, insightID, s.now())
	if err != nil {
		return err
	}
	if !ok {
		return ErrInsightNotFound
	}
	s.invalidateDashboard(ctx, founderID)
	return nil
}

package service

import (
	"context"

	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/domain"
	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/repository"
)

// FeedbackService covers the community side tables: suggested corrections
// and star ratings.
type FeedbackService struct {
	contributions *repository.ContributionRepository
	ratings       *repository.RatingRepository
}

func NewFeedbackService(contributions *repository.ContributionRepository, ratings *repository.RatingRepository) *FeedbackService {
	return &FeedbackService{contributions: contributions, ratings: ratings}
}

func (s *FeedbackService) Contribute(ctx context.Context, contrib domain.Contribution) (domain.Contribution, error) {
	return s.contributions.Create(ctx, contrib)
}

func (s *FeedbackService) ListContributions(ctx context.Context, userID string) ([]domain.Contribution, error) {
	return s.contributions.ListByUser(ctx, userID)
}

func (s *FeedbackService) Rate(ctx context.Context, userID, originalText, translatedText string, value int) (domain.Rating, error) {
	return s.ratings.Upsert(ctx, userID, originalText, translatedText, value)
}

// UndoRating reports whether a rating was actually removed; a miss is a
// "nothing to undo" outcome, not an error.
func (s *FeedbackService) UndoRating(ctx context.Context, userID, originalText, translatedText string, value int) (bool, error) {
	deleted, err := s.ratings.Undo(ctx, userID, originalText, translatedText, value)
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/domain"
	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/repository"
)

// HistoryService joins the history ledger with the saved, rating and
// contribution tables into the enriched view the client renders, and owns
// the cascading deletes between history and saved.
type HistoryService struct {
	history       *repository.HistoryRepository
	saved         *repository.SavedRepository
	ratings       *repository.RatingRepository
	contributions *repository.ContributionRepository
}

func NewHistoryService(
	history *repository.HistoryRepository,
	saved *repository.SavedRepository,
	ratings *repository.RatingRepository,
	contributions *repository.ContributionRepository,
) *HistoryService {
	return &HistoryService{
		history:       history,
		saved:         saved,
		ratings:       ratings,
		contributions: contributions,
	}
}

// GetHistory returns the user's history newest first, each row annotated
// with saved / rating / suggestion metadata. The annotation tables are
// batch-fetched once and matched in memory on the (original_text,
// translated_text) pair — contributions on original_text alone — keeping the
// join linear in history size. Any batch failure fails the whole call: the
// client never sees partially-enriched rows.
func (s *HistoryService) GetHistory(ctx context.Context, userID, search string) ([]domain.EnrichedHistoryRecord, error) {
	records, err := s.history.List(ctx, userID, search)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnrichment, err)
	}

	savedPairs, err := s.saved.ListPairs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnrichment, err)
	}
	ratingValues, err := s.ratings.ListValues(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnrichment, err)
	}
	suggestions, err := s.contributions.ListSuggestions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnrichment, err)
	}

	enriched := make([]domain.EnrichedHistoryRecord, 0, len(records))
	for _, rec := range records {
		pair := [2]string{rec.OriginalText, rec.TranslatedText}
		item := domain.EnrichedHistoryRecord{HistoryRecord: rec}
		_, item.IsSaved = savedPairs[pair]
		if value, ok := ratingValues[pair]; ok {
			item.Rating = &value
		}
		if suggestion, ok := suggestions[rec.OriginalText]; ok {
			item.Suggestion = &suggestion
		}
		enriched = append(enriched, item)
	}
	return enriched, nil
}

// DeleteItem removes one history row and its exactly-matching saved rows
// atomically.
func (s *HistoryService) DeleteItem(ctx context.Context, userID, historyID string) error {
	return s.history.DeleteWithSaved(ctx, userID, historyID)
}

// ClearAll wipes the user's history together with all their saved
// translations. Ratings and contributions survive.
func (s *HistoryService) ClearAll(ctx context.Context, userID string) error {
	return s.history.ClearWithSaved(ctx, userID)
}

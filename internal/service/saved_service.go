package service

import (
	"context"

	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/domain"
	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/repository"
)

type SavedService struct {
	repo *repository.SavedRepository
}

func NewSavedService(repo *repository.SavedRepository) *SavedService {
	return &SavedService{repo: repo}
}

// Save bookmarks a pair; calling it again with the same (original,
// translated) returns the existing bookmark unchanged.
func (s *SavedService) Save(ctx context.Context, item domain.SavedTranslation) (domain.SavedTranslation, error) {
	return s.repo.Save(ctx, item)
}

// Unsave reports whether anything was actually removed so the handler can
// word its response; removing nothing is not an error.
func (s *SavedService) Unsave(ctx context.Context, userID, originalText, translatedText string) (bool, error) {
	deleted, err := s.repo.Unsave(ctx, userID, originalText, translatedText)
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

func (s *SavedService) List(ctx context.Context, userID, search string) ([]domain.SavedTranslation, error) {
	return s.repo.List(ctx, userID, search)
}

func (s *SavedService) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *SavedService) ClearAll(ctx context.Context, userID string) error {
	return s.repo.ClearAll(ctx, userID)
}

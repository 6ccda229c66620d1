package service

import (
	"context"
	"log/slog"

	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/domain"
	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/providers"
	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/repository"
)

type TranslationResult struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type TranslationService struct {
	registry *providers.Registry
	history  *repository.HistoryRepository
	logger   *slog.Logger
}

func NewTranslationService(registry *providers.Registry, history *repository.HistoryRepository, logger *slog.Logger) *TranslationService {
	return &TranslationService{registry: registry, history: history, logger: logger}
}

// Translate runs the text through the model for the requested direction.
// When userID is non-empty the result is recorded in the user's history,
// subject to the ledger's consecutive-duplicate check; anonymous requests
// never persist anything. The model call completes before any database work
// starts, so no transaction is held while the model runs.
func (s *TranslationService) Translate(ctx context.Context, userID, text, sourceLang, targetLang string) (TranslationResult, error) {
	translated, err := s.registry.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		return TranslationResult{}, err
	}

	result := TranslationResult{
		Original:   text,
		Translated: translated,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	}

	if userID == "" {
		return result, nil
	}

	_, inserted, err := s.history.Record(ctx, domain.HistoryRecord{
		UserID:         userID,
		OriginalText:   text,
		TranslatedText: translated,
		SourceLang:     sourceLang,
		TargetLang:     targetLang,
	})
	if err != nil {
		return TranslationResult{}, err
	}
	if !inserted {
		s.logger.Debug("history insert skipped, consecutive duplicate",
			slog.String("user_id", userID),
			slog.String("target_lang", targetLang))
	}

	return result, nil
}

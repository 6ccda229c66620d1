package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/domain"
)

// ErrDuplicateContribution reports that the user already submitted the exact
// same (original_text, suggested_translation) pair.
var ErrDuplicateContribution = errors.New("duplicate contribution")

type ContributionRepository struct {
	db *sql.DB
}

func NewContributionRepository(db *sql.DB) *ContributionRepository {
	return &ContributionRepository{db: db}
}

func (r *ContributionRepository) Create(ctx context.Context, contrib domain.Contribution) (domain.Contribution, error) {
	var existingID string
	err := r.db.QueryRowContext(ctx, `
		SELECT id
		FROM contributions
		WHERE user_id = ? AND original_text = ? AND suggested_translation = ?
	`, contrib.UserID, contrib.OriginalText, contrib.SuggestedTranslation).Scan(&existingID)
	switch {
	case err == nil:
		return domain.Contribution{}, ErrDuplicateContribution
	case errors.Is(err, sql.ErrNoRows):
		// fall through to insert
	default:
		return domain.Contribution{}, err
	}

	if contrib.ID == "" {
		contrib.ID = uuid.NewString()
	}
	if contrib.CreatedAt.IsZero() {
		contrib.CreatedAt = time.Now().UTC()
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO contributions (id, user_id, original_text, suggested_translation, source_lang, target_lang, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, contrib.ID, contrib.UserID, contrib.OriginalText, contrib.SuggestedTranslation, contrib.SourceLang, contrib.TargetLang, contrib.CreatedAt)
	return contrib, err
}

func (r *ContributionRepository) ListByUser(ctx context.Context, userID string) ([]domain.Contribution, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, original_text, suggested_translation, source_lang, target_lang, created_at
		FROM contributions
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contribs []domain.Contribution
	for rows.Next() {
		var contrib domain.Contribution
		if err := rows.Scan(&contrib.ID, &contrib.UserID, &contrib.OriginalText, &contrib.SuggestedTranslation, &contrib.SourceLang, &contrib.TargetLang, &contrib.CreatedAt); err != nil {
			return nil, err
		}
		contribs = append(contribs, contrib)
	}
	return contribs, rows.Err()
}

// ListSuggestions returns the user's suggestions keyed by original_text, for
// batch lookup during history enrichment. When a user contributed several
// suggestions for the same original, the newest one wins.
func (r *ContributionRepository) ListSuggestions(ctx context.Context, userID string) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT original_text, suggested_translation
		FROM contributions
		WHERE user_id = ?
		ORDER BY created_at ASC, id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	suggestions := make(map[string]string)
	for rows.Next() {
		var original, suggested string
		if err := rows.Scan(&original, &suggested); err != nil {
			return nil, err
		}
		suggestions[original] = suggested
	}
	return suggestions, rows.Err()
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/domain"
)

type RatingRepository struct {
	db *sql.DB
}

func NewRatingRepository(db *sql.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Upsert keeps one logical rating per (user_id, original_text,
// translated_text). A resubmission with the same value is a no-op success;
// a different value updates the row in place; otherwise a new row is
// inserted.
func (r *RatingRepository) Upsert(ctx context.Context, userID, originalText, translatedText string, value int) (domain.Rating, error) {
	existing, err := r.find(ctx, userID, originalText, translatedText)
	switch {
	case err == nil:
		if existing.Rating == value {
			return existing, nil
		}
		now := time.Now().UTC()
		if _, err := r.db.ExecContext(ctx, `
			UPDATE ratings
			SET rating = ?, updated_at = ?
			WHERE id = ?
		`, value, now, existing.ID); err != nil {
			return domain.Rating{}, err
		}
		existing.Rating = value
		existing.UpdatedAt = now
		return existing, nil
	case errors.Is(err, sql.ErrNoRows):
		// fall through to insert
	default:
		return domain.Rating{}, err
	}

	now := time.Now().UTC()
	rating := domain.Rating{
		ID:             uuid.NewString(),
		UserID:         userID,
		OriginalText:   originalText,
		TranslatedText: translatedText,
		Rating:         value,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO ratings (id, user_id, original_text, translated_text, rating, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rating.ID, rating.UserID, rating.OriginalText, rating.TranslatedText, rating.Rating, rating.CreatedAt, rating.UpdatedAt)
	return rating, err
}

// Undo deletes the rating matching the exact value as well as the pair.
// Reports how many rows were removed; zero means nothing to undo.
func (r *RatingRepository) Undo(ctx context.Context, userID, originalText, translatedText string, value int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM ratings
		WHERE user_id = ? AND original_text = ? AND translated_text = ? AND rating = ?
	`, userID, originalText, translatedText, value)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListValues returns the user's ratings keyed by (original_text,
// translated_text), for batch lookup during history enrichment.
func (r *RatingRepository) ListValues(ctx context.Context, userID string) (map[[2]string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT original_text, translated_text, rating
		FROM ratings
		WHERE user_id = ?
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[[2]string]int)
	for rows.Next() {
		var original, translated string
		var value int
		if err := rows.Scan(&original, &translated, &value); err != nil {
			return nil, err
		}
		values[[2]string{original, translated}] = value
	}
	return values, rows.Err()
}

func (r *RatingRepository) find(ctx context.Context, userID, originalText, translatedText string) (domain.Rating, error) {
	var rating domain.Rating
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, original_text, translated_text, rating, created_at, updated_at
		FROM ratings
		WHERE user_id = ? AND original_text = ? AND translated_text = ?
	`, userID, originalText, translatedText).Scan(
		&rating.ID, &rating.UserID, &rating.OriginalText, &rating.TranslatedText, &rating.Rating, &rating.CreatedAt, &rating.UpdatedAt)
	return rating, err
}

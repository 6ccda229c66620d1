package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/domain"
)

type SavedRepository struct {
	db *sql.DB
}

func NewSavedRepository(db *sql.DB) *SavedRepository {
	return &SavedRepository{db: db}
}

// Save bookmarks a translation pair. The create is idempotent on
// (user_id, original_text, translated_text): when a matching row already
// exists it is returned unchanged and no duplicate is inserted.
func (r *SavedRepository) Save(ctx context.Context, item domain.SavedTranslation) (domain.SavedTranslation, error) {
	existing, err := r.find(ctx, item.UserID, item.OriginalText, item.TranslatedText)
	switch {
	case err == nil:
		return existing, nil
	case errors.Is(err, sql.ErrNoRows):
		// fall through to insert
	default:
		return domain.SavedTranslation{}, err
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO saved_translations (id, user_id, original_text, translated_text, source_lang, target_lang, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, item.ID, item.UserID, item.OriginalText, item.TranslatedText, item.SourceLang, item.TargetLang, item.Note, item.CreatedAt)
	return item, err
}

// Unsave deletes by (user_id, original_text, translated_text) and reports how
// many rows went away. Zero is a valid outcome, not an error.
func (r *SavedRepository) Unsave(ctx context.Context, userID, originalText, translatedText string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM saved_translations
		WHERE user_id = ? AND original_text = ? AND translated_text = ?
	`, userID, originalText, translatedText)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SavedRepository) List(ctx context.Context, userID, search string) ([]domain.SavedTranslation, error) {
	query := `
		SELECT id, user_id, original_text, translated_text, source_lang, target_lang, note, created_at
		FROM saved_translations
		WHERE user_id = ?
	`
	args := []any{userID}
	if search != "" {
		query += ` AND (LOWER(original_text) LIKE ? OR LOWER(translated_text) LIKE ?)`
		pattern := "%" + strings.ToLower(search) + "%"
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.SavedTranslation
	for rows.Next() {
		item, err := scanSaved(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListPairs returns the (original_text, translated_text) pairs of every saved
// row for the user, for batch membership checks during history enrichment.
func (r *SavedRepository) ListPairs(ctx context.Context, userID string) (map[[2]string]struct{}, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT original_text, translated_text
		FROM saved_translations
		WHERE user_id = ?
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pairs := make(map[[2]string]struct{})
	for rows.Next() {
		var original, translated string
		if err := rows.Scan(&original, &translated); err != nil {
			return nil, err
		}
		pairs[[2]string{original, translated}] = struct{}{}
	}
	return pairs, rows.Err()
}

// Delete removes one saved row by id. Returns sql.ErrNoRows when the row is
// absent or owned by another user.
func (r *SavedRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM saved_translations WHERE id = ? AND user_id = ?
	`, id, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SavedRepository) ClearAll(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM saved_translations WHERE user_id = ?
	`, userID)
	return err
}

func (r *SavedRepository) find(ctx context.Context, userID, originalText, translatedText string) (domain.SavedTranslation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, original_text, translated_text, source_lang, target_lang, note, created_at
		FROM saved_translations
		WHERE user_id = ? AND original_text = ? AND translated_text = ?
	`, userID, originalText, translatedText)
	return scanSaved(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSaved(row rowScanner) (domain.SavedTranslation, error) {
	var item domain.SavedTranslation
	var note sql.NullString
	err := row.Scan(&item.ID, &item.UserID, &item.OriginalText, &item.TranslatedText, &item.SourceLang, &item.TargetLang, &note, &item.CreatedAt)
	if err != nil {
		return domain.SavedTranslation{}, err
	}
	if note.Valid {
		value := note.String
		item.Note = &value
	}
	return item, nil
}

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

type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Record appends rec to the user's translation history unless the user's
// newest row already holds the same (original_text, target_lang) pair. The
// comparison deliberately ignores source_lang and translated_text: the check
// only guards against an immediately repeated identical request in the same
// direction, it is not a uniqueness constraint. Returns true when a row was
// inserted.
//
// The lookup and the insert share one transaction so two concurrent identical
// requests cannot both pass the check on the same connection; suppression
// across connections stays best-effort.
func (r *HistoryRepository) Record(ctx context.Context, rec domain.HistoryRecord) (domain.HistoryRecord, bool, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.HistoryRecord{}, false, err
	}
	defer tx.Rollback()

	var lastOriginal, lastTarget string
	err = tx.QueryRowContext(ctx, `
		SELECT original_text, target_lang
		FROM translation_history
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, rec.UserID).Scan(&lastOriginal, &lastTarget)
	switch {
	case err == nil:
		if lastOriginal == rec.OriginalText && lastTarget == rec.TargetLang {
			return domain.HistoryRecord{}, false, tx.Commit()
		}
	case errors.Is(err, sql.ErrNoRows):
		// empty history, always insert
	default:
		return domain.HistoryRecord{}, false, err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO translation_history (id, user_id, original_text, translated_text, source_lang, target_lang, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.UserID, rec.OriginalText, rec.TranslatedText, rec.SourceLang, rec.TargetLang, rec.CreatedAt); err != nil {
		return domain.HistoryRecord{}, false, err
	}

	return rec, true, tx.Commit()
}

// List returns the user's history newest first. A non-empty search narrows
// the result to rows whose original or translated text contains the term,
// case-insensitively.
func (r *HistoryRepository) List(ctx context.Context, userID, search string) ([]domain.HistoryRecord, error) {
	query := `
		SELECT id, user_id, original_text, translated_text, source_lang, target_lang, created_at
		FROM translation_history
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

	var records []domain.HistoryRecord
	for rows.Next() {
		var rec domain.HistoryRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.OriginalText, &rec.TranslatedText, &rec.SourceLang, &rec.TargetLang, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *HistoryRepository) Get(ctx context.Context, userID, id string) (domain.HistoryRecord, error) {
	var rec domain.HistoryRecord
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, original_text, translated_text, source_lang, target_lang, created_at
		FROM translation_history
		WHERE id = ? AND user_id = ?
	`, id, userID).Scan(&rec.ID, &rec.UserID, &rec.OriginalText, &rec.TranslatedText, &rec.SourceLang, &rec.TargetLang, &rec.CreatedAt)
	return rec, err
}

// DeleteWithSaved removes one history row and every saved translation
// matching the row's exact (original_text, translated_text, source_lang,
// target_lang) 4-tuple, in a single transaction. The 4-tuple match is
// stricter than the 2-tuple used elsewhere so a save that shares text but
// differs in direction survives. Returns sql.ErrNoRows when the row is
// absent or owned by another user.
func (r *HistoryRepository) DeleteWithSaved(ctx context.Context, userID, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var rec domain.HistoryRecord
	err = tx.QueryRowContext(ctx, `
		SELECT original_text, translated_text, source_lang, target_lang
		FROM translation_history
		WHERE id = ? AND user_id = ?
	`, id, userID).Scan(&rec.OriginalText, &rec.TranslatedText, &rec.SourceLang, &rec.TargetLang)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM saved_translations
		WHERE user_id = ? AND original_text = ? AND translated_text = ? AND source_lang = ? AND target_lang = ?
	`, userID, rec.OriginalText, rec.TranslatedText, rec.SourceLang, rec.TargetLang); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM translation_history WHERE id = ?
	`, id); err != nil {
		return err
	}

	return tx.Commit()
}

// ClearWithSaved deletes all history rows and all saved translations for the
// user in one transaction. History is treated as the superset of saved;
// ratings and contributions are left untouched.
func (r *HistoryRepository) ClearWithSaved(ctx context.Context, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM translation_history WHERE user_id = ?
	`, userID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM saved_translations WHERE user_id = ?
	`, userID); err != nil {
		return err
	}

	return tx.Commit()
}

package domain

import "time"

type User struct {
	ID             string    `db:"id" json:"id"`
	Username       string    `db:"username" json:"username"`
	HashedPassword string    `db:"hashed_password" json:"-"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// HistoryRecord is one row of the per-user translation log. Rows are never
// mutated after insert, only deleted.
type HistoryRecord struct {
	ID             string    `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"user_id"`
	OriginalText   string    `db:"original_text" json:"original_text"`
	TranslatedText string    `db:"translated_text" json:"translated_text"`
	SourceLang     string    `db:"source_lang" json:"source_lang"`
	TargetLang     string    `db:"target_lang" json:"target_lang"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type SavedTranslation struct {
	ID             string    `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"user_id"`
	OriginalText   string    `db:"original_text" json:"original_text"`
	TranslatedText string    `db:"translated_text" json:"translated_text"`
	SourceLang     string    `db:"source_lang" json:"source_lang"`
	TargetLang     string    `db:"target_lang" json:"target_lang"`
	Note           *string   `db:"note" json:"note,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type Contribution struct {
	ID                   string    `db:"id" json:"id"`
	UserID               string    `db:"user_id" json:"user_id"`
	OriginalText         string    `db:"original_text" json:"original_text"`
	SuggestedTranslation string    `db:"suggested_translation" json:"suggested_translation"`
	SourceLang           string    `db:"source_lang" json:"source_lang"`
	TargetLang           string    `db:"target_lang" json:"target_lang"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
}

type Rating struct {
	ID             string    `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"user_id"`
	OriginalText   string    `db:"original_text" json:"original_text"`
	TranslatedText string    `db:"translated_text" json:"translated_text"`
	Rating         int       `db:"rating" json:"rating"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// EnrichedHistoryRecord is a HistoryRecord joined with the caller's saved,
// rating and contribution annotations for display.
type EnrichedHistoryRecord struct {
	HistoryRecord
	IsSaved    bool    `json:"is_saved"`
	Rating     *int    `json:"rating"`
	Suggestion *string `json:"suggestion"`
}

package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/config"
	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/domain"
	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/repository"
	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/storage"
)

type historyFixture struct {
	db            *sql.DB
	users         *repository.UserRepository
	history       *repository.HistoryRepository
	saved         *repository.SavedRepository
	ratings       *repository.RatingRepository
	contributions *repository.ContributionRepository
	service       *HistoryService
}

func newHistoryFixture(t *testing.T) *historyFixture {
	t.Helper()

	db, err := storage.NewSQLite(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, storage.RunMigrations(context.Background(), db))

	f := &historyFixture{
		db:            db,
		users:         repository.NewUserRepository(db),
		history:       repository.NewHistoryRepository(db),
		saved:         repository.NewSavedRepository(db),
		ratings:       repository.NewRatingRepository(db),
		contributions: repository.NewContributionRepository(db),
	}
	f.service = NewHistoryService(f.history, f.saved, f.ratings, f.contributions)
	return f
}

func TestGetHistoryEnrichment(t *testing.T) {
	f := newHistoryFixture(t)
	ctx := context.Background()
	user, err := f.users.Create(ctx, "alice", "hashed")
	require.NoError(t, err)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// h1: saved, rated 4, with a contributed suggestion. h2: bare.
	_, _, err = f.history.Record(ctx, domain.HistoryRecord{
		UserID: user.ID, OriginalText: "hello", TranslatedText: "xin chào",
		SourceLang: "en", TargetLang: "vi", CreatedAt: base,
	})
	require.NoError(t, err)
	_, _, err = f.history.Record(ctx, domain.HistoryRecord{
		UserID: user.ID, OriginalText: "goodbye", TranslatedText: "tạm biệt",
		SourceLang: "en", TargetLang: "vi", CreatedAt: base.Add(time.Second),
	})
	require.NoError(t, err)

	_, err = f.saved.Save(ctx, domain.SavedTranslation{
		UserID: user.ID, OriginalText: "hello", TranslatedText: "xin chào", SourceLang: "en", TargetLang: "vi",
	})
	require.NoError(t, err)
	_, err = f.ratings.Upsert(ctx, user.ID, "hello", "xin chào", 4)
	require.NoError(t, err)
	_, err = f.contributions.Create(ctx, domain.Contribution{
		UserID: user.ID, OriginalText: "hello", SuggestedTranslation: "x", SourceLang: "en", TargetLang: "vi",
	})
	require.NoError(t, err)

	records, err := f.service.GetHistory(ctx, user.ID, "")
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first: h2 then h1.
	h2 := records[0]
	require.Equal(t, "goodbye", h2.OriginalText)
	require.False(t, h2.IsSaved)
	require.Nil(t, h2.Rating)
	require.Nil(t, h2.Suggestion)

	h1 := records[1]
	require.Equal(t, "hello", h1.OriginalText)
	require.True(t, h1.IsSaved)
	require.NotNil(t, h1.Rating)
	require.Equal(t, 4, *h1.Rating)
	require.NotNil(t, h1.Suggestion)
	require.Equal(t, "x", *h1.Suggestion)
}

func TestGetHistoryMatchesSavedOnTextPairOnly(t *testing.T) {
	f := newHistoryFixture(t)
	ctx := context.Background()
	user, err := f.users.Create(ctx, "alice", "hashed")
	require.NoError(t, err)

	_, _, err = f.history.Record(ctx, domain.HistoryRecord{
		UserID: user.ID, OriginalText: "hello", TranslatedText: "xin chào",
		SourceLang: "en", TargetLang: "vi", CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	// Saved under the opposite direction: enrichment matches on the
	// (original, translated) pair alone and still flags the row.
	_, err = f.saved.Save(ctx, domain.SavedTranslation{
		UserID: user.ID, OriginalText: "hello", TranslatedText: "xin chào", SourceLang: "vi", TargetLang: "en",
	})
	require.NoError(t, err)

	records, err := f.service.GetHistory(ctx, user.ID, "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.True(t, records[0].IsSaved)
}

func TestGetHistoryScopedToUser(t *testing.T) {
	f := newHistoryFixture(t)
	ctx := context.Background()
	alice, err := f.users.Create(ctx, "alice", "hashed")
	require.NoError(t, err)
	bob, err := f.users.Create(ctx, "bob", "hashed")
	require.NoError(t, err)

	_, _, err = f.history.Record(ctx, domain.HistoryRecord{
		UserID: alice.ID, OriginalText: "hello", TranslatedText: "xin chào",
		SourceLang: "en", TargetLang: "vi", CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	records, err := f.service.GetHistory(ctx, bob.ID, "")
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestGetHistoryFailsWholeOnStorageError(t *testing.T) {
	f := newHistoryFixture(t)
	ctx := context.Background()
	user, err := f.users.Create(ctx, "alice", "hashed")
	require.NoError(t, err)

	// A closed database makes every batch fetch fail; the call must fail as
	// a unit rather than return partially-enriched rows.
	require.NoError(t, f.db.Close())

	_, err = f.service.GetHistory(ctx, user.ID, "")
	require.ErrorIs(t, err, ErrEnrichment)
}

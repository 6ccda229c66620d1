package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/domain"
)

func TestContributionRejectsDuplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewContributionRepository(db)
	user := createTestUser(t, db, "alice")
	ctx := context.Background()

	contrib := domain.Contribution{
		UserID: user.ID, OriginalText: "hello", SuggestedTranslation: "chào bạn", SourceLang: "en", TargetLang: "vi",
	}

	_, err := repo.Create(ctx, contrib)
	require.NoError(t, err)

	_, err = repo.Create(ctx, contrib)
	require.ErrorIs(t, err, ErrDuplicateContribution)
	require.Equal(t, 1, countRows(t, db, "contributions", user.ID))

	// A different suggestion for the same original is allowed.
	contrib.SuggestedTranslation = "xin chào bạn"
	_, err = repo.Create(ctx, contrib)
	require.NoError(t, err)
	require.Equal(t, 2, countRows(t, db, "contributions", user.ID))
}

func TestContributionDuplicateScopedToUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewContributionRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.Contribution{
		UserID: alice.ID, OriginalText: "hello", SuggestedTranslation: "chào bạn", SourceLang: "en", TargetLang: "vi",
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, domain.Contribution{
		UserID: bob.ID, OriginalText: "hello", SuggestedTranslation: "chào bạn", SourceLang: "en", TargetLang: "vi",
	})
	require.NoError(t, err)
}

func TestListSuggestionsNewestWins(t *testing.T) {
	db := newTestDB(t)
	repo := NewContributionRepository(db)
	user := createTestUser(t, db, "alice")
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.Contribution{
		UserID: user.ID, OriginalText: "hello", SuggestedTranslation: "chào bạn", SourceLang: "en", TargetLang: "vi",
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.Contribution{
		UserID: user.ID, OriginalText: "hello", SuggestedTranslation: "xin chào bạn", SourceLang: "en", TargetLang: "vi",
	})
	require.NoError(t, err)

	suggestions, err := repo.ListSuggestions(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "xin chào bạn", suggestions["hello"])
}

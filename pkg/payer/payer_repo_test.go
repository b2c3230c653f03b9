package payer

import (
	"context"
	"testing"

	"github.com/Minpi-0/traveler-app/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepo_LoadBeforeStore(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewRepo(db)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotStored)
}

func TestRepo_StoreAndLoad(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, []string{"John", "Mary"}))

	names, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"John", "Mary"}, names)

	// Storing again overwrites the single settings value
	require.NoError(t, repo.Store(ctx, []string{"Mary"}))
	names, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mary"}, names)
}

func TestRepo_LoadCorruptValue(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewRepo(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES ('payers', 'not-json')")
	require.NoError(t, err)

	_, err = repo.Load(ctx)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotStored)
}

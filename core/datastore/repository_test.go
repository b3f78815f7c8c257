package datastore_test

import (
	"context"
	"testing"

	"game-datastore/core/datastore"
	"game-datastore/feature/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	accounts, err := datastore.For[entities.Account](s, "Account")
	require.NoError(t, err)
	assert.Equal(t, "Account", accounts.Table())

	saved, err := accounts.UpsertData(ctx, &entities.Account{Username: "a", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	res, err := accounts.InsertData(ctx,
		&entities.Account{Username: "b", Email: "b@x.com", Password: "p"},
		&entities.Account{Username: "c", Email: "b@x.com", Password: "p"},
	)
	require.NoError(t, err)
	assert.Len(t, res.Identifiers, 2)

	got, err := accounts.FetchData(ctx, "username", "a")
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	last, err := accounts.FetchLastID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c", last.Username)

	shared, err := accounts.FetchAllByField(ctx, "email", "b@x.com")
	require.NoError(t, err)
	assert.Len(t, shared, 2)

	updated, err := accounts.UpdatePartialData(ctx, saved.ID, map[string]any{"username": "a2"})
	require.NoError(t, err)
	assert.Equal(t, "a2", updated.Username)

	byID, err := accounts.FetchByIDs(ctx, []int{saved.ID})
	require.NoError(t, err)
	assert.Equal(t, updated, byID[0])

	names, err := accounts.SelectData(ctx, "username")
	require.NoError(t, err)
	assert.Len(t, names, 3)

	del, err := accounts.DeleteByIDs(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.RowsAffected)

	all, err := accounts.FetchAllData(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = accounts.FetchData(ctx, "username", "a2")
	assert.ErrorIs(t, err, datastore.ErrNotFound)
}

func TestRepository_Absence(t *testing.T) {
	s := newStore(t)
	accounts, err := datastore.For[entities.Account](s, "accounts")
	require.NoError(t, err)

	all, err := accounts.FetchAllData(context.Background())
	assert.Nil(t, all)
	assert.ErrorIs(t, err, datastore.ErrNotFound)

	none, err := accounts.FetchAllByField(context.Background(), "email", "x")
	assert.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestFor_Mismatch(t *testing.T) {
	s := newStore(t)

	_, err := datastore.For[Badge](s, "Account")
	assert.ErrorIs(t, err, datastore.ErrInvalidDocument)

	_, err = datastore.For[entities.Account](s, "Inventory")
	assert.ErrorIs(t, err, datastore.ErrUnknownTable)
}

package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"game-datastore/core/database"
	"game-datastore/core/datastore"
	"game-datastore/core/storage"
	"game-datastore/core/storage/mocks"
	"game-datastore/feature/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Unix(1700000000, 0)

func setupService(t *testing.T) (*Service, *datastore.Store, *mocks.Client) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(entities.All()...))

	store, err := datastore.New(db, zap.NewNop(), entities.All()...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	client := new(mocks.Client)
	svc := NewService(store, client, storage.Config{Bucket: "test-bucket"}, zap.NewNop())
	svc.now = func() time.Time { return fixedNow }
	return svc, store, client
}

func seedAccounts(t *testing.T, store *datastore.Store, names ...string) {
	t.Helper()
	for _, n := range names {
		_, err := store.UpsertData(t.Context(), "accounts", &entities.Account{Username: n, Email: n + "@x", Password: "pw"})
		require.NoError(t, err)
	}
}

func TestExportTable(t *testing.T) {
	svc, store, client := setupService(t)
	seedAccounts(t, store, "a", "b")

	var uploaded []byte
	client.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	client.On("PutObject", mock.Anything, "test-bucket", "exports/accounts/1700000000000000000.json",
		mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			uploaded, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(minio.UploadInfo{}, nil)

	snap, err := svc.ExportTable(t.Context(), "Account")
	require.NoError(t, err)

	assert.Equal(t, "accounts", snap.Table)
	assert.Equal(t, "exports/accounts/1700000000000000000.json", snap.Object)
	assert.Equal(t, 2, snap.Rows)
	assert.EqualValues(t, len(uploaded), snap.Size)

	var docs []entities.Account
	require.NoError(t, json.Unmarshal(uploaded, &docs))
	assert.Len(t, docs, 2)
	client.AssertExpectations(t)
}

func TestExportTable_SameSecondKeysDiffer(t *testing.T) {
	svc, store, client := setupService(t)
	seedAccounts(t, store, "a")

	clock := fixedNow
	svc.now = func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	}

	client.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	client.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	first, err := svc.ExportTable(t.Context(), "accounts")
	require.NoError(t, err)
	second, err := svc.ExportTable(t.Context(), "accounts")
	require.NoError(t, err)

	assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix())
	assert.NotEqual(t, first.Object, second.Object)
	client.AssertNumberOfCalls(t, "PutObject", 2)
}

func TestExportTable_CallerCancelledUploadStillRuns(t *testing.T) {
	svc, store, client := setupService(t)
	seedAccounts(t, store, "a")

	live := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })
	client.On("BucketExists", live, "test-bucket").Return(true, nil)
	client.On("PutObject", live, "test-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	snap, err := svc.ExportTable(ctx, "accounts")
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Rows)
	client.AssertExpectations(t)
}

func TestExportTable_Empty(t *testing.T) {
	svc, _, client := setupService(t)

	var uploaded []byte
	client.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "test-bucket", mock.Anything).Return(nil)
	client.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			uploaded, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(minio.UploadInfo{}, nil)

	snap, err := svc.ExportTable(t.Context(), "accounts")
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Rows)
	assert.Equal(t, "[]", string(uploaded))
	client.AssertExpectations(t)
}

func TestExportTable_Errors(t *testing.T) {
	t.Run("Unknown Table", func(t *testing.T) {
		svc, _, client := setupService(t)
		_, err := svc.ExportTable(t.Context(), "players")
		assert.ErrorIs(t, err, datastore.ErrUnknownTable)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Upload Fails", func(t *testing.T) {
		svc, _, client := setupService(t)
		client.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("disk full"))

		_, err := svc.ExportTable(t.Context(), "accounts")
		assert.ErrorContains(t, err, "disk full")
	})
}

func TestImportTable(t *testing.T) {
	svc, store, client := setupService(t)
	seedAccounts(t, store, "a")

	snapshot := `[{"id":1,"username":"a","email":"restored@x","password":"pw"},
		{"id":7,"username":"g","email":"g@x","password":"pw"}]`
	client.On("GetObject", mock.Anything, "test-bucket", "exports/accounts/1.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(snapshot))), nil)

	n, err := svc.ImportTable(t.Context(), "accounts", "exports/accounts/1.json")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	docs, err := store.FetchByIDs(t.Context(), "accounts", []int{1, 7})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "restored@x", docs[0].(*entities.Account).Email)
	assert.Equal(t, "g", docs[1].(*entities.Account).Username)
}

func TestImportTable_Invalid(t *testing.T) {
	svc, _, client := setupService(t)
	client.On("GetObject", mock.Anything, "test-bucket", "bad.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(`{"not":"an array"}`))), nil)

	_, err := svc.ImportTable(t.Context(), "accounts", "bad.json")
	assert.ErrorIs(t, err, datastore.ErrInvalidDocument)
}

func TestListExports(t *testing.T) {
	svc, _, client := setupService(t)

	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "exports/accounts/1.json", Size: 10}
	ch <- minio.ObjectInfo{Key: "exports/accounts/2.json", Size: 20}
	close(ch)
	client.On("ListObjects", mock.Anything, "test-bucket", minio.ListObjectsOptions{
		Prefix: "exports/accounts/", Recursive: true,
	}).Return((<-chan minio.ObjectInfo)(ch))

	list, err := svc.ListExports(t.Context(), "Account")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "exports/accounts/2.json", list[1].Object)
	assert.EqualValues(t, 20, list[1].Size)
}

func TestListExports_Error(t *testing.T) {
	svc, _, client := setupService(t)

	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: errors.New("access denied")}
	close(ch)
	client.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	_, err := svc.ListExports(t.Context(), "accounts")
	assert.ErrorContains(t, err, "access denied")
}

func TestHandler(t *testing.T) {
	svc, _, client := setupService(t)
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)

	client.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/exports/accounts", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/exports/players", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/exports/accounts/import", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

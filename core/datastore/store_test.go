package datastore_test

import (
	"context"
	"testing"

	"game-datastore/core/database"
	"game-datastore/core/datastore"
	"game-datastore/feature/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Badge has a string primary key, unlike Account.
type Badge struct {
	Code  string `gorm:"column:code;primaryKey;type:varchar(32)"`
	Title string `gorm:"column:title;type:varchar(100);not null"`
	Motto *string
}

func (Badge) TableName() string { return "badges" }

func newStore(t *testing.T) *datastore.Store {
	t.Helper()
	s, _ := newObservedStore(t)
	return s
}

func newObservedStore(t *testing.T) (*datastore.Store, *observer.ObservedLogs) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Account{}, &Badge{}))

	core, logs := observer.New(zapcore.DebugLevel)
	s, err := datastore.New(db, zap.New(core), &entities.Account{}, &Badge{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, logs
}

func TestNew(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	t.Run("No Entities", func(t *testing.T) {
		_, err := datastore.New(db, nil)
		assert.ErrorIs(t, err, datastore.ErrInvalidConfig)
	})

	t.Run("Nil Entity", func(t *testing.T) {
		_, err := datastore.New(db, nil, nil)
		assert.ErrorIs(t, err, datastore.ErrInvalidConfig)
	})

	t.Run("Duplicate Entity", func(t *testing.T) {
		_, err := datastore.New(db, nil, &entities.Account{}, entities.Account{})
		assert.ErrorIs(t, err, datastore.ErrInvalidConfig)
	})

	t.Run("No Primary Key", func(t *testing.T) {
		type Keyless struct{ Name string }
		_, err := datastore.New(db, nil, &Keyless{})
		assert.ErrorIs(t, err, datastore.ErrInvalidConfig)
	})

	t.Run("Nil Connection", func(t *testing.T) {
		_, err := datastore.New(nil, nil, &entities.Account{})
		assert.ErrorIs(t, err, datastore.ErrInvalidConfig)
	})

	t.Run("Valid", func(t *testing.T) {
		s, err := datastore.New(db, nil, &entities.Account{}, &Badge{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Account", "Badge"}, s.Tables())
		assert.Same(t, db, s.DB())
	})
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("Synchronizes And Signals Ready", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		calls := 0

		s, err := datastore.Open(ctx,
			database.Config{Driver: database.DriverSQLite, Name: ":memory:", Synchronize: true},
			zap.New(core),
			entities.All(),
			datastore.WithReadyHook(func(*datastore.Store) { calls++ }),
		)
		require.NoError(t, err)
		defer s.Close()

		assert.Equal(t, 1, calls)
		assert.True(t, s.DB().Migrator().HasTable("accounts"))
		assert.NoError(t, s.Ping(ctx))

		ready := logs.FilterMessage("Database connected successfully").All()
		require.Len(t, ready, 1)
		assert.Equal(t, datastore.ConnectionComplete, ready[0].ContextMap()["event"])
	})

	t.Run("Connection String", func(t *testing.T) {
		s, err := datastore.Open(ctx, database.Config{URL: "sqlite://:memory:", Synchronize: true}, nil, entities.All())
		require.NoError(t, err)
		defer s.Close()
		assert.True(t, s.DB().Migrator().HasTable("accounts"))
	})

	t.Run("Without Synchronize", func(t *testing.T) {
		s, err := datastore.Open(ctx, database.Config{Driver: database.DriverSQLite, Name: ":memory:"}, nil, entities.All())
		require.NoError(t, err)
		defer s.Close()
		assert.False(t, s.DB().Migrator().HasTable("accounts"))
	})

	t.Run("Invalid Driver", func(t *testing.T) {
		s, err := datastore.Open(ctx, database.Config{Driver: "mongo"}, nil, entities.All())
		assert.Nil(t, s)
		assert.ErrorIs(t, err, datastore.ErrInvalidConfig)
		assert.ErrorIs(t, err, database.ErrUnsupportedDriver)
	})

	t.Run("Missing Entities", func(t *testing.T) {
		s, err := datastore.Open(ctx, database.Config{Driver: database.DriverSQLite, Name: ":memory:"}, nil, nil)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, datastore.ErrInvalidConfig)
	})

	t.Run("Unreachable Database", func(t *testing.T) {
		core, logs := observer.New(zapcore.ErrorLevel)
		s, err := datastore.Open(ctx, database.Config{
			Driver:         database.DriverMySQL,
			Host:           "127.0.0.1",
			Port:           9999,
			User:           "root",
			Name:           "game",
			TimeoutSeconds: 2,
		}, zap.New(core), entities.All())
		assert.Nil(t, s)
		assert.ErrorIs(t, err, datastore.ErrConnection)
		assert.Equal(t, 1, logs.FilterMessage("Database connection failed").Len())
	})
}

func TestDescribe(t *testing.T) {
	s := newStore(t)

	schema, err := s.Describe("Account")
	require.NoError(t, err)
	assert.Equal(t, "Account", schema.Name)
	assert.Equal(t, "accounts", schema.Table)

	want := []datastore.Column{
		{Name: "id", Type: "int", Primary: true, Generated: true},
		{Name: "username", Type: "text"},
		{Name: "email", Type: "text"},
		{Name: "password", Type: "varchar(255)"},
	}
	assert.Equal(t, want, schema.Columns)

	byTable, err := s.Describe("badges")
	require.NoError(t, err)
	require.Len(t, byTable.Columns, 3)
	assert.False(t, byTable.Columns[0].Generated)
	assert.True(t, byTable.Columns[2].Nullable)

	_, err = s.Describe("Inventory")
	assert.ErrorIs(t, err, datastore.ErrUnknownTable)
}

func TestNewDocument(t *testing.T) {
	s := newStore(t)

	doc, err := s.NewDocument("accounts")
	require.NoError(t, err)
	assert.IsType(t, &entities.Account{}, doc)

	_, err = s.NewDocument("nope")
	assert.ErrorIs(t, err, datastore.ErrUnknownTable)
}

func TestVerifySchema(t *testing.T) {
	t.Run("Matched", func(t *testing.T) {
		s := newStore(t)
		report := s.VerifySchema(context.Background())
		assert.True(t, report.Matched)
		require.Len(t, report.Tables, 2)
		for _, tr := range report.Tables {
			assert.Equal(t, "ok", tr.Status)
		}
	})

	t.Run("Missing Table And Column", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		require.NoError(t, db.Exec("CREATE TABLE accounts (id INTEGER PRIMARY KEY, username TEXT NOT NULL, email TEXT NOT NULL, legacy TEXT)").Error)

		s, err := datastore.New(db, nil, &entities.Account{}, &Badge{})
		require.NoError(t, err)

		report := s.VerifySchema(context.Background())
		assert.False(t, report.Matched)
		require.Len(t, report.Tables, 2)

		assert.Equal(t, "mismatch", report.Tables[0].Status)
		assert.Equal(t, []string{"password"}, report.Tables[0].MissingColumns)
		assert.Equal(t, []string{"legacy"}, report.Tables[0].ExtraColumns)
		assert.Equal(t, "missing", report.Tables[1].Status)
	})
}

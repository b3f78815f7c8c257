package datastore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"game-datastore/core/database"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// ConnectionComplete is the name of the readiness signal logged once a store is usable.
const ConnectionComplete = "ConnectionComplete"

// Store owns one database connection and the set of registered entities.
// A Store is safe for concurrent use; the registry is never mutated after construction.
type Store struct {
	db       *gorm.DB
	logger   *zap.Logger
	entities map[string]*entity
	ordered  []*entity
}

// Option configures Open.
type Option func(*options)

type options struct {
	readyHooks []func(*Store)
}

// WithReadyHook registers fn to run once, after the connection is established and
// the schemas are synchronized, before Open returns.
func WithReadyHook(fn func(*Store)) Option {
	return func(o *options) {
		o.readyHooks = append(o.readyHooks, fn)
	}
}

// New wraps an existing connection. It does not synchronize schemas.
func New(db *gorm.DB, logger *zap.Logger, models ...any) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("%w: nil connection", ErrInvalidConfig)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	namer := db.NamingStrategy
	if namer == nil {
		namer = schema.NamingStrategy{}
	}
	registry, ordered, err := buildRegistry(models, namer)
	if err != nil {
		return nil, err
	}

	return &Store{db: db, logger: logger, entities: registry, ordered: ordered}, nil
}

// Open validates the configuration, connects, synchronizes the registered entities
// and returns a ready store. Configuration problems fail before any connection attempt.
func Open(ctx context.Context, cfg database.Config, logger *zap.Logger, models []any, opts ...Option) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	resolved, err := database.Resolve(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, _, err := buildRegistry(models, schema.NamingStrategy{}); err != nil {
		return nil, err
	}

	logger.Info("Starting database connection", zap.String("driver", resolved.Driver), zap.String("database", resolved.Name))

	db, err := database.Connect(resolved)
	if err != nil {
		logger.Error("Database connection failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	s, err := New(db, logger, models...)
	if err != nil {
		_ = closeDB(db)
		return nil, err
	}

	if resolved.Synchronize {
		if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
			logger.Error("Schema synchronization failed", zap.Error(err))
			_ = s.Close()
			return nil, fmt.Errorf("%w: synchronize: %w", ErrConnection, err)
		}
	}

	logger.Info("Database connected successfully",
		zap.String("event", ConnectionComplete),
		zap.Strings("tables", s.Tables()),
	)
	for _, hook := range o.readyHooks {
		hook(s)
	}

	return s, nil
}

func buildRegistry(models []any, namer schema.Namer) (map[string]*entity, []*entity, error) {
	if len(models) == 0 {
		return nil, nil, fmt.Errorf("%w: no entities registered", ErrInvalidConfig)
	}

	cache := &sync.Map{}
	registry := make(map[string]*entity, len(models)*2)
	ordered := make([]*entity, 0, len(models))

	for _, m := range models {
		e, err := parseEntity(m, cache, namer)
		if err != nil {
			return nil, nil, err
		}
		for _, key := range []string{e.name(), e.table()} {
			if prev, ok := registry[key]; ok && prev != e {
				return nil, nil, fmt.Errorf("%w: duplicate entity %q", ErrInvalidConfig, key)
			}
			registry[key] = e
		}
		ordered = append(ordered, e)
	}
	return registry, ordered, nil
}

// lookup resolves a table handle by entity name or table name.
func (s *Store) lookup(table string) (*entity, error) {
	if e, ok := s.entities[table]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
}

// DB returns the underlying connection.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Tables returns the registered entity names in a stable order.
func (s *Store) Tables() []string {
	names := make([]string, 0, len(s.ordered))
	for _, e := range s.ordered {
		names = append(names, e.name())
	}
	sort.Strings(names)
	return names
}

// Describe returns the declarative schema of a registered entity.
func (s *Store) Describe(table string) (EntitySchema, error) {
	e, err := s.lookup(table)
	if err != nil {
		return EntitySchema{}, err
	}
	return e.describe(), nil
}

// NewDocument allocates an empty document for table, suitable for decoding into.
func (s *Store) NewDocument(table string) (any, error) {
	e, err := s.lookup(table)
	if err != nil {
		return nil, err
	}
	return e.newDocument(), nil
}

// Ping verifies the connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return closeDB(s.db)
}

func closeDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

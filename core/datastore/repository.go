package datastore

import (
	"context"
	"fmt"
)

// Repository is a typed view of one table of a Store.
// T is the table's model; documents are returned as *T.
type Repository[T any] struct {
	store *Store
	table string
}

// For returns a typed repository for table. It fails if the table is unknown or
// its model is not T.
func For[T any](store *Store, table string) (*Repository[T], error) {
	doc, err := store.NewDocument(table)
	if err != nil {
		return nil, err
	}
	if _, ok := doc.(*T); !ok {
		var zero T
		return nil, fmt.Errorf("%w: table %q holds %T, not *%T", ErrInvalidDocument, table, doc, zero)
	}
	return &Repository[T]{store: store, table: table}, nil
}

// Table returns the table name the repository is bound to.
func (r *Repository[T]) Table() string {
	return r.table
}

func (r *Repository[T]) FetchData(ctx context.Context, field string, value any) (*T, error) {
	doc, err := r.store.FetchData(ctx, r.table, field, value)
	return one[T](doc, err)
}

func (r *Repository[T]) FetchLastID(ctx context.Context) (*T, error) {
	doc, err := r.store.FetchLastID(ctx, r.table)
	return one[T](doc, err)
}

func (r *Repository[T]) FetchAllByField(ctx context.Context, field string, value any) ([]*T, error) {
	docs, err := r.store.FetchAllByField(ctx, r.table, field, value)
	return many[T](docs, err)
}

func (r *Repository[T]) UpsertData(ctx context.Context, doc *T) (*T, error) {
	saved, err := r.store.UpsertData(ctx, r.table, doc)
	return one[T](saved, err)
}

func (r *Repository[T]) InsertData(ctx context.Context, docs ...*T) (*InsertResult, error) {
	return r.store.InsertData(ctx, r.table, docs)
}

func (r *Repository[T]) UpdatePartialData(ctx context.Context, id any, fields map[string]any) (*T, error) {
	doc, err := r.store.UpdatePartialData(ctx, r.table, id, fields)
	return one[T](doc, err)
}

func (r *Repository[T]) FetchByIDs(ctx context.Context, ids any) ([]*T, error) {
	docs, err := r.store.FetchByIDs(ctx, r.table, ids)
	return many[T](docs, err)
}

func (r *Repository[T]) DeleteByIDs(ctx context.Context, ids any) (*DeleteResult, error) {
	return r.store.DeleteByIDs(ctx, r.table, ids)
}

func (r *Repository[T]) FetchAllData(ctx context.Context) ([]*T, error) {
	docs, err := r.store.FetchAllData(ctx, r.table)
	return many[T](docs, err)
}

func (r *Repository[T]) SelectData(ctx context.Context, fields ...string) ([]*T, error) {
	docs, err := r.store.SelectData(ctx, r.table, fields)
	return many[T](docs, err)
}

func one[T any](doc any, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	return doc.(*T), nil
}

// many keeps the store's convention: nil for absence, an empty slice for empty results.
func many[T any](docs []any, err error) ([]*T, error) {
	if docs == nil {
		return nil, err
	}
	out := make([]*T, len(docs))
	for i, d := range docs {
		out[i] = d.(*T)
	}
	return out, err
}

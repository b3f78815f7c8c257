package datastore

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"game-datastore/core/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InsertResult describes the rows written by InsertData.
type InsertResult struct {
	// Identifiers holds the primary key of each inserted document, in input order.
	Identifiers []any `json:"identifiers"`
	// RowsAffected is the number of rows the database reports as inserted.
	RowsAffected int64 `json:"rows_affected"`
}

// DeleteResult describes the rows removed by DeleteByIDs.
type DeleteResult struct {
	// RowsAffected is the number of rows removed.
	RowsAffected int64 `json:"rows_affected"`
}

// handle resolves the per-call table handle.
func (s *Store) handle(ctx context.Context, op, table string) (*gorm.DB, *entity, error) {
	e, err := s.lookup(table)
	if err != nil {
		return nil, nil, s.fail(op, table, err)
	}
	return s.db.WithContext(ctx), e, nil
}

// fail logs err and wraps it. Not-found outcomes are logged at debug level only.
func (s *Store) fail(op, table string, err error) error {
	err = classify(err)
	fields := []zap.Field{zap.String("op", op), zap.String("table", table)}
	if errors.Is(err, ErrNotFound) {
		s.logger.Debug("No matching record", fields...)
	} else {
		s.logger.Error("Datastore operation failed", append(fields, zap.Error(err))...)
	}
	return &OpError{Op: op, Table: table, Err: err}
}

// selectColumns resolves projected field names against the schema.
// Select(strings) hands names GORM does not know to the database as raw SQL,
// so every name must be a declared column.
func (e *entity) selectColumns(fields any) ([]clause.Column, error) {
	raw := utils.ToSlice(fields)
	columns := make([]clause.Column, 0, len(raw))
	for _, f := range raw {
		name := utils.ToString(f)
		field := e.schema.LookUpField(name)
		if field == nil || field.DBName == "" {
			return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidDocument, name)
		}
		columns = append(columns, clause.Column{Table: clause.CurrentTable, Name: field.DBName})
	}
	return columns, nil
}

func (e *entity) pkColumn() clause.Column {
	return clause.Column{Table: clause.CurrentTable, Name: e.pk.DBName}
}

// FetchData returns the first document whose field equals value.
func (s *Store) FetchData(ctx context.Context, table, field string, value any) (any, error) {
	const op = "fetchData"
	db, e, err := s.handle(ctx, op, table)
	if err != nil {
		return nil, err
	}

	doc := e.newDocument()
	if err := db.Where(map[string]any{field: value}).Take(doc).Error; err != nil {
		return nil, s.fail(op, table, err)
	}
	return doc, nil
}

// FetchLastID returns the document with the highest primary key.
func (s *Store) FetchLastID(ctx context.Context, table string) (any, error) {
	const op = "fetchLastId"
	db, e, err := s.handle(ctx, op, table)
	if err != nil {
		return nil, err
	}

	doc := e.newDocument()
	if err := db.Order(clause.OrderByColumn{Column: e.pkColumn(), Desc: true}).Take(doc).Error; err != nil {
		return nil, s.fail(op, table, err)
	}
	return doc, nil
}

// FetchAllByField returns every document whose field equals value.
// No match is an empty slice and a nil error; failures also return an empty slice.
func (s *Store) FetchAllByField(ctx context.Context, table, field string, value any) ([]any, error) {
	const op = "fetchAllByField"
	db, e, err := s.handle(ctx, op, table)
	if err != nil {
		return []any{}, err
	}

	list := e.newList()
	if err := db.Where(map[string]any{field: value}).Find(list).Error; err != nil {
		return []any{}, s.fail(op, table, err)
	}
	return listValues(list), nil
}

// UpsertData inserts doc when its primary key is zero or unknown, otherwise overwrites
// the stored row. doc must be a pointer to the table's model; generated keys are set on it.
func (s *Store) UpsertData(ctx context.Context, table string, doc any) (any, error) {
	const op = "upsertData"
	db, e, err := s.handle(ctx, op, table)
	if err != nil {
		return nil, err
	}
	if _, err := e.checkDocument(doc); err != nil {
		return nil, s.fail(op, table, err)
	}

	if err := db.Save(doc).Error; err != nil {
		return nil, s.fail(op, table, err)
	}
	return doc, nil
}

// InsertData inserts one document or a slice of documents without upsert semantics.
func (s *Store) InsertData(ctx context.Context, table string, docs any) (*InsertResult, error) {
	const op = "insertData"
	db, e, err := s.handle(ctx, op, table)
	if err != nil {
		return nil, err
	}
	values, err := e.checkDocuments(docs)
	if err != nil {
		return nil, s.fail(op, table, err)
	}

	batch := reflect.New(reflect.SliceOf(reflect.PointerTo(e.schema.ModelType)))
	for _, v := range values {
		batch.Elem().Set(reflect.Append(batch.Elem(), v))
	}

	res := db.Create(batch.Interface())
	if res.Error != nil {
		return nil, s.fail(op, table, res.Error)
	}

	out := &InsertResult{Identifiers: make([]any, len(values)), RowsAffected: res.RowsAffected}
	for i, v := range values {
		out.Identifiers[i] = e.primaryKey(ctx, v)
	}
	return out, nil
}

// UpdatePartialData updates only the given fields of the row with the given id and
// returns the refreshed document. A missing id reports ErrNotFound and writes nothing.
// Primary key columns cannot be changed this way.
func (s *Store) UpdatePartialData(ctx context.Context, table string, id any, fields map[string]any) (any, error) {
	const op = "updatePartialData"
	db, e, err := s.handle(ctx, op, table)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, s.fail(op, table, fmt.Errorf("%w: no fields to update", ErrInvalidDocument))
	}
	for name := range fields {
		if f := e.schema.LookUpField(name); f != nil && f.PrimaryKey {
			return nil, s.fail(op, table, fmt.Errorf("%w: primary key %q cannot be updated", ErrInvalidDocument, name))
		}
	}

	key := clause.Eq{Column: e.pkColumn(), Value: e.coerceID(id)}

	current := e.newDocument()
	if err := db.Where(key).Take(current).Error; err != nil {
		return nil, s.fail(op, table, err)
	}

	if err := db.Model(current).Updates(fields).Error; err != nil {
		return nil, s.fail(op, table, err)
	}

	updated := e.newDocument()
	if err := db.Where(key).Take(updated).Error; err != nil {
		return nil, s.fail(op, table, err)
	}
	return updated, nil
}

// FetchByIDs returns the documents matching one id or a slice of ids.
// It reports ErrNotFound when none match.
func (s *Store) FetchByIDs(ctx context.Context, table string, ids any) ([]any, error) {
	const op = "fetchByIds"
	db, e, err := s.handle(ctx, op, table)
	if err != nil {
		return nil, err
	}

	keys := e.coerceIDs(ids)
	if len(keys) == 0 {
		return nil, s.fail(op, table, ErrNotFound)
	}

	list := e.newList()
	if err := db.Where(clause.IN{Column: e.pkColumn(), Values: keys}).Find(list).Error; err != nil {
		return nil, s.fail(op, table, err)
	}
	docs := listValues(list)
	if len(docs) == 0 {
		return nil, s.fail(op, table, ErrNotFound)
	}
	return docs, nil
}

// DeleteByIDs removes the rows matching one id or a slice of ids.
func (s *Store) DeleteByIDs(ctx context.Context, table string, ids any) (*DeleteResult, error) {
	const op = "deleteByIds"
	db, e, err := s.handle(ctx, op, table)
	if err != nil {
		return nil, err
	}

	keys := e.coerceIDs(ids)
	if len(keys) == 0 {
		return &DeleteResult{}, nil
	}

	res := db.Where(clause.IN{Column: e.pkColumn(), Values: keys}).Delete(e.newDocument())
	if res.Error != nil {
		return nil, s.fail(op, table, res.Error)
	}
	return &DeleteResult{RowsAffected: res.RowsAffected}, nil
}

// FetchAllData returns every document in the table. An empty table reports ErrNotFound.
func (s *Store) FetchAllData(ctx context.Context, table string) ([]any, error) {
	const op = "fetchAllData"
	db, e, err := s.handle(ctx, op, table)
	if err != nil {
		return nil, err
	}

	list := e.newList()
	if err := db.Find(list).Error; err != nil {
		return nil, s.fail(op, table, err)
	}
	docs := listValues(list)
	if len(docs) == 0 {
		return nil, s.fail(op, table, ErrNotFound)
	}
	return docs, nil
}

// SelectData returns every document projected to one field name or a slice of them.
// Names must be declared columns (field or column name). Columns not selected keep their
// zero value. Failures return an empty slice.
func (s *Store) SelectData(ctx context.Context, table string, fields any) ([]any, error) {
	const op = "selectData"
	db, e, err := s.handle(ctx, op, table)
	if err != nil {
		return []any{}, err
	}

	columns, err := e.selectColumns(fields)
	if err != nil {
		return []any{}, s.fail(op, table, err)
	}

	list := e.newList()
	if len(columns) > 0 {
		db = db.Clauses(clause.Select{Columns: columns})
	}
	if err := db.Find(list).Error; err != nil {
		return []any{}, s.fail(op, table, err)
	}
	return listValues(list), nil
}

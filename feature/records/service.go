package records

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"game-datastore/core/datastore"
	"game-datastore/core/server"

	"go.uber.org/zap"
)

// Service exposes the datastore operations to the HTTP layer.
type Service struct {
	store  *datastore.Store
	server server.Config
	logger *zap.Logger
}

// NewService creates a new records service.
func NewService(store *datastore.Store, cfg server.Config, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		server: cfg,
		logger: logger,
	}
}

// Schema returns the declarative schema of an exposed table.
func (s *Service) Schema(table string) (datastore.EntitySchema, error) {
	sc, err := s.store.Describe(table)
	if err != nil {
		return datastore.EntitySchema{}, err
	}
	if !s.server.IsExposed(sc.Name) && !s.server.IsExposed(sc.Table) {
		return datastore.EntitySchema{}, fmt.Errorf("%w: %q", datastore.ErrUnknownTable, table)
	}
	return sc, nil
}

// Tables lists the entity names reachable over HTTP.
func (s *Service) Tables() []string {
	out := make([]string, 0)
	for _, name := range s.store.Tables() {
		if _, err := s.Schema(name); err == nil {
			out = append(out, name)
		}
	}
	return out
}

// Find returns the first document whose field equals value.
func (s *Service) Find(ctx context.Context, table, field, value string) (any, error) {
	if _, err := s.Schema(table); err != nil {
		return nil, err
	}
	return s.store.FetchData(ctx, table, field, value)
}

// FindAll returns every document whose field equals value.
func (s *Service) FindAll(ctx context.Context, table, field, value string) ([]any, error) {
	if _, err := s.Schema(table); err != nil {
		return []any{}, err
	}
	return s.store.FetchAllByField(ctx, table, field, value)
}

// Last returns the document with the highest primary key.
func (s *Service) Last(ctx context.Context, table string) (any, error) {
	if _, err := s.Schema(table); err != nil {
		return nil, err
	}
	return s.store.FetchLastID(ctx, table)
}

// All returns every document in the table.
func (s *Service) All(ctx context.Context, table string) ([]any, error) {
	if _, err := s.Schema(table); err != nil {
		return nil, err
	}
	return s.store.FetchAllData(ctx, table)
}

// ByIDs returns the documents matching ids.
func (s *Service) ByIDs(ctx context.Context, table string, ids []string) ([]any, error) {
	if _, err := s.Schema(table); err != nil {
		return nil, err
	}
	return s.store.FetchByIDs(ctx, table, ids)
}

// Select returns every document projected to fields.
func (s *Service) Select(ctx context.Context, table string, fields []string) ([]any, error) {
	if _, err := s.Schema(table); err != nil {
		return []any{}, err
	}
	return s.store.SelectData(ctx, table, fields)
}

// Upsert decodes body as one document and saves it.
func (s *Service) Upsert(ctx context.Context, table string, body []byte) (any, error) {
	if _, err := s.Schema(table); err != nil {
		return nil, err
	}
	doc, err := s.decode(table, body)
	if err != nil {
		return nil, err
	}
	return s.store.UpsertData(ctx, table, doc)
}

// Insert decodes body as one document or a JSON array of documents and inserts them.
func (s *Service) Insert(ctx context.Context, table string, body []byte) (*datastore.InsertResult, error) {
	if _, err := s.Schema(table); err != nil {
		return nil, err
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '[' {
		doc, err := s.decode(table, body)
		if err != nil {
			return nil, err
		}
		return s.store.InsertData(ctx, table, doc)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", datastore.ErrInvalidDocument, err)
	}
	docs := make([]any, 0, len(raw))
	for _, r := range raw {
		doc, err := s.decode(table, r)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return s.store.InsertData(ctx, table, docs)
}

// Update applies the column/value pairs in body to the row with the given id.
func (s *Service) Update(ctx context.Context, table, id string, body []byte) (any, error) {
	if _, err := s.Schema(table); err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", datastore.ErrInvalidDocument, err)
	}
	return s.store.UpdatePartialData(ctx, table, id, fields)
}

// Delete removes the rows matching ids.
func (s *Service) Delete(ctx context.Context, table string, ids []string) (*datastore.DeleteResult, error) {
	if _, err := s.Schema(table); err != nil {
		return nil, err
	}
	return s.store.DeleteByIDs(ctx, table, ids)
}

func (s *Service) decode(table string, body []byte) (any, error) {
	doc, err := s.store.NewDocument(table)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", datastore.ErrInvalidDocument, err)
	}
	return doc, nil
}

package datastore

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"game-datastore/core/utils"

	"gorm.io/gorm/schema"
)

// Column describes one column of an entity schema.
type Column struct {
	// Name is the column name in the database.
	Name string `json:"name"`
	// Type is the declared storage type (e.g. "text", "varchar(255)") or GORM's generic type.
	Type string `json:"type"`
	// Nullable is true when the column accepts NULL.
	Nullable bool `json:"nullable"`
	// Primary is true for primary key columns.
	Primary bool `json:"primary"`
	// Generated is true when the database assigns the value (auto increment).
	Generated bool `json:"generated"`
}

// EntitySchema is the declarative shape of one registered table.
type EntitySchema struct {
	Name    string   `json:"name"`
	Table   string   `json:"table"`
	Columns []Column `json:"columns"`
}

// entity is a registered model: its parsed GORM schema plus lookup helpers.
type entity struct {
	schema *schema.Schema
	pk     *schema.Field
}

func parseEntity(model any, cache *sync.Map, namer schema.Namer) (*entity, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: nil entity", ErrInvalidConfig)
	}
	s, err := schema.Parse(model, cache, namer)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if s.PrioritizedPrimaryField == nil {
		return nil, fmt.Errorf("%w: entity %s has no primary key", ErrInvalidConfig, s.Name)
	}
	return &entity{schema: s, pk: s.PrioritizedPrimaryField}, nil
}

func (e *entity) name() string  { return e.schema.Name }
func (e *entity) table() string { return e.schema.Table }

// describe builds the declarative schema from the parsed model.
func (e *entity) describe() EntitySchema {
	out := EntitySchema{Name: e.schema.Name, Table: e.schema.Table}
	for _, f := range e.schema.Fields {
		if f.DBName == "" {
			continue
		}
		typ := f.TagSettings["TYPE"]
		if typ == "" {
			typ = string(f.DataType)
		}
		out.Columns = append(out.Columns, Column{
			Name:      f.DBName,
			Type:      strings.ToLower(typ),
			Nullable:  !f.NotNull && !f.PrimaryKey,
			Primary:   f.PrimaryKey,
			Generated: f.AutoIncrement,
		})
	}
	return out
}

// newDocument allocates a zero *Model.
func (e *entity) newDocument() any {
	return reflect.New(e.schema.ModelType).Interface()
}

// newList allocates a *[]*Model for Find.
func (e *entity) newList() any {
	return reflect.New(reflect.SliceOf(reflect.PointerTo(e.schema.ModelType))).Interface()
}

// listValues flattens a *[]*Model filled by Find into []any.
func listValues(list any) []any {
	rv := reflect.ValueOf(list).Elem()
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// coerceID converts an identifier to the primary key's Go kind so
// "7" from an HTTP path and 7 from code match the same row.
func (e *entity) coerceID(id any) any {
	kind := e.pk.FieldType.Kind()
	if kind == reflect.Ptr {
		kind = e.pk.FieldType.Elem().Kind()
	}
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n, ok := utils.ToInt64(id); ok {
			return n
		}
	case reflect.String:
		return utils.ToString(id)
	}
	return id
}

func (e *entity) coerceIDs(ids any) []any {
	list := utils.ToSlice(ids)
	out := make([]any, len(list))
	for i, id := range list {
		out[i] = e.coerceID(id)
	}
	return out
}

// primaryKey returns the primary key value of a single *Model.
func (e *entity) primaryKey(ctx context.Context, doc reflect.Value) any {
	v, _ := e.pk.ValueOf(ctx, reflect.Indirect(doc))
	return v
}

// checkDocument verifies doc is a non-nil *Model.
func (e *entity) checkDocument(doc any) (reflect.Value, error) {
	rv := reflect.ValueOf(doc)
	if !rv.IsValid() || rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Type() != e.schema.ModelType {
		return reflect.Value{}, fmt.Errorf("%w: expected *%s, got %T", ErrInvalidDocument, e.schema.ModelType.Name(), doc)
	}
	return rv, nil
}

// checkDocuments accepts *Model, []*Model, []any of *Model, *[]Model or *[]*Model and returns
// each element as an addressable *Model value.
func (e *entity) checkDocuments(docs any) ([]reflect.Value, error) {
	if rv, err := e.checkDocument(docs); err == nil {
		return []reflect.Value{rv}, nil
	}

	rv := reflect.ValueOf(docs)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("%w: expected *%s or a slice of them, got %T", ErrInvalidDocument, e.schema.ModelType.Name(), docs)
	}

	out := make([]reflect.Value, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		el := rv.Index(i)
		if el.Kind() == reflect.Interface {
			el = el.Elem()
		}
		switch {
		case el.Kind() == reflect.Ptr && !el.IsNil() && el.Elem().Type() == e.schema.ModelType:
			out = append(out, el)
		case el.IsValid() && el.Type() == e.schema.ModelType && el.CanAddr():
			out = append(out, el.Addr())
		default:
			return nil, fmt.Errorf("%w: element %d is %T", ErrInvalidDocument, i, rv.Index(i).Interface())
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no documents", ErrInvalidDocument)
	}
	return out, nil
}

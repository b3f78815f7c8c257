package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"time"

	"game-datastore/core/datastore"
	"game-datastore/core/storage"

	"github.com/dustin/go-humanize"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Prefix is the object key prefix every snapshot is written under.
const Prefix = "exports"

// Snapshot describes one exported table in object storage.
type Snapshot struct {
	Table     string    `json:"table"`
	Object    string    `json:"object"`
	Rows      int       `json:"rows,omitempty"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// Service moves table contents between the datastore and object storage.
type Service struct {
	store  *datastore.Store
	client storage.Client
	bucket string
	region string
	logger *zap.Logger
	now    func() time.Time
	// inflight coalesces concurrent exports of the same table.
	inflight singleflight.Group
}

// NewService creates a new export service.
func NewService(store *datastore.Store, client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
		logger: logger,
		now:    time.Now,
	}
}

// ObjectPrefix returns the key prefix holding the snapshots of table.
func ObjectPrefix(table string) string {
	return Prefix + "/" + table + "/"
}

// ExportTable writes every document of table as a JSON array to a new snapshot object.
// An empty table produces an empty snapshot. Concurrent calls for the same table share
// one upload, which runs detached from any single caller's cancellation.
func (s *Service) ExportTable(ctx context.Context, table string) (*Snapshot, error) {
	sc, err := s.store.Describe(table)
	if err != nil {
		return nil, err
	}

	v, err, _ := s.inflight.Do(sc.Table, func() (any, error) {
		return s.export(context.WithoutCancel(ctx), sc)
	})
	if err != nil {
		return nil, err
	}
	snap := *v.(*Snapshot)
	return &snap, nil
}

func (s *Service) export(ctx context.Context, sc datastore.EntitySchema) (*Snapshot, error) {
	docs, err := s.store.FetchAllData(ctx, sc.Name)
	if err != nil && !datastore.IsNotFound(err) {
		return nil, err
	}
	if docs == nil {
		docs = []any{}
	}

	data, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", sc.Table, err)
	}

	if err := storage.EnsureBucket(ctx, s.client, s.bucket, s.region); err != nil {
		return nil, err
	}

	created := s.now().UTC()
	object := path.Join(Prefix, sc.Table, fmt.Sprintf("%d.json", created.UnixNano()))
	_, err = s.client.PutObject(ctx, s.bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", object, err)
	}

	s.logger.Info("Table exported",
		zap.String("table", sc.Table),
		zap.String("object", object),
		zap.Int("rows", len(docs)),
		zap.String("size", humanize.Bytes(uint64(len(data)))),
	)

	return &Snapshot{
		Table:     sc.Table,
		Object:    object,
		Rows:      len(docs),
		Size:      int64(len(data)),
		CreatedAt: created,
	}, nil
}

// ImportTable reads a snapshot and upserts each document into table.
// It returns the number of documents written.
func (s *Service) ImportTable(ctx context.Context, table, object string) (int, error) {
	sc, err := s.store.Describe(table)
	if err != nil {
		return 0, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", object, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", object, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, fmt.Errorf("%w: %s is not a snapshot: %w", datastore.ErrInvalidDocument, object, err)
	}

	for i, r := range raw {
		doc, err := s.store.NewDocument(sc.Name)
		if err != nil {
			return i, err
		}
		if err := json.Unmarshal(r, doc); err != nil {
			return i, fmt.Errorf("%w: document %d: %w", datastore.ErrInvalidDocument, i, err)
		}
		if _, err := s.store.UpsertData(ctx, sc.Name, doc); err != nil {
			return i, err
		}
	}

	s.logger.Info("Table imported",
		zap.String("table", sc.Table),
		zap.String("object", object),
		zap.Int("rows", len(raw)),
		zap.String("size", humanize.Bytes(uint64(len(data)))),
	)
	return len(raw), nil
}

// ListExports returns the snapshots of table, oldest first as listed by the server.
func (s *Service) ListExports(ctx context.Context, table string) ([]Snapshot, error) {
	sc, err := s.store.Describe(table)
	if err != nil {
		return nil, err
	}

	out := make([]Snapshot, 0)
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    ObjectPrefix(sc.Table),
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots of %s: %w", sc.Table, obj.Err)
		}
		out = append(out, Snapshot{
			Table:     sc.Table,
			Object:    obj.Key,
			Size:      obj.Size,
			CreatedAt: obj.LastModified,
		})
	}
	return out, nil
}

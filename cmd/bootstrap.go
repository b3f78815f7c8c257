package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"game-datastore/core/config"
	"game-datastore/core/datastore"
	"game-datastore/core/logger"
	"game-datastore/feature/entities"

	"go.uber.org/zap"
)

// runtime bundles what every command needs.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *datastore.Store
}

// bootstrap loads configuration and the logger, then opens the store.
// mutate may adjust the loaded configuration before connecting.
func bootstrap(ctx context.Context, mutate func(*config.Config)) (*runtime, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if mutate != nil {
		mutate(cfg)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := datastore.Open(ctx, cfg.Database, l, entities.All())
	if err != nil {
		return nil, err
	}
	return &runtime{cfg: cfg, logger: l, store: store}, nil
}

func (r *runtime) close() {
	_ = r.store.Close()
	_ = r.logger.Sync()
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

package export

import (
	"game-datastore/core/datastore"
	"game-datastore/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates a new export feature. It is disabled when client is nil.
func NewFeature(store *datastore.Store, client storage.Client, cfg storage.Config, logger *zap.Logger) *Feature {
	svc := NewService(store, client, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc), enabled: client != nil}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "export"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

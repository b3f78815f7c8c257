package export

import (
	"errors"

	"game-datastore/core/datastore"
	"game-datastore/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for table snapshots.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the export routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/exports")
	group.Get("/:table", h.HandleList)
	group.Post("/:table", h.HandleExport)
	group.Post("/:table/import", h.HandleImport)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, datastore.ErrUnknownTable) || errors.Is(err, datastore.ErrInvalidDocument) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error("Export request failed",
		zap.String("table", c.Params("table")),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// HandleList lists the snapshots of a table.
// @Summary List Snapshots
// @Description List the snapshots of a table stored in the export bucket.
// @Tags exports
// @Produce json
// @Param table path string true "Entity or table name"
// @Success 200 {array} export.Snapshot "Snapshots"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /exports/{table} [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	list, err := h.service.ListExports(c.Context(), c.Params("table"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(list)
}

// HandleExport writes a new snapshot of a table.
// @Summary Export Table
// @Description Write every document of the table to a new JSON snapshot.
// @Tags exports
// @Produce json
// @Param table path string true "Entity or table name"
// @Success 201 {object} export.Snapshot "Snapshot"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /exports/{table} [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	snap, err := h.service.ExportTable(c.Context(), c.Params("table"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(snap)
}

// HandleImport upserts the documents of a snapshot.
// @Summary Import Snapshot
// @Description Upsert every document of a snapshot object into the table.
// @Tags exports
// @Produce json
// @Param table path string true "Entity or table name"
// @Param object query string true "Snapshot object key"
// @Success 200 {object} map[string]interface{} "Rows written"
// @Failure 400 {object} map[string]string "Invalid snapshot"
// @Router /exports/{table}/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	object := c.Query("object")
	if object == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "object is required"})
	}
	n, err := h.service.ImportTable(c.Context(), c.Params("table"), object)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"object": object, "rows": n})
}

package records

import (
	"errors"

	"game-datastore/core/datastore"
	"game-datastore/core/logger"
	"game-datastore/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for records.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the records routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/records")
	group.Get("/", h.HandleListTables)
	group.Get("/:table", h.HandleFetchAll)
	group.Get("/:table/schema", h.HandleSchema)
	group.Get("/:table/last", h.HandleFetchLast)
	group.Get("/:table/find", h.HandleFind)
	group.Get("/:table/select", h.HandleSelect)
	group.Get("/:table/ids", h.HandleFetchByIDs)
	group.Post("/:table", h.HandleUpsert)
	group.Post("/:table/insert", h.HandleInsert)
	group.Patch("/:table/:id", h.HandleUpdate)
	group.Delete("/:table", h.HandleDelete)
}

// respond maps a datastore outcome to an HTTP status.
func (h *Handler) respond(c *fiber.Ctx, status int, body any, err error) error {
	if err == nil {
		return c.Status(status).JSON(body)
	}

	switch {
	case datastore.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, datastore.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, datastore.ErrUnknownTable), errors.Is(err, datastore.ErrInvalidDocument):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	logger.WithRayID(h.service.logger, c).Error("Records request failed",
		zap.String("table", c.Params("table")),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// HandleListTables lists the exposed tables.
// @Summary List Tables
// @Description List the entity names served by the records API.
// @Tags records
// @Produce json
// @Success 200 {array} string "Entity names"
// @Router /records [get]
func (h *Handler) HandleListTables(c *fiber.Ctx) error {
	return c.JSON(h.service.Tables())
}

// HandleSchema returns the declared schema of a table.
// @Summary Get Table Schema
// @Description Get the declared columns of a registered entity.
// @Tags records
// @Produce json
// @Param table path string true "Entity or table name (e.g. 'accounts')"
// @Success 200 {object} datastore.EntitySchema "Schema"
// @Failure 400 {object} map[string]string "Unknown table"
// @Router /records/{table}/schema [get]
func (h *Handler) HandleSchema(c *fiber.Ctx) error {
	sc, err := h.service.Schema(c.Params("table"))
	return h.respond(c, fiber.StatusOK, sc, err)
}

// HandleFetchAll returns every document in a table.
// @Summary Fetch All
// @Description Return every document in the table.
// @Tags records
// @Produce json
// @Param table path string true "Entity or table name"
// @Success 200 {array} map[string]interface{} "Documents"
// @Failure 404 {object} map[string]string "Table is empty"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /records/{table} [get]
func (h *Handler) HandleFetchAll(c *fiber.Ctx) error {
	docs, err := h.service.All(c.Context(), c.Params("table"))
	return h.respond(c, fiber.StatusOK, docs, err)
}

// HandleFetchLast returns the document with the highest primary key.
// @Summary Fetch Last
// @Description Return the document with the highest primary key.
// @Tags records
// @Produce json
// @Param table path string true "Entity or table name"
// @Success 200 {object} map[string]interface{} "Document"
// @Failure 404 {object} map[string]string "Table is empty"
// @Router /records/{table}/last [get]
func (h *Handler) HandleFetchLast(c *fiber.Ctx) error {
	doc, err := h.service.Last(c.Context(), c.Params("table"))
	return h.respond(c, fiber.StatusOK, doc, err)
}

// HandleFind looks documents up by one field.
// @Summary Find By Field
// @Description Return the first document whose field equals value, or every match with all=true.
// @Tags records
// @Produce json
// @Param table path string true "Entity or table name"
// @Param field query string true "Column name"
// @Param value query string true "Value to match"
// @Param all query boolean false "Return every match"
// @Success 200 {object} map[string]interface{} "Document or documents"
// @Failure 404 {object} map[string]string "No match"
// @Router /records/{table}/find [get]
func (h *Handler) HandleFind(c *fiber.Ctx) error {
	table := c.Params("table")
	field := c.Query("field")
	if field == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "field is required"})
	}
	value := c.Query("value")

	if c.QueryBool("all") {
		docs, err := h.service.FindAll(c.Context(), table, field, value)
		return h.respond(c, fiber.StatusOK, docs, err)
	}
	doc, err := h.service.Find(c.Context(), table, field, value)
	return h.respond(c, fiber.StatusOK, doc, err)
}

// HandleSelect returns every document projected to the given fields.
// @Summary Select Fields
// @Description Return every document with only the listed columns populated.
// @Tags records
// @Produce json
// @Param table path string true "Entity or table name"
// @Param fields query string false "Comma separated column names"
// @Success 200 {array} map[string]interface{} "Documents"
// @Router /records/{table}/select [get]
func (h *Handler) HandleSelect(c *fiber.Ctx) error {
	docs, err := h.service.Select(c.Context(), c.Params("table"), utils.SplitList(c.Query("fields")))
	return h.respond(c, fiber.StatusOK, docs, err)
}

// HandleFetchByIDs returns the documents matching a list of ids.
// @Summary Fetch By IDs
// @Description Return the documents whose primary key is in ids.
// @Tags records
// @Produce json
// @Param table path string true "Entity or table name"
// @Param ids query string true "Comma separated ids"
// @Success 200 {array} map[string]interface{} "Documents"
// @Failure 404 {object} map[string]string "No match"
// @Router /records/{table}/ids [get]
func (h *Handler) HandleFetchByIDs(c *fiber.Ctx) error {
	docs, err := h.service.ByIDs(c.Context(), c.Params("table"), utils.SplitList(c.Query("ids")))
	return h.respond(c, fiber.StatusOK, docs, err)
}

// HandleUpsert saves one document.
// @Summary Upsert
// @Description Insert the document, or overwrite the stored row when its primary key exists.
// @Tags records
// @Accept json
// @Produce json
// @Param table path string true "Entity or table name"
// @Success 200 {object} map[string]interface{} "Saved document"
// @Failure 400 {object} map[string]string "Invalid document"
// @Router /records/{table} [post]
func (h *Handler) HandleUpsert(c *fiber.Ctx) error {
	doc, err := h.service.Upsert(c.Context(), c.Params("table"), c.Body())
	return h.respond(c, fiber.StatusOK, doc, err)
}

// HandleInsert inserts one document or an array of documents.
// @Summary Insert
// @Description Insert without upsert semantics. Accepts an object or an array.
// @Tags records
// @Accept json
// @Produce json
// @Param table path string true "Entity or table name"
// @Success 201 {object} datastore.InsertResult "Inserted identifiers"
// @Failure 400 {object} map[string]string "Invalid document"
// @Failure 409 {object} map[string]string "Duplicate key"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /records/{table}/insert [post]
func (h *Handler) HandleInsert(c *fiber.Ctx) error {
	res, err := h.service.Insert(c.Context(), c.Params("table"), c.Body())
	return h.respond(c, fiber.StatusCreated, res, err)
}

// HandleUpdate updates the given columns of one row.
// @Summary Partial Update
// @Description Update only the columns present in the body and return the refreshed document.
// @Tags records
// @Accept json
// @Produce json
// @Param table path string true "Entity or table name"
// @Param id path string true "Primary key"
// @Success 200 {object} map[string]interface{} "Updated document"
// @Failure 404 {object} map[string]string "No such id"
// @Router /records/{table}/{id} [patch]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	doc, err := h.service.Update(c.Context(), c.Params("table"), c.Params("id"), c.Body())
	return h.respond(c, fiber.StatusOK, doc, err)
}

// HandleDelete removes rows by id.
// @Summary Delete By IDs
// @Description Delete the rows whose primary key is in ids.
// @Tags records
// @Produce json
// @Param table path string true "Entity or table name"
// @Param ids query string true "Comma separated ids"
// @Success 200 {object} datastore.DeleteResult "Rows removed"
// @Router /records/{table} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	res, err := h.service.Delete(c.Context(), c.Params("table"), utils.SplitList(c.Query("ids")))
	return h.respond(c, fiber.StatusOK, res, err)
}

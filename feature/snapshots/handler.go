package snapshots

import (
	"encoding/json"
	"errors"

	"token-bridge/core/logger"
	"token-bridge/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for snapshots.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the snapshot routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/snapshots")
	group.Post("/:name", h.HandleStore)
	group.Get("/:name", h.HandleHistory)
	group.Get("/:name/latest", h.HandleLatest)
	group.Get("/:name/:ref", h.HandleGet)
}

// HandleStore stores a snapshot.
// @Summary Store Snapshot
// @Description Stores a design-tool variable snapshot. An upload identical to the latest snapshot is not duplicated.
// @Tags snapshots
// @Accept json
// @Produce json
// @Param name path string true "Snapshot name"
// @Param snapshot body reconcile.Snapshot true "Snapshot"
// @Success 200 {object} Record "Unchanged"
// @Success 201 {object} Record "Stored"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots/{name} [post]
func (h *Handler) HandleStore(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var snapshot reconcile.Snapshot
	if err := json.Unmarshal(c.Body(), &snapshot); err != nil {
		l.Warn("Rejected snapshot", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid snapshot: " + err.Error()})
	}

	record, created, err := h.service.Store(c.Context(), c.Params("name"), &snapshot)
	if err != nil {
		l.Error("Failed to store snapshot", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(record)
}

// HandleHistory lists stored snapshots.
// @Summary Snapshot History
// @Description Lists the snapshots stored under a name, newest first.
// @Tags snapshots
// @Produce json
// @Param name path string true "Snapshot name"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {array} Record
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots/{name} [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	records, err := h.service.History(c.Context(), c.Params("name"), c.QueryInt("limit", 0))
	if err != nil {
		l.Error("Failed to list snapshots", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(records)
}

// HandleLatest returns the newest snapshot.
// @Summary Latest Snapshot
// @Description Returns the newest snapshot stored under a name, including its variables.
// @Tags snapshots
// @Produce json
// @Param name path string true "Snapshot name"
// @Success 200 {object} map[string]interface{} "Record and snapshot"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots/{name}/latest [get]
func (h *Handler) HandleLatest(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	record, err := h.service.Latest(c.Context(), c.Params("name"))
	return h.respondRecord(c, l, record, err)
}

// HandleGet returns one stored snapshot.
// @Summary Get Snapshot
// @Description Returns the snapshot with the given ref, including its variables.
// @Tags snapshots
// @Produce json
// @Param name path string true "Snapshot name"
// @Param ref path string true "Snapshot ref"
// @Success 200 {object} map[string]interface{} "Record and snapshot"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots/{name}/{ref} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	record, err := h.service.Get(c.Context(), c.Params("name"), c.Params("ref"))
	return h.respondRecord(c, l, record, err)
}

func (h *Handler) respondRecord(c *fiber.Ctx, l *zap.Logger, record Record, err error) error {
	if errors.Is(err, ErrSnapshotNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Failed to load snapshot", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	snapshot, err := record.Snapshot()
	if err != nil {
		l.Error("Stored snapshot is corrupt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"record":   record,
		"snapshot": snapshot,
	})
}

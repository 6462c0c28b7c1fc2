package compare

import (
	"encoding/json"
	"errors"

	"token-bridge/core/logger"
	"token-bridge/core/reconcile"
	"token-bridge/core/storage"
	"token-bridge/feature/snapshots"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for comparisons.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the compare routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/compare")
	group.Post("/", h.HandleCompare)
	group.Get("/:snapshot", h.HandleCompareStored)
}

// HandleCompare compares posted inputs.
// @Summary Compare Variables and Tokens
// @Description Classifies every variable and token as synced, needs-sync, variable-only or token-only.
// @Tags compare
// @Accept json
// @Produce json
// @Param request body Request true "Snapshot and document or tokens"
// @Param status query string false "Return only items with this status"
// @Success 200 {object} reconcile.Result
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]interface{} "Duplicate match keys (strict mode)"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /compare [post]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	status, err := ParseStatus(c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req Request
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		l.Warn("Rejected compare request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request: " + err.Error()})
	}

	result, hit, err := h.service.Compare(c.Context(), req.Snapshot, req.TokenList(), req.Mode)
	if err != nil {
		return h.fail(c, l, err)
	}
	return h.respond(c, FilterStatus(result, status), hit)
}

// HandleCompareStored compares stored inputs.
// @Summary Compare Stored Snapshot
// @Description Compares the latest stored snapshot with a stored token document.
// @Tags compare
// @Produce json
// @Param snapshot path string true "Snapshot name"
// @Param document query string false "Token document name (default: snapshot name)"
// @Param mode query string false "Variable mode"
// @Param status query string false "Return only items with this status"
// @Success 200 {object} reconcile.Result
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /compare/{snapshot} [get]
func (h *Handler) HandleCompareStored(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	status, err := ParseStatus(c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	snapshotName := c.Params("snapshot")
	documentName := c.Query("document", snapshotName)

	result, hit, err := h.service.CompareStored(c.Context(), snapshotName, documentName, c.Query("mode"))
	if err != nil {
		return h.fail(c, l, err)
	}
	return h.respond(c, FilterStatus(result, status), hit)
}

func (h *Handler) respond(c *fiber.Ctx, result reconcile.Result, hit bool) error {
	if hit {
		c.Set("X-Cache", "HIT")
	} else {
		c.Set("X-Cache", "MISS")
	}
	return c.JSON(result)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	var dke *reconcile.DuplicateKeyError
	switch {
	case errors.As(err, &dke):
		l.Warn("Comparison rejected", zap.Strings("keys", dke.Keys))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":      err.Error(),
			"duplicates": dke.Keys,
		})
	case errors.Is(err, snapshots.ErrSnapshotNotFound), errors.Is(err, storage.ErrObjectNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, snapshots.ErrDatabaseUnavailable), errors.Is(err, ErrSourcesUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error("Comparison failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

package tokens

import (
	"errors"

	"token-bridge/core/gitrepo"
	"token-bridge/core/logger"
	"token-bridge/core/storage"
	"token-bridge/core/tokens"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for token documents.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the tokens routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/tokens")
	group.Get("/", h.HandleList)
	group.Post("/flatten", h.HandleFlatten)
	group.Get("/repo", h.HandleRepo)
	group.Get("/:name", h.HandleGet)
}

// HandleFlatten flattens a posted document.
// @Summary Flatten Token Document
// @Description Flattens a nested JSON or YAML design-token document into an ordered token list with a summary.
// @Tags tokens
// @Accept json
// @Produce json
// @Param kind query string false "Keep only tokens of this kind"
// @Param grouped query boolean false "Group tokens by parent path"
// @Success 200 {object} Flattened
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /tokens/flatten [post]
func (h *Handler) HandleFlatten(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	doc, err := tokens.Parse(c.Body())
	if err != nil {
		l.Warn("Rejected token document", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return h.respond(c, h.service.Flatten(doc))
}

// HandleList lists stored documents.
// @Summary List Token Documents
// @Description Lists the token documents stored in the bucket.
// @Tags tokens
// @Produce json
// @Success 200 {object} map[string]interface{} "Names"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /tokens [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	names, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Failed to list token documents", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"documents": names})
}

// HandleGet flattens a stored document.
// @Summary Get Token Document
// @Description Loads a stored token document and returns its flattened tokens.
// @Tags tokens
// @Produce json
// @Param name path string true "Document name"
// @Param kind query string false "Keep only tokens of this kind"
// @Param grouped query boolean false "Group tokens by parent path"
// @Success 200 {object} Flattened
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /tokens/{name} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	out, err := h.service.LoadFlattened(c.Context(), c.Params("name"))
	if err != nil {
		return h.fail(c, l, err)
	}
	return h.respond(c, out)
}

// HandleRepo flattens a document read from git.
// @Summary Get Token Document From Git
// @Description Reads a token document from the configured git repository at a revision.
// @Tags tokens
// @Produce json
// @Param ref query string false "Branch, tag or commit (default: configured ref)"
// @Param path query string false "Document path (default: configured path)"
// @Success 200 {object} Flattened
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "Repository not configured"
// @Router /tokens/repo [get]
func (h *Handler) HandleRepo(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	out, err := h.service.LoadFromRepo(c.Query("ref"), c.Query("path"))
	if err != nil {
		return h.fail(c, l, err)
	}
	return h.respond(c, out)
}

func (h *Handler) respond(c *fiber.Ctx, out Flattened) error {
	out = Filter(out, tokens.Kind(c.Query("kind")))
	if c.QueryBool("grouped") {
		out.Groups = tokens.Regroup(out.Tokens)
	}
	return c.JSON(out)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	switch {
	case errors.Is(err, storage.ErrObjectNotFound),
		errors.Is(err, gitrepo.ErrFileNotFound),
		errors.Is(err, gitrepo.ErrRevisionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrRepoDisabled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, tokens.ErrInvalidDocument):
		l.Warn("Stored token document is invalid", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error("Failed to load token document", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

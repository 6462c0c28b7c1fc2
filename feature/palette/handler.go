package palette

import (
	"errors"
	"regexp"

	"token-bridge/core/logger"
	"token-bridge/core/palette"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var documentName = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// Handler handles HTTP requests for palettes.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the palette routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/palette")
	group.Get("/", h.HandleGenerate)
	group.Post("/:name", h.HandleSave)
}

// HandleGenerate generates a palette.
// @Summary Generate Palette
// @Description Derives primary, secondary, accent and neutral scales plus semantic colors from a seed color.
// @Tags palette
// @Produce json
// @Param seed query string true "Seed color (#RRGGBB)"
// @Param harmony query string false "complementary, analogous, triadic or split-complementary"
// @Param format query string false "json, css, scss or tokens"
// @Success 200 {object} map[string]interface{} "Palette"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /palette [get]
func (h *Handler) HandleGenerate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	format, err := ParseFormat(c.Query("format"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	p, err := h.service.Generate(c.Context(), c.Query("seed"), c.Query("harmony"))
	if err != nil {
		return h.fail(c, l, err)
	}

	if format == FormatJSON {
		return c.JSON(p)
	}

	body, err := Export(p, format)
	if err != nil {
		l.Error("Palette export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, format.ContentType())
	return c.Send(body)
}

// HandleSave stores a palette as a token document.
// @Summary Store Palette
// @Description Generates a palette and stores it as a design-token document readable from /tokens/{name}.
// @Tags palette
// @Produce json
// @Param name path string true "Document name"
// @Param seed query string true "Seed color (#RRGGBB)"
// @Param harmony query string false "Harmony mode"
// @Success 201 {object} map[string]interface{} "Stored"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /palette/{name} [post]
func (h *Handler) HandleSave(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	name := c.Params("name")
	if !documentName.MatchString(name) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid document name"})
	}

	p, err := h.service.Generate(c.Context(), c.Query("seed"), c.Query("harmony"))
	if err != nil {
		return h.fail(c, l, err)
	}

	object, err := h.service.Save(c.Context(), name, p)
	if err != nil {
		l.Error("Palette store failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "stored",
		"object":  object,
		"seed":    p.Seed,
		"harmony": p.Harmony,
	})
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	if errors.Is(err, palette.ErrInvalidColorFormat) || errors.Is(err, palette.ErrUnknownHarmony) {
		l.Warn("Rejected palette request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	l.Error("Palette generation failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

package scenario

import (
	"context"
	"errors"

	"collection-adapter/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for scenarios.
type Handler struct {
	store  *Store
	runner *Runner
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(store *Store, runner *Runner, logger *zap.Logger) *Handler {
	return &Handler{store: store, runner: runner, logger: logger}
}

// RegisterRoutes registers the scenario routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/scenarios")
	group.Post("/run", h.HandleRun)
	group.Get("/", h.HandleList)
	group.Get("/:name", h.HandleRunStored)
	group.Put("/:name", h.HandlePut)
}

// HandleRun runs a scenario sent in the request body.
// @Summary Run Scenario
// @Description Replay a YAML scenario against a fresh session. Use ?format=text for a rendered view.
// @Tags scenarios
// @Accept plain
// @Produce json
// @Param scenario body string true "YAML scenario"
// @Param format query string false "json or text" default(json)
// @Success 200 {object} Result "Per-step snapshots"
// @Failure 400 {object} map[string]string "Invalid scenario"
// @Failure 422 {object} Result "A step failed"
// @Router /scenarios/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	sc, err := Parse(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return h.run(c, sc)
}

// HandleList lists the scenarios stored in the bucket.
// @Summary List Scenarios
// @Tags scenarios
// @Produce json
// @Success 200 {object} map[string][]string "Scenario names"
// @Failure 503 {object} map[string]string "Storage disabled"
// @Router /scenarios [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	names, err := h.store.List(c.UserContext())
	if err != nil {
		return h.fail(c, "Scenario list failed", err)
	}
	return c.JSON(fiber.Map{"scenarios": names})
}

// HandleRunStored runs a scenario stored in the bucket.
// @Summary Run Stored Scenario
// @Tags scenarios
// @Produce json
// @Param name path string true "Scenario name"
// @Param format query string false "json or text" default(json)
// @Success 200 {object} Result "Per-step snapshots"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "Storage disabled"
// @Router /scenarios/{name} [get]
func (h *Handler) HandleRunStored(c *fiber.Ctx) error {
	sc, err := h.store.Get(c.UserContext(), c.Params("name"))
	if err != nil {
		return h.fail(c, "Scenario load failed", err)
	}
	return h.run(c, sc)
}

// HandlePut validates and stores a scenario in the bucket.
// @Summary Store Scenario
// @Tags scenarios
// @Accept plain
// @Produce json
// @Param name path string true "Scenario name"
// @Param scenario body string true "YAML scenario"
// @Success 201 {object} Scenario "Stored scenario"
// @Failure 400 {object} map[string]string "Invalid scenario"
// @Failure 503 {object} map[string]string "Storage disabled"
// @Router /scenarios/{name} [put]
func (h *Handler) HandlePut(c *fiber.Ctx) error {
	sc, err := h.store.Put(c.UserContext(), c.Params("name"), c.Body())
	if err != nil {
		return h.fail(c, "Scenario store failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(sc)
}

func (h *Handler) run(c *fiber.Ctx, sc *Scenario) error {
	res, err := h.runner.Run(c.UserContext(), sc)
	status := fiber.StatusOK
	if err != nil {
		if res == nil || errors.Is(err, context.Canceled) {
			return h.fail(c, "Scenario run failed", err)
		}
		status = fiber.StatusUnprocessableEntity
	}

	if c.Query("format") == "text" {
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(status).SendString(Render(res, DefaultWidth))
	}
	return c.Status(status).JSON(res)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError && status != fiber.StatusServiceUnavailable {
		logger.WithRayID(h.logger, c).Error(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// StatusFor maps scenario errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidScenario):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrStorageDisabled):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

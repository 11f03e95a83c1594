package session

import (
	"errors"
	"strconv"

	"collection-adapter/core/logger"
	"collection-adapter/core/pool"
	"collection-adapter/core/reconcile"
	"collection-adapter/core/utils"
	"collection-adapter/feature/session/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for sessions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the session routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sessions")
	group.Post("/", h.HandleCreate)
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Delete("/:id", h.HandleDelete)
	group.Put("/:id/items", h.HandleSetItems)
	group.Post("/:id/attach", h.HandleAttach)
	group.Post("/:id/detach", h.HandleDetach)
	group.Put("/:id/pool/:type", h.HandleSetCapacity)
	group.Delete("/:id/pool", h.HandleClearPool)
	group.Get("/:id/history", h.HandleHistory)
}

// HandleCreate creates a session.
// @Summary Create Session
// @Description Create a reconciliation session, optionally with items and attached.
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body models.CreateRequest false "Session options"
// @Success 201 {object} models.Snapshot "Created session"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Invalid options"
// @Router /sessions [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}

	snap, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return h.fail(c, "Session create failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(snap)
}

// HandleList lists session ids.
// @Summary List Sessions
// @Tags sessions
// @Produce json
// @Success 200 {object} map[string][]string "Session ids"
// @Router /sessions [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"sessions": h.service.IDs()})
}

// HandleGet returns a session snapshot.
// @Summary Get Session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.Snapshot "Session state"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	snap, err := h.service.Get(c.Params("id"))
	if err != nil {
		return h.fail(c, "Session lookup failed", err)
	}
	return c.JSON(snap)
}

// HandleDelete detaches and deletes a session.
// @Summary Delete Session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, "Session delete failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSetItems replaces the session items.
// @Summary Set Items
// @Description Replace the collection. Equal collections do not trigger a refresh.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.ItemsRequest true "Items"
// @Success 200 {object} models.Snapshot "Session state"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/items [put]
func (h *Handler) HandleSetItems(c *fiber.Ctx) error {
	var req models.ItemsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	snap, err := h.service.SetItems(c.UserContext(), c.Params("id"), req.Items)
	if err != nil {
		return h.fail(c, "Set items failed", err)
	}
	return c.JSON(snap)
}

// HandleAttach attaches the session collection to its host.
// @Summary Attach Session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.Snapshot "Session state"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/attach [post]
func (h *Handler) HandleAttach(c *fiber.Ctx) error {
	snap, err := h.service.Attach(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Attach failed", err)
	}
	return c.JSON(snap)
}

// HandleDetach detaches the session collection from its host.
// @Summary Detach Session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.Snapshot "Session state"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/detach [post]
func (h *Handler) HandleDetach(c *fiber.Ctx) error {
	snap, err := h.service.Detach(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Detach failed", err)
	}
	return c.JSON(snap)
}

// HandleSetCapacity sets the pool capacity of a type.
// @Summary Set Pool Capacity
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param type path int true "Type tag"
// @Param request body models.CapacityRequest true "Capacity"
// @Success 200 {object} models.Snapshot "Session state"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 422 {object} map[string]string "Invalid capacity"
// @Router /sessions/{id}/pool/{type} [put]
func (h *Handler) HandleSetCapacity(c *fiber.Ctx) error {
	typ, err := utils.ToInt(c.Params("type"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid type: " + err.Error()})
	}
	var req models.CapacityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	snap, err := h.service.SetCapacity(c.Params("id"), typ, req.Max)
	if err != nil {
		return h.fail(c, "Set capacity failed", err)
	}
	return c.JSON(snap)
}

// HandleClearPool drops the idle holders of the session pool.
// @Summary Clear Pool
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.Snapshot "Session state"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/pool [delete]
func (h *Handler) HandleClearPool(c *fiber.Ctx) error {
	snap, err := h.service.ClearPool(c.Params("id"))
	if err != nil {
		return h.fail(c, "Clear pool failed", err)
	}
	return c.JSON(snap)
}

// HandleHistory returns the persisted passes of a session.
// @Summary Session History
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param limit query int false "Maximum records" default(50)
// @Success 200 {array} models.RefreshRecord "Refresh history"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sessions/{id}/history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(DefaultHistoryLimit)))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid limit"})
	}
	records, err := h.service.History(c.UserContext(), c.Params("id"), limit)
	if err != nil {
		return h.fail(c, "History lookup failed", err)
	}
	return c.JSON(records)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// StatusFor maps service errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, reconcile.ErrInvalidArgument),
		errors.Is(err, reconcile.ErrPositionOutOfRange),
		errors.Is(err, reconcile.ErrNilItem),
		errors.Is(err, pool.ErrAlreadyPooled):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

package history

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cdirks4/insta-gift/internal/account"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/history", h.getHistory)
}

func (h *Handler) getHistory(c *fiber.Ctx) error {
	accountID, err := account.UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	// pagination: ?limit=20&offset=0
	limit := 20
	offset := 0
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	return c.JSON(h.service.List(accountID, limit, offset))
}

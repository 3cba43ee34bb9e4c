package profile

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/cdirks4/insta-gift/internal/account"
)

// Recorder saves a finished analysis for a signed-in caller. history.Service
// implements it; a nil recorder disables saving.
type Recorder interface {
	RecordProfileAnalysis(accountID int, username string, interests []string, analysis string) error
}

type Handler struct {
	service  *Service
	recorder Recorder
}

type analyzeRequest struct {
	Username string `json:"username"`
}

func NewHandler(service *Service, recorder Recorder) *Handler {
	return &Handler{service: service, recorder: recorder}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/profile-analysis", h.analyzeProfile)
}

func (h *Handler) analyzeProfile(c *fiber.Ctx) error {
	payload := new(analyzeRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "username is required"})
	}
	username = strings.TrimPrefix(username, "@")

	result, err := h.service.Analyze(c.Context(), username)
	if err != nil {
		if err == ErrProfileUnavailable {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "profile not found or not accessible"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "analysis failed"})
	}

	if accountID, ok := account.OptionalUserID(c); ok && h.recorder != nil {
		if err := h.recorder.RecordProfileAnalysis(accountID, username, result.Interests, result.Analysis); err != nil {
			log.Printf("profile: could not record analysis for account %d: %v", accountID, err)
		}
	}

	return c.JSON(result)
}

package gift

import (
	"io"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cdirks4/insta-gift/internal/account"
	"github.com/cdirks4/insta-gift/internal/imaging"
)

// Recorder saves a finished recommendation run for a signed-in caller.
type Recorder interface {
	RecordRecommendations(accountID int, age int, budget float64, recs []Recommendation) error
}

type Handler struct {
	service  *Service
	recorder Recorder
}

func NewHandler(service *Service, recorder Recorder) *Handler {
	return &Handler{service: service, recorder: recorder}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/recommendations", h.recommend)
}

func (h *Handler) recommend(c *fiber.Ctx) error {
	ageRaw := c.FormValue("age")
	if ageRaw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "age is required"})
	}
	age, err := strconv.Atoi(ageRaw)
	if err != nil || age <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "age must be a positive number"})
	}

	budgetRaw := c.FormValue("budget")
	if budgetRaw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "budget is required"})
	}
	budget, err := strconv.ParseFloat(budgetRaw, 64)
	if err != nil || budget <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "budget must be a positive number"})
	}

	// the photo is optional and every failure along the way just means the
	// recommendation call runs without an image analysis
	dataURL := ""
	if file, err := c.FormFile("image"); err == nil && file != nil {
		if f, err := file.Open(); err == nil {
			raw, readErr := io.ReadAll(f)
			f.Close()
			if readErr != nil {
				log.Printf("gift: could not read uploaded image: %v", readErr)
			} else {
				dataURL = imaging.NormalizeToDataURL(raw)
			}
		}
	}

	recs, _ := h.service.Recommend(c.Context(), age, budget, dataURL)

	if accountID, ok := account.OptionalUserID(c); ok && h.recorder != nil {
		if err := h.recorder.RecordRecommendations(accountID, age, budget, recs); err != nil {
			log.Printf("gift: could not record recommendations for account %d: %v", accountID, err)
		}
	}

	return c.JSON(fiber.Map{"recommendations": recs})
}

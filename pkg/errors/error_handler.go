package errors

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// HandleError, usecase katmanından dönen hatayı JSON cevabına çevirir.
// Upstream detay client'a sızmaz, sadece sabit mesaj gider.
func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	if ae, ok := err.(*AppError); ok {
		if ae.Err != nil {
			log.Printf("Request error [%s]: %v", ae.Code, ae.Err)
		}

		var status int
		switch ae.Code {
		case "unauthorized":
			status = fiber.StatusUnauthorized
		case "missing_fields", "missing_file":
			status = fiber.StatusBadRequest
		default:
			status = fiber.StatusInternalServerError
		}

		return c.Status(status).JSON(fiber.Map{
			"error": ae.Message,
		})
	}

	// Yakalanmayan hatalar için fallback
	log.Printf("Unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}

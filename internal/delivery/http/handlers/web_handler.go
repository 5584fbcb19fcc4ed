package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cloud-showcase/internal/infrastructure/mediaservice"
)

// WebHandler, sunucu tarafında render edilen sayfalar. Sayfa durumu
// (loading/error/empty vs.) static JS'te yaşar, template sadece iskelet.
type WebHandler struct {
	publishableKey string
	maxFileSize    int64
}

func NewWebHandler(publishableKey string, maxFileSize int64) *WebHandler {
	return &WebHandler{
		publishableKey: publishableKey,
		maxFileSize:    maxFileSize,
	}
}

func (h *WebHandler) Landing(c *fiber.Ctx) error {
	return c.Render("landing", fiber.Map{
		"Title": "Cloud Showcase",
	}, "layouts/main")
}

func (h *WebHandler) Home(c *fiber.Ctx) error {
	return c.Render("home", fiber.Map{
		"Title": "Explore Videos",
	}, "layouts/main")
}

func (h *WebHandler) VideoUpload(c *fiber.Ctx) error {
	return c.Render("video_upload", fiber.Map{
		"Title":       "Video Uploader",
		"MaxFileSize": h.maxFileSize,
	}, "layouts/main")
}

func (h *WebHandler) SocialShare(c *fiber.Ctx) error {
	return c.Render("social_share", fiber.Map{
		"Title":   "Social Media Image Creator",
		"Formats": mediaservice.SocialFormats,
	}, "layouts/main")
}

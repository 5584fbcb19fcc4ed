package handlers

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"

	"cloud-showcase/internal/domain/dto"
	"cloud-showcase/internal/infrastructure/mediaservice"
)

// MediaHandler, local backend'in teslimat ucu. Cloudinary modunda
// route hiç kaydedilmez; URL'ler doğrudan CDN'e gider.
type MediaHandler struct {
	local *mediaservice.LocalClient
}

func NewMediaHandler(local *mediaservice.LocalClient) *MediaHandler {
	return &MediaHandler{local: local}
}

// Serve, publicId'yi diskten döner. w/h parametresi varsa ve dosya
// decode edilebilen bir görüntüyse rendition üretir; videolar her
// zaman olduğu gibi akar.
func (h *MediaHandler) Serve(c *fiber.Ctx) error {
	publicID := c.Params("*")
	if publicID == "" || strings.Contains(publicID, "..") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "File not found",
		})
	}
	path := h.local.Path(publicID)

	width, _ := strconv.Atoi(c.Query("w"))
	height, _ := strconv.Atoi(c.Query("h"))
	if width <= 0 || height <= 0 {
		return c.SendFile(path)
	}

	img, err := imaging.Open(path)
	if err != nil {
		// görüntü değil, raw servis et
		return c.SendFile(path)
	}

	rendition := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, rendition, imaging.PNG); err != nil {
		return c.SendFile(path)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(buf.Bytes())
}

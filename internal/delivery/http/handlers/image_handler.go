package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cloud-showcase/internal/domain/dto"
	"cloud-showcase/internal/infrastructure/mediaservice"
	"cloud-showcase/internal/usecases"
	"cloud-showcase/pkg/errors"
)

type ImageHandler struct {
	service    usecases.ShowcaseService
	media      mediaservice.Client
	configured bool
}

func NewImageHandler(service usecases.ShowcaseService, media mediaservice.Client, configured bool) *ImageHandler {
	return &ImageHandler{
		service:    service,
		media:      media,
		configured: configured,
	}
}

// Upload
//
// @Summary      Upload Image
// @Description  Uploads an image for the social composer; nothing is persisted locally
// @Tags         Image
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      200  {object}  dto.ImageUploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/image-upload [post]
func (h *ImageHandler) Upload(c *fiber.Ctx) error {
	if !h.configured {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Cloudinary not configured",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "File not found",
		})
	}

	result, err := h.service.UploadImage(c.Context(), fileHeader)
	if err != nil {
		return errors.HandleError(c, err)
	}

	return c.JSON(dto.ImageUploadResponse{
		PublicID: result.PublicID,
		URLs:     mediaservice.SocialImageURLs(h.media, result.PublicID),
	})
}

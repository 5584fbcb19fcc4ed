package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"cloud-showcase/internal/domain/dto"
	"cloud-showcase/internal/infrastructure/mediaservice"
	"cloud-showcase/internal/usecases"
	"cloud-showcase/pkg/errors"
)

type VideoHandler struct {
	service    usecases.ShowcaseService
	media      mediaservice.Client
	configured bool
}

func NewVideoHandler(service usecases.ShowcaseService, media mediaservice.Client, configured bool) *VideoHandler {
	return &VideoHandler{
		service:    service,
		media:      media,
		configured: configured,
	}
}

// Upload
//
// @Summary      Upload Video
// @Description  Streams a video file to the media service and creates one catalog record
// @Tags         Video
// @Accept       multipart/form-data
// @Produce      json
// @Param        file          formData  file    true  "Video file"
// @Param        title         formData  string  true  "Title"
// @Param        description   formData  string  true  "Description"
// @Param        originalSize  formData  string  true  "Original size in bytes"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/video-upload [post]
func (h *VideoHandler) Upload(c *fiber.Ctx) error {
	if !h.configured {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Cloudinary not configured",
		})
	}

	title := c.FormValue("title")
	description := c.FormValue("description")
	rawSize := c.FormValue("originalSize")

	if title == "" || description == "" || rawSize == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Missing required fields",
		})
	}
	originalSize, err := strconv.ParseInt(rawSize, 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Missing required fields",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "File not found",
		})
	}

	req := &dto.VideoUploadRequestDTO{
		Title:        title,
		Description:  description,
		OriginalSize: originalSize,
	}
	if _, err := h.service.UploadVideo(c.Context(), req, fileHeader); err != nil {
		return errors.HandleError(c, err)
	}

	// identifier client'a dönmüyor, katalog listeden okunur
	return c.JSON(fiber.Map{})
}

// List
//
// @Summary      List Videos
// @Description  Returns every catalog record, newest first, with derived media URLs
// @Tags         Video
// @Produce      json
// @Success      200  {array}   dto.VideoResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/videos [get]
func (h *VideoHandler) List(c *fiber.Ctx) error {
	videos, err := h.service.ListVideos(c.Context())
	if err != nil {
		return errors.HandleError(c, err)
	}

	responses := make([]dto.VideoResponse, 0, len(videos))
	for _, v := range videos {
		responses = append(responses, dto.NewVideoResponse(
			v,
			h.media.ThumbnailURL(v.PublicID),
			h.media.PreviewURL(v.PublicID),
			h.media.DownloadURL(v.PublicID),
		))
	}
	return c.JSON(responses)
}

package dto

import (
	"time"

	"cloud-showcase/internal/domain/entities"
)

type VideoUploadRequestDTO struct {
	Title        string `json:"title" form:"title"`
	Description  string `json:"description" form:"description"`
	OriginalSize int64  `json:"originalSize" form:"originalSize"`
}

// VideoResponse, katalog satırı + sunucu tarafında türetilmiş URL'ler.
type VideoResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PublicID       string    `json:"publicId"`
	OriginalSize   int64     `json:"originalSize"`
	CompressedSize int64     `json:"compressedSize"`
	Duration       float64   `json:"duration"`
	CreatedAt      time.Time `json:"createdAt"`
	ThumbnailURL   string    `json:"thumbnailUrl"`
	PreviewURL     string    `json:"previewUrl"`
	DownloadURL    string    `json:"downloadUrl"`
}

func NewVideoResponse(v entities.Video, thumbnailURL, previewURL, downloadURL string) VideoResponse {
	return VideoResponse{
		ID:             v.ID.String(),
		Title:          v.Title,
		Description:    v.Description,
		PublicID:       v.PublicID,
		OriginalSize:   v.OriginalSize,
		CompressedSize: v.CompressedSize,
		Duration:       v.Duration,
		CreatedAt:      v.CreatedAt,
		ThumbnailURL:   thumbnailURL,
		PreviewURL:     previewURL,
		DownloadURL:    downloadURL,
	}
}

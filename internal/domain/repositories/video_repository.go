package repositories

import (
	"context"

	"cloud-showcase/internal/domain/entities"
)

// VideoRepository, katalog tablosu. Sadece create + listeleme;
// kayıtlar oluşturulduktan sonra değiştirilmez.
type VideoRepository interface {
	Create(ctx context.Context, video *entities.Video) error
	FindAll(ctx context.Context) ([]entities.Video, error)
}

package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cloud-showcase/internal/domain/entities"
	"cloud-showcase/internal/domain/repositories"
)

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) repositories.VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *entities.Video) error {
	if video.ID == uuid.Nil {
		video.ID = uuid.New()
	}
	if video.CreatedAt.IsZero() {
		video.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(video).Error
}

// FindAll, en yeni kayıt önce gelecek şekilde bütün katalogu döner.
// Owner filtresi yok: katalog herkese açık vitrin olarak tasarlandı.
func (r *videoRepository) FindAll(ctx context.Context) ([]entities.Video, error) {
	var videos []entities.Video
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

package db

import (
	"gorm.io/gorm"

	"cloud-showcase/internal/domain/entities"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Video{},
	)
}

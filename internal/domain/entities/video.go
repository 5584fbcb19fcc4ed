package entities

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Video, katalogdaki tek kayıt. Medya byte'ları burada tutulmaz;
// PublicID uzaktaki asset'e tek referanstır ve oluşturulduktan
// sonra değişmez. Update/delete yolu yok.
type Video struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string    `gorm:"type:varchar(255);not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	PublicID       string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"publicId"`
	OriginalSize   int64     `gorm:"not null" json:"originalSize"`
	CompressedSize int64     `json:"compressedSize"`
	Duration       float64   `json:"duration"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CompressionPercentage, 1 - compressed/original yüzdesi (yuvarlanmış).
// compressedSize >= originalSize kabul edilir, negatif sonuç dönebilir.
func (v *Video) CompressionPercentage() int {
	if v.OriginalSize <= 0 {
		return 0
	}
	return int(math.Round((1 - float64(v.CompressedSize)/float64(v.OriginalSize)) * 100))
}

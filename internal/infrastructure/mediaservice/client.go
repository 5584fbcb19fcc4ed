package mediaservice

import (
	"context"
	"io"
)

// UploadResult, medya servisinin upload cevabından aldığımız alanlar.
// Bytes ve Duration ilk cevaptaki değerlerdir; servis arka planda
// optimizasyona devam etse bile kayıt sonradan güncellenmez.
type UploadResult struct {
	PublicID string  `json:"public_id"`
	Bytes    int64   `json:"bytes"`
	Duration float64 `json:"duration"`
	Format   string  `json:"format"`
}

type UploadOptions struct {
	Folder string
}

// Client, harici medya platformuna açılan tek sınır. Upload çağrıları
// ve publicId'den türetilen URL'lerin tamamı buradan geçer.
type Client interface {
	UploadVideo(ctx context.Context, r io.Reader, opts UploadOptions) (*UploadResult, error)
	UploadImage(ctx context.Context, r io.Reader, opts UploadOptions) (*UploadResult, error)

	ThumbnailURL(publicID string) string
	PreviewURL(publicID string) string
	DownloadURL(publicID string) string
	SocialImageURL(publicID string, format SocialFormat) string
}

// SocialFormat, composer sayfasındaki hazır kırpma formatları.
type SocialFormat struct {
	Name        string
	Width       int
	Height      int
	AspectRatio string
}

var SocialFormats = []SocialFormat{
	{Name: "Instagram Square (1:1)", Width: 1080, Height: 1080, AspectRatio: "1:1"},
	{Name: "Instagram Portrait (4:5)", Width: 1080, Height: 1350, AspectRatio: "4:5"},
	{Name: "Twitter Post (16:9)", Width: 1200, Height: 675, AspectRatio: "16:9"},
	{Name: "Twitter Header (3:1)", Width: 1500, Height: 500, AspectRatio: "3:1"},
	{Name: "Facebook Cover (205:78)", Width: 820, Height: 312, AspectRatio: "205:78"},
}

// SocialImageURLs, bütün formatlar için URL map'i üretir.
func SocialImageURLs(c Client, publicID string) map[string]string {
	urls := make(map[string]string, len(SocialFormats))
	for _, f := range SocialFormats {
		urls[f.Name] = c.SocialImageURL(publicID, f)
	}
	return urls
}

package mediaservice

import "fmt"

const deliveryBase = "https://res.cloudinary.com"

// URLBuilder, publicId'den teslimat URL'i türeten saf fonksiyonlar.
// Aynı girdi her zaman aynı string'i üretir; network çağrısı yok,
// transform'u teslimat anında uzak servis uygular.
type URLBuilder struct {
	CloudName string
}

// ThumbnailURL, video asset'inden 400x225 jpg kare.
func (b URLBuilder) ThumbnailURL(publicID string) string {
	return b.videoURL("c_fill,g_auto,w_400,h_225,q_auto", publicID, "jpg")
}

// PreviewURL, sunucu tarafında kesilen en fazla 15 saniyelik özet.
func (b URLBuilder) PreviewURL(publicID string) string {
	return b.videoURL("e_preview:duration_15:max_seg_9:min_seg_dur_1/w_400,h_225", publicID, "mp4")
}

// DownloadURL, tam çözünürlüklü indirme linki.
func (b URLBuilder) DownloadURL(publicID string) string {
	return b.videoURL("w_1920,h_1080", publicID, "mp4")
}

// SocialImageURL, seçilen sosyal format için kırpılmış png.
func (b URLBuilder) SocialImageURL(publicID string, f SocialFormat) string {
	transform := fmt.Sprintf("ar_%s,c_fill,g_auto,w_%d,h_%d", f.AspectRatio, f.Width, f.Height)
	return fmt.Sprintf("%s/%s/image/upload/%s/%s.png", deliveryBase, b.CloudName, transform, publicID)
}

func (b URLBuilder) videoURL(transform, publicID, ext string) string {
	return fmt.Sprintf("%s/%s/video/upload/%s/%s.%s", deliveryBase, b.CloudName, transform, publicID, ext)
}

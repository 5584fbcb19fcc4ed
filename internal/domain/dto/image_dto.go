package dto

// ImageUploadResponse, social composer için publicId + hazır format URL'leri.
// Kayıt kalıcı değildir; client sekmeyi kapatınca referans kaybolur.
type ImageUploadResponse struct {
	PublicID string            `json:"publicId"`
	URLs     map[string]string `json:"urls"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

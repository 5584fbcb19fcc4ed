package constants

const (
	StatusOK     = "ok"
	StatusFailed = "failed"

	// Upload klasörleri (medya servisindeki folder parametresi)
	FolderVideoUploads = "video-uploads"
	FolderImageUploads = "image-uploads"
)

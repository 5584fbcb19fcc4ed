package mediaservice

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalClient, Cloudinary yapılandırılmadığında kullanılan dev backend.
// Byte'lar diske yazılır, publicId = folder/uuid. Transcode yok;
// görüntü rendition'ları /media endpoint'i imaging ile üretir,
// videolar olduğu gibi servis edilir.
type LocalClient struct {
	BaseDir string
}

func NewLocalClient(baseDir string) *LocalClient {
	return &LocalClient{BaseDir: baseDir}
}

func (l *LocalClient) UploadVideo(ctx context.Context, r io.Reader, opts UploadOptions) (*UploadResult, error) {
	return l.store(ctx, r, opts.Folder, "mp4")
}

func (l *LocalClient) UploadImage(ctx context.Context, r io.Reader, opts UploadOptions) (*UploadResult, error) {
	return l.store(ctx, r, opts.Folder, "png")
}

func (l *LocalClient) store(ctx context.Context, r io.Reader, folder, format string) (*UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	publicID := filepath.ToSlash(filepath.Join(folder, uuid.New().String()))
	fullPath := filepath.Join(l.BaseDir, filepath.FromSlash(publicID))

	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		return nil, fmt.Errorf("klasör oluşturulamadı: %w", err)
	}

	outFile, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("dosya oluşturulamadı: %w", err)
	}
	defer outFile.Close()

	written, err := io.Copy(outFile, r)
	if err != nil {
		return nil, fmt.Errorf("dosya yazılamadı: %w", err)
	}

	// Duration local modda bilinmiyor, 0 döner
	return &UploadResult{
		PublicID: publicID,
		Bytes:    written,
		Format:   format,
	}, nil
}

// Path, publicId'nin diskteki karşılığı.
func (l *LocalClient) Path(publicID string) string {
	return filepath.Join(l.BaseDir, filepath.FromSlash(publicID))
}

func (l *LocalClient) ThumbnailURL(publicID string) string {
	return "/media/" + publicID + "?w=400&h=225"
}

func (l *LocalClient) PreviewURL(publicID string) string {
	return "/media/" + publicID
}

func (l *LocalClient) DownloadURL(publicID string) string {
	return "/media/" + publicID
}

func (l *LocalClient) SocialImageURL(publicID string, f SocialFormat) string {
	return fmt.Sprintf("/media/%s?w=%d&h=%d", publicID, f.Width, f.Height)
}

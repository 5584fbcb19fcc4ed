package usecases

import (
	"context"
	"io"
	"log"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"cloud-showcase/internal/domain/dto"
	"cloud-showcase/internal/domain/entities"
	"cloud-showcase/internal/domain/repositories"
	"cloud-showcase/internal/infrastructure/archive"
	"cloud-showcase/internal/infrastructure/mediaservice"
	"cloud-showcase/internal/pkg/fileutils"
	consts "cloud-showcase/pkg/constants"
	"cloud-showcase/pkg/errors"
)

type ShowcaseService interface {
	UploadVideo(ctx context.Context, req *dto.VideoUploadRequestDTO, fileHeader *multipart.FileHeader) (*entities.Video, error)
	UploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (*mediaservice.UploadResult, error)
	ListVideos(ctx context.Context) ([]entities.Video, error)
}

// ListingCache, katalog listesinin okuma yolu cache'i. nil olabilir.
type ListingCache interface {
	Get(ctx context.Context) ([]entities.Video, bool)
	Set(ctx context.Context, videos []entities.Video)
	Invalidate(ctx context.Context)
}

// Archiver, orijinal byte'ların opsiyonel arşiv kuyruğu. nil olabilir.
type Archiver interface {
	Enqueue(job archive.Job) bool
}

type showcaseService struct {
	repo     repositories.VideoRepository
	media    mediaservice.Client
	cache    ListingCache
	archiver Archiver
	spoolDir string
}

func NewShowcaseService(repo repositories.VideoRepository, media mediaservice.Client, cache ListingCache, archiver Archiver, spoolDir string) ShowcaseService {
	return &showcaseService{
		repo:     repo,
		media:    media,
		cache:    cache,
		archiver: archiver,
		spoolDir: spoolDir,
	}
}

// UploadVideo, dosyayı medya servisine akıtır ve SADECE upload
// başarılıysa tek bir katalog satırı yazar. Placeholder kayıt yok;
// herhangi bir adım patlarsa sıfır satır kalır.
func (s *showcaseService) UploadVideo(ctx context.Context, req *dto.VideoUploadRequestDTO, fileHeader *multipart.FileHeader) (*entities.Video, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.ErrUploadFailed(err)
	}
	defer file.Close()

	// Arşiv açıksa upload sırasında byte'ları spool'a kopyala.
	// Spool dosyasının sahipliği kuyruğa geçer.
	var reader io.Reader = file
	var spoolPath string
	if s.archiver != nil {
		if spool, err := fileutils.CreateSpool(s.spoolDir); err == nil {
			reader = io.TeeReader(file, spool)
			spoolPath = spool.Name()
			defer spool.Close()
		} else {
			log.Printf("Spool dosyası açılamadı, arşiv atlanıyor: %v", err)
		}
	}

	result, err := s.media.UploadVideo(ctx, reader, mediaservice.UploadOptions{Folder: consts.FolderVideoUploads})
	if err != nil {
		s.dropSpool(spoolPath)
		return nil, errors.ErrUploadFailed(err)
	}

	video := &entities.Video{
		ID:             uuid.New(),
		Title:          req.Title,
		Description:    req.Description,
		PublicID:       result.PublicID,
		OriginalSize:   req.OriginalSize,
		CompressedSize: result.Bytes,
		Duration:       result.Duration,
		CreatedAt:      time.Now(),
	}
	if err := s.repo.Create(ctx, video); err != nil {
		s.dropSpool(spoolPath)
		return nil, errors.ErrUploadFailed(err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	if s.archiver != nil && spoolPath != "" {
		s.archiver.Enqueue(archive.Job{
			Key:  fileutils.ArchiveKey(video.ID.String(), fileHeader.Filename),
			Path: spoolPath,
		})
	}

	return video, nil
}

// UploadImage kalıcı kayıt bırakmaz; publicId client'ta yaşar ve
// sekme kapanınca kaybolur.
func (s *showcaseService) UploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (*mediaservice.UploadResult, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.ErrUploadFailed(err)
	}
	defer file.Close()

	result, err := s.media.UploadImage(ctx, file, mediaservice.UploadOptions{Folder: consts.FolderImageUploads})
	if err != nil {
		return nil, errors.ErrUploadFailed(err)
	}
	return result, nil
}

func (s *showcaseService) ListVideos(ctx context.Context) ([]entities.Video, error) {
	if s.cache != nil {
		if videos, ok := s.cache.Get(ctx); ok {
			return videos, nil
		}
	}

	videos, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, errors.ErrFetchFailed(err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, videos)
	}
	return videos, nil
}

func (s *showcaseService) dropSpool(path string) {
	fileutils.RemoveIfExists(path)
}

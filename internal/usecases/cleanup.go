package usecases

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

// CleanupService, arşiv kuyruğundan arta kalan spool dosyalarını
// süpürür. Normal akışta pool dosyayı kendisi siler; bu sadece
// crash sonrası yetimler için.
type CleanupService interface {
	CleanupOldSpoolFiles(maxAge time.Duration) error
}

type cleanupService struct {
	spoolDir string
}

func NewCleanupService(spoolDir string) CleanupService {
	return &cleanupService{spoolDir: spoolDir}
}

func (s *cleanupService) CleanupOldSpoolFiles(maxAge time.Duration) error {
	entries, err := os.ReadDir(s.spoolDir)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) > maxAge {
			path := filepath.Join(s.spoolDir, entry.Name())
			if err := os.Remove(path); err != nil {
				log.Printf("Spool dosyası kaldırılamadı: %v", err)
				continue
			}
			log.Printf("Removed stale spool file: %s", path)
		}
	}
	return nil
}

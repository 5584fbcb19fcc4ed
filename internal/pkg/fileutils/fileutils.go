// fileutils.go
package fileutils

import (
	"os"
	"strings"
)

// Spool dosyası oluşturma. Çağıran kapatmaktan, arşiv kuyruğu
// silmekten sorumlu.
func CreateSpool(dir string) (*os.File, error) {
	return os.CreateTemp(dir, "upload-*.bin")
}

// Arşiv anahtarı üretme. Kullanıcıdan gelen dosya adındaki path
// ayraçları ve boşluklar temizlenir.
func ArchiveKey(videoID, filename string) string {
	clean := strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(filename)
	clean = strings.Trim(clean, "._")
	if clean == "" {
		clean = "original"
	}
	return "originals/" + videoID + "_" + clean
}

func RemoveIfExists(path string) {
	if path != "" {
		os.Remove(path)
	}
}

package config

import (
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	Server     ServerConfig
	Upload     UploadConfig
	Database   DatabaseConfig
	Cloudinary CloudinaryConfig
	Auth       AuthConfig
	Redis      RedisConfig
	Archive    ArchiveConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type UploadConfig struct {
	SpoolDir      string
	LocalMediaDir string // boşsa local backend kapalı
	MaxFileSize   int64  // bytes
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// CloudinaryConfig, harici medya servisinin kimlik bilgileri.
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// IsConfigured reports whether all three credentials are present.
// Upload handlers refuse to call the media service without them.
func (c CloudinaryConfig) IsConfigured() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

// AuthConfig, identity provider anahtarları. Session token'ları
// SecretKey ile HS256 olarak doğrulanır.
type AuthConfig struct {
	PublishableKey string
	SecretKey      string
}

type RedisConfig struct {
	Host string
	Port string
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

// ArchiveConfig, orijinal dosyaların opsiyonel S3 arşivi.
type ArchiveConfig struct {
	Bucket  string
	Region  string
	Workers int
}

func (a ArchiveConfig) Enabled() bool {
	return a.Bucket != ""
}

func LoadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3000"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Upload: UploadConfig{
			SpoolDir:      getEnv("UPLOAD_SPOOL_DIR", "spool_uploads"),
			LocalMediaDir: getEnv("LOCAL_MEDIA_DIR", ""),
			MaxFileSize:   getEnvAsInt64("UPLOAD_MAX_FILE_SIZE", 70*1024*1024), // 70MB
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "cloud_showcase"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
			APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		},
		Auth: AuthConfig{
			PublishableKey: getEnv("AUTH_PUBLISHABLE_KEY", ""),
			SecretKey:      getEnv("AUTH_SECRET_KEY", ""),
		},
		Redis: RedisConfig{
			Host: getEnv("REDIS_HOST", "localhost"),
			Port: getEnv("REDIS_PORT", "6379"),
		},
		Archive: ArchiveConfig{
			Bucket:  getEnv("ARCHIVE_S3_BUCKET", ""),
			Region:  getEnv("ARCHIVE_S3_REGION", "eu-central-1"),
			Workers: int(getEnvAsInt64("ARCHIVE_WORKERS", 2)),
		},
	}

	return config
}

// EnsureDirs, spool ve (varsa) local media klasörlerini oluşturur.
func (c *Config) EnsureDirs() error {
	if err := os.MkdirAll(c.Upload.SpoolDir, 0755); err != nil {
		return err
	}
	if c.Upload.LocalMediaDir != "" {
		if err := os.MkdirAll(filepath.Clean(c.Upload.LocalMediaDir), 0755); err != nil {
			return err
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "cloud-showcase/docs"

	"cloud-showcase/internal/delivery/http/routers"
	"cloud-showcase/internal/infrastructure/archive"
	rediscache "cloud-showcase/internal/infrastructure/cache"
	"cloud-showcase/internal/infrastructure/db"
	"cloud-showcase/internal/infrastructure/mediaservice"
	infra_repo "cloud-showcase/internal/infrastructure/repositories"
	"cloud-showcase/internal/pkg/config"
	"cloud-showcase/internal/usecases"
	consts "cloud-showcase/pkg/constants"

	_ "cloud-showcase/migrations"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/robfig/cron/v3"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
	"github.com/gofiber/template/html/v2"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	if err := cfg.EnsureDirs(); err != nil {
		log.Fatalf("Klasörler oluşturulamadı: %v", err)
	}

	database, err := db.NewPostgresDB(cfg.Database)
	if err != nil {
		log.Fatalf("DB bağlantısı başarısız: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		log.Fatalf("sql.DB alınamadı: %v", err)
	}

	// Versiyonlu migration'lar goose ile; dev ortamında şema gorm
	// AutoMigrate ile açılır.
	if os.Getenv("RUN_AUTO_MIGRATION") == "true" {
		goose.SetBaseFS(nil)
		if err := goose.Up(sqlDB, "."); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}
	} else if err := db.AutoMigrate(database); err != nil {
		log.Fatalf("AutoMigrate başarısız: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr(),
	})

	// Media backend seçimi: Cloudinary yapılandırılmışsa o, değilse
	// (varsa) local dev backend. İkisi de yoksa upload uçları 500
	// ServiceUnavailable döner.
	var media mediaservice.Client
	var local *mediaservice.LocalClient
	switch {
	case cfg.Cloudinary.IsConfigured():
		media = mediaservice.NewCloudinaryClient(cfg.Cloudinary)
	case cfg.Upload.LocalMediaDir != "":
		local = mediaservice.NewLocalClient(cfg.Upload.LocalMediaDir)
		media = local
		log.Println("Cloudinary yapılandırılmadı, local media backend aktif")
	default:
		media = mediaservice.NewCloudinaryClient(cfg.Cloudinary)
		log.Println("WARN: Medya servisi yapılandırılmadı, upload uçları kapalı")
	}

	// Opsiyonel originals arşivi
	var archiver usecases.Archiver
	var pool *archive.Pool
	if cfg.Archive.Enabled() {
		s3Archive, err := archive.NewS3Archive(context.Background(), cfg.Archive.Bucket, cfg.Archive.Region)
		if err != nil {
			log.Fatalf("S3 arşivi başlatılamadı: %v", err)
		}
		pool = archive.NewPool(cfg.Archive.Workers, s3Archive)
		archiver = pool
	}

	// Repositories & Services
	videoRepo := infra_repo.NewVideoRepository(database)
	listCache := rediscache.NewVideoListCache(rdb, 30*time.Second)
	showcaseService := usecases.NewShowcaseService(videoRepo, media, listCache, archiver, cfg.Upload.SpoolDir)

	cleanupService := usecases.NewCleanupService(cfg.Upload.SpoolDir)
	c := cron.New(cron.WithSeconds())
	c.AddFunc("0 */5 * * * *", func() {
		if err := cleanupService.CleanupOldSpoolFiles(24 * time.Hour); err != nil {
			log.Printf("Error cleaning up old spool files: %v", err)
		}
	})
	c.Start()

	engine := html.New("./web/templates", ".html")
	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Upload.MaxFileSize),
		Views:     engine,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Routes
	routers.SetupAPIRoutes(app, cfg, showcaseService, media)
	routers.SetupWebRoutes(app, cfg)
	if local != nil {
		routers.SetupMediaRoutes(app, local)
	}

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": consts.StatusOK})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server başlatılamadı: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Print("Shutdown sinyali alındı, server kapatılıyor...")

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		log.Fatalf("Server düzgün kapatılamadı: %v", err)
	}

	c.Stop()
	if pool != nil {
		pool.Shutdown()
	}
	log.Println("Server düzgün bir şekilde kapatıldı")
}

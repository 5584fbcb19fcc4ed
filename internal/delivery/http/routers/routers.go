package routers

import (
	"github.com/gofiber/fiber/v2"

	"cloud-showcase/internal/delivery/http/handlers"
	"cloud-showcase/internal/delivery/http/middleware"
	"cloud-showcase/internal/infrastructure/mediaservice"
	"cloud-showcase/internal/pkg/config"
	"cloud-showcase/internal/usecases"
)

// SetupAPIRoutes, /api altındaki korunan uçlar. Bütün uçlar session
// ister; katalog listesi de bilinçli olarak auth arkasında (public
// vitrin ama sadece giriş yapmış kullanıcılara).
func SetupAPIRoutes(app *fiber.App, cfg *config.Config, service usecases.ShowcaseService, media mediaservice.Client) {
	configured := cfg.Cloudinary.IsConfigured() || cfg.Upload.LocalMediaDir != ""
	videoHandler := handlers.NewVideoHandler(service, media, configured)
	imageHandler := handlers.NewImageHandler(service, media, configured)

	api := app.Group("/api", middleware.RequireSession(cfg.Auth.SecretKey))
	api.Post("/video-upload", videoHandler.Upload)
	api.Post("/image-upload", imageHandler.Upload)
	api.Get("/videos", videoHandler.List)
}

// SetupWebRoutes, render edilen sayfalar ve static dosyalar.
// Sayfalar açık; veri çeken JS api uçlarında 401 yerse login'e düşer.
func SetupWebRoutes(app *fiber.App, cfg *config.Config) {
	webHandler := handlers.NewWebHandler(cfg.Auth.PublishableKey, cfg.Upload.MaxFileSize)

	app.Get("/", webHandler.Landing)
	app.Get("/home", webHandler.Home)
	app.Get("/video-upload", webHandler.VideoUpload)
	app.Get("/social-share", webHandler.SocialShare)
	app.Static("/static", "./web/static")
}

// SetupMediaRoutes, sadece local backend aktifken kaydedilir.
func SetupMediaRoutes(app *fiber.App, local *mediaservice.LocalClient) {
	mediaHandler := handlers.NewMediaHandler(local)
	app.Get("/media/*", mediaHandler.Serve)
}

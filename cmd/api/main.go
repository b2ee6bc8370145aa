package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"estatecms_backend/internal/controller"
	"estatecms_backend/internal/model"
	"estatecms_backend/internal/repository"
	"estatecms_backend/pkg/config"
	"estatecms_backend/pkg/database"
	"estatecms_backend/pkg/seed"
	"estatecms_backend/pkg/utils/storage"
	"estatecms_backend/pkg/utils/validation"
)

func setupRoutes(app *fiber.App, db *gorm.DB, uploads storage.Storage) {
	properties := controller.NewPropertyController(repository.NewPropertyRepo(db))
	blogs := controller.NewBlogController(repository.NewBlogRepo(db))
	gallery := controller.NewGalleryController(repository.NewGalleryRepo(db))
	testimonials := controller.NewTestimonialController(repository.NewTestimonialRepo(db))
	hero := controller.NewHeroController(repository.NewHeroRepo(db))
	settings := controller.NewSettingsController(repository.NewSettingsRepo(db))
	enquiries := controller.NewEnquiryController(repository.NewEnquiryRepo(db))
	dashboard := controller.NewDashboardController(repository.NewStatsRepo(db))
	upload := controller.NewUploadController(uploads)

	api := app.Group("/api")

	// Public site reads
	api.Get("/properties", properties.List)
	api.Get("/properties/:slug", properties.GetBySlug)
	api.Get("/blogs", blogs.List)
	api.Get("/blogs/:slug", blogs.GetBySlug)
	api.Get("/blog-categories", blogs.ListCategories)
	api.Get("/gallery", gallery.List)
	api.Get("/testimonials", testimonials.List)
	api.Get("/hero-slides", hero.ListActive)
	api.Get("/settings/branding", settings.GetBranding)

	// Public contact form and image upload
	api.Post("/enquiries", enquiries.Create)
	api.Post("/upload", upload.Upload)

	// Admin panel. Authentication happens upstream (identity-aware proxy);
	// these routes assume the request already passed it.
	admin := api.Group("/admin")
	admin.Post("/properties", properties.Upsert)
	admin.Delete("/properties/:id", properties.Delete)
	admin.Post("/blogs", blogs.Upsert)
	admin.Delete("/blogs/:id", blogs.Delete)
	admin.Post("/blog-categories", blogs.AddCategory)
	admin.Delete("/blog-categories/:name", blogs.DeleteCategory)
	admin.Get("/hero-slides", hero.List)
	admin.Post("/hero-slides", hero.Upsert)
	admin.Delete("/hero-slides/:id", hero.Delete)
	admin.Post("/gallery", gallery.Upsert)
	admin.Delete("/gallery/:id", gallery.Delete)
	admin.Post("/testimonials", testimonials.Upsert)
	admin.Delete("/testimonials/:id", testimonials.Delete)
	admin.Put("/settings/branding", settings.SaveBranding)
	admin.Get("/enquiries", enquiries.List)
	admin.Delete("/enquiries/:id", enquiries.Delete)
	admin.Get("/dashboard/counts", dashboard.Counts)
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Could not load configuration")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	err = database.Migrate(db,
		&model.Property{},
		&model.Blog{},
		&model.BlogCategory{},
		&model.GalleryItem{},
		&model.Testimonial{},
		&model.HeroSlide{},
		&model.Setting{},
		&model.Enquiry{},
	)
	if err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}

	seed.SeedDefaults(db)

	uploads, err := buildStorage(cfg)
	if err != nil {
		log.WithError(err).Fatal("Could not initialize upload storage")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: validation.MaxImageSize,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(fiberlogger.New())
	app.Use(cors.New())

	// Locally stored uploads are served straight from disk.
	if !cfg.Upload.S3Enabled() {
		app.Static(cfg.Upload.BaseURL, cfg.Upload.Dir)
	}

	setupRoutes(app, db, uploads)

	log.Infof("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

func buildStorage(cfg *config.Config) (storage.Storage, error) {
	if cfg.Upload.S3Enabled() {
		return storage.NewS3Storage(context.Background(), storage.S3Config{
			Bucket:    cfg.Upload.S3Bucket,
			Endpoint:  cfg.Upload.S3Endpoint,
			AccessKey: cfg.Upload.S3AccessKey,
			SecretKey: cfg.Upload.S3SecretKey,
			PublicURL: cfg.Upload.S3PublicURL,
		})
	}
	return storage.NewLocalStorage(cfg.Upload.Dir, cfg.Upload.BaseURL)
}

package migration

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"estatecms_backend/internal/branding"
	"estatecms_backend/internal/model"
	"estatecms_backend/internal/repository"
	"estatecms_backend/pkg/database"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// RecordFailure is one source record that could not be remapped or written.
// The batch keeps going past it.
type RecordFailure struct {
	Entity string `json:"entity"`
	ID     string `json:"id"`
	Label  string `json:"label"`
	Reason string `json:"reason"`
}

// Report accumulates per-record results for a whole run.
type Report struct {
	Migrated int
	Failures []RecordFailure
}

func (r *Report) fail(entity, id, label string, err error) {
	r.Failures = append(r.Failures, RecordFailure{
		Entity: entity,
		ID:     id,
		Label:  label,
		Reason: err.Error(),
	})
}

// Runner copies every collection out of the legacy store into the relational
// tables, one entity type at a time. Per-record failures are logged and
// skipped; only schema creation or an unreachable source aborts the run.
// Every destination write is an upsert keyed by the source identifier, so
// re-running after a partial failure is safe.
type Runner struct {
	db  *gorm.DB
	src Source
	log *logrus.Logger

	mu     sync.Mutex
	status Status
}

func NewRunner(db *gorm.DB, src Source, log *logrus.Logger) *Runner {
	if log == nil {
		log = logrus.New()
	}
	return &Runner{db: db, src: src, log: log, status: StatusIdle}
}

func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

func (r *Runner) setStatus(s Status) {
	r.mu.Lock()
	r.status = s
	r.mu.Unlock()
}

func (r *Runner) Run(ctx context.Context) (*Report, error) {
	r.setStatus(StatusRunning)

	report := &Report{}
	if err := r.run(ctx, report); err != nil {
		r.setStatus(StatusError)
		r.log.WithError(err).Error("Fatal migration error")
		return report, err
	}

	r.setStatus(StatusSuccess)
	r.log.Infof("Migration complete! %d items migrated, %d failures.",
		report.Migrated, len(report.Failures))
	return report, nil
}

func (r *Runner) run(ctx context.Context, report *Report) error {
	r.log.Info("Initializing destination tables...")
	err := database.Migrate(r.db,
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
		return fmt.Errorf("initialize schema: %w", err)
	}
	r.log.Info("Destination tables initialized")

	if err := r.migrateProperties(ctx, report); err != nil {
		return err
	}
	if err := r.migrateBlogs(ctx, report); err != nil {
		return err
	}
	r.migrateCategories(ctx)
	if err := r.migrateHeroSlides(ctx, report); err != nil {
		return err
	}
	if err := r.migrateGallery(ctx, report); err != nil {
		return err
	}
	if err := r.migrateTestimonials(ctx, report); err != nil {
		return err
	}
	r.migrateBranding(ctx, report)

	return nil
}

func (r *Runner) migrateProperties(ctx context.Context, report *Report) error {
	r.log.Info("Fetching properties from legacy store...")
	docs, err := r.src.Collection(ctx, "properties")
	if err != nil {
		return fmt.Errorf("fetch properties: %w", err)
	}
	r.log.Infof("Found %d properties", len(docs))

	repo := repository.NewPropertyRepo(r.db)
	for _, doc := range docs {
		property, err := RemapProperty(doc)
		if err == nil {
			_, err = repo.Upsert(ctx, &property)
		}
		if err != nil {
			report.fail("property", property.ID, property.Title, err)
			r.log.Errorf("Failed property %s: %v", property.Title, err)
			continue
		}
		report.Migrated++
		r.log.Infof("Migrated property: %s", property.Title)
	}
	return nil
}

// migrateBlogs reads from both legacy collection names; older posts live in
// "posts", newer ones in "blogs". A missing collection is only a warning.
func (r *Runner) migrateBlogs(ctx context.Context, report *Report) error {
	r.log.Info("Fetching blog posts from legacy store...")

	docs := []Document{}
	for _, collection := range []string{"posts", "blogs"} {
		found, err := r.src.Collection(ctx, collection)
		if err != nil {
			r.log.Warnf("Could not fetch %q collection: %v", collection, err)
			continue
		}
		r.log.Infof("Found %d items in %q collection", len(found), collection)
		docs = append(docs, found...)
	}
	r.log.Infof("Total blog posts to migrate: %d", len(docs))

	repo := repository.NewBlogRepo(r.db)
	for _, doc := range docs {
		blog, err := RemapBlog(doc)
		if err == nil {
			_, err = repo.Upsert(ctx, &blog)
		}
		if err != nil {
			report.fail("blog", blog.ID, blog.Title, err)
			r.log.Errorf("Failed blog %s: %v", blog.Title, err)
			continue
		}
		report.Migrated++
		r.log.Infof("Migrated blog: %s", blog.Title)
	}
	return nil
}

// migrateCategories reads the category list stored as a single settings
// document. Nothing here counts toward the migrated total; a fetch failure
// skips the step entirely.
func (r *Runner) migrateCategories(ctx context.Context) {
	r.log.Info("Fetching blog categories...")
	doc, err := r.src.Document(ctx, "settings", "blog_categories")
	if err != nil {
		r.log.Warnf("Categories migration skipped: %v", err)
		return
	}

	repo := repository.NewBlogRepo(r.db)
	for _, name := range stringSliceField(doc, "categories") {
		if err := repo.AddCategory(ctx, name); err != nil {
			r.log.Errorf("Failed category %s: %v", name, err)
			continue
		}
		r.log.Infof("Added category: %s", name)
	}
}

func (r *Runner) migrateHeroSlides(ctx context.Context, report *Report) error {
	r.log.Info("Fetching hero slides from legacy store...")
	docs, err := r.src.Collection(ctx, "hero_slides")
	if err != nil {
		return fmt.Errorf("fetch hero slides: %w", err)
	}
	r.log.Infof("Found %d hero slides", len(docs))

	repo := repository.NewHeroRepo(r.db)
	for _, doc := range docs {
		slide, err := RemapHeroSlide(doc)
		if err == nil {
			_, err = repo.Upsert(ctx, &slide)
		}
		if err != nil {
			report.fail("hero_slide", slide.ID, slide.Title, err)
			r.log.Errorf("Failed slide: %v", err)
			continue
		}
		report.Migrated++
		r.log.Infof("Migrated slide: %s", slide.Title)
	}
	return nil
}

func (r *Runner) migrateGallery(ctx context.Context, report *Report) error {
	r.log.Info("Fetching gallery items from legacy store...")
	docs, err := r.src.Collection(ctx, "gallery")
	if err != nil {
		return fmt.Errorf("fetch gallery: %w", err)
	}
	r.log.Infof("Found %d gallery items", len(docs))

	repo := repository.NewGalleryRepo(r.db)
	for _, doc := range docs {
		item, err := RemapGalleryItem(doc)
		if err == nil {
			_, err = repo.Upsert(ctx, &item)
		}
		if err != nil {
			report.fail("gallery", item.ID, item.Category, err)
			r.log.Errorf("Failed gallery item: %v", err)
			continue
		}
		report.Migrated++
		r.log.Info("Migrated gallery item")
	}
	return nil
}

func (r *Runner) migrateTestimonials(ctx context.Context, report *Report) error {
	r.log.Info("Fetching testimonials from legacy store...")
	docs, err := r.src.Collection(ctx, "testimonials")
	if err != nil {
		return fmt.Errorf("fetch testimonials: %w", err)
	}
	r.log.Infof("Found %d testimonials", len(docs))

	repo := repository.NewTestimonialRepo(r.db)
	for _, doc := range docs {
		testimonial, err := RemapTestimonial(doc)
		if err == nil {
			_, err = repo.Upsert(ctx, &testimonial)
		}
		if err != nil {
			report.fail("testimonial", testimonial.ID, testimonial.Name, err)
			r.log.Errorf("Failed testimonial %s: %v", testimonial.Name, err)
			continue
		}
		report.Migrated++
		r.log.Infof("Migrated testimonial: %s", testimonial.Name)
	}
	return nil
}

// migrateBranding copies the single site_branding document into the settings
// table. Absence of the document is not an error.
func (r *Runner) migrateBranding(ctx context.Context, report *Report) {
	r.log.Info("Fetching site branding from legacy store...")
	doc, err := r.src.Document(ctx, "site_branding", "main")
	if err != nil {
		if !errors.Is(err, ErrDocumentNotFound) {
			r.log.Warnf("Branding migration skipped: %v", err)
		}
		return
	}

	delete(doc, "id")
	delete(doc, "_id")

	repo := repository.NewSettingsRepo(r.db)
	if err := repo.Save(ctx, branding.SettingsKey, map[string]interface{}(doc)); err != nil {
		r.log.Errorf("Failed site branding: %v", err)
		return
	}
	report.Migrated++
	r.log.Info("Migrated site branding settings")
}

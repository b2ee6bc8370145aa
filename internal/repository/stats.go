package repository

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// DashboardCounts is the aggregate row-count snapshot the admin dashboard
// shows.
type DashboardCounts struct {
	Properties   int64 `json:"properties"`
	Blogs        int64 `json:"blogs"`
	Enquiries    int64 `json:"enquiries"`
	Gallery      int64 `json:"gallery"`
	Testimonials int64 `json:"testimonials"`
}

type StatsRepo struct {
	properties   *PropertyRepo
	blogs        *BlogRepo
	enquiries    *EnquiryRepo
	gallery      *GalleryRepo
	testimonials *TestimonialRepo
}

func NewStatsRepo(db *gorm.DB) *StatsRepo {
	return &StatsRepo{
		properties:   NewPropertyRepo(db),
		blogs:        NewBlogRepo(db),
		enquiries:    NewEnquiryRepo(db),
		gallery:      NewGalleryRepo(db),
		testimonials: NewTestimonialRepo(db),
	}
}

// Counts issues the five count queries concurrently and joins the results.
// Each count targets a disjoint table, so there is no ordering requirement
// between the branches.
func (r *StatsRepo) Counts(ctx context.Context) (DashboardCounts, error) {
	var counts DashboardCounts

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts.Properties, err = r.properties.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		counts.Blogs, err = r.blogs.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		counts.Enquiries, err = r.enquiries.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		counts.Gallery, err = r.gallery.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		counts.Testimonials, err = r.testimonials.Count(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return DashboardCounts{}, err
	}
	return counts, nil
}

package migration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"estatecms_backend/internal/model"
)

func TestRemapPropertyFullDocument(t *testing.T) {
	doc := Document{
		"id":             "prop-1",
		"title":          "Lake View Residences",
		"slug":           "lake-view-residences",
		"location":       "Banani",
		"area":           "12000",
		"price":          "45000000",
		"priceLabel":     "Starting from",
		"bedrooms":       4,
		"bathrooms":      "3",
		"status":         "Completed",
		"features":       []interface{}{"Lift", "Generator"},
		"featured_image": "cover.jpg",
		"images":         []interface{}{"a.jpg", "", "b.jpg"},
		"content":        "<p>Lakefront.</p>",
		"order":          2,
		"floor_plans": []interface{}{
			map[string]interface{}{
				"name":  "Type A",
				"image": "plan-a.png",
				"details": map[string]interface{}{
					"size": "2100", "bed": "3", "living": true,
				},
			},
		},
	}

	property, err := RemapProperty(doc)
	assert.NoError(t, err)
	assert.Equal(t, "prop-1", property.ID)
	assert.Equal(t, "lake-view-residences", property.Slug)
	assert.Equal(t, 4, property.Bedrooms)
	assert.Equal(t, 3, property.Bathrooms)
	assert.Equal(t, model.PropertyStatusCompleted, property.Status)
	assert.Equal(t, "sft", property.AreaUnit)
	// The featured image leads, then the rest in order, empties dropped.
	assert.Equal(t, []string{"cover.jpg", "a.jpg", "b.jpg"}, []string(property.Images))
	assert.Len(t, property.FloorPlans, 1)
	assert.Equal(t, "Type A", property.FloorPlans[0].Name)
	assert.NotNil(t, property.FloorPlans[0].Details)
	assert.Equal(t, "2100", property.FloorPlans[0].Details.Size)
	assert.True(t, property.FloorPlans[0].Details.Living)
}

func TestRemapPropertyDefaults(t *testing.T) {
	property, err := RemapProperty(Document{"id": "prop-2"})
	assert.NoError(t, err)
	assert.Equal(t, "Untitled", property.Title)
	// Without a slug the source id keeps lookups stable.
	assert.Equal(t, "prop-2", property.Slug)
	assert.Equal(t, model.PropertyStatusOngoing, property.Status)
	assert.NotNil(t, property.Images)
	assert.Len(t, property.Images, 0)
	assert.NotNil(t, property.FloorPlans)
}

func TestRemapPropertyNestedFallbacks(t *testing.T) {
	doc := Document{
		"id": "prop-3",
		"meta": map[string]interface{}{
			"map_address": "Gulshan Avenue",
			"land":        "10 katha",
		},
		"description": "Older description field",
	}

	property, err := RemapProperty(doc)
	assert.NoError(t, err)
	assert.Equal(t, "Gulshan Avenue", property.Location)
	assert.Equal(t, "10 katha", property.Area)
	assert.Equal(t, "Older description field", property.Description)
}

func TestRemapPropertyNumericStrings(t *testing.T) {
	property, err := RemapProperty(Document{"id": "p", "bedrooms": " 5 ", "bathrooms": 4.0})
	assert.NoError(t, err)
	assert.Equal(t, 5, property.Bedrooms)
	assert.Equal(t, 4, property.Bathrooms)
}

func TestRemapBlogFieldGenerations(t *testing.T) {
	doc := Document{
		"id":            "post-1",
		"title":         "Market Outlook",
		"featuredImage": "chart.png",
		"seo":           map[string]interface{}{"metadesc": "Prices in review"},
		"body":          "Long form text",
		"date":          "2023-06-15",
	}

	blog, err := RemapBlog(doc)
	assert.NoError(t, err)
	assert.Equal(t, "chart.png", blog.FeaturedImage)
	assert.Equal(t, "Prices in review", blog.Excerpt)
	assert.Equal(t, "Long form text", blog.Content)
	assert.Equal(t, "Uncategorized", blog.Category)
	assert.Equal(t, time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), blog.PublishedAt)
}

func TestRemapBlogDateFallsBackToNow(t *testing.T) {
	blog, err := RemapBlog(Document{"id": "post-2", "title": "Undated"})
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), blog.PublishedAt, time.Minute)
}

func TestRemapBlogRFC3339Date(t *testing.T) {
	blog, err := RemapBlog(Document{"id": "post-3", "publishedAt": "2024-01-02T15:04:05Z"})
	assert.NoError(t, err)
	assert.Equal(t, 2024, blog.PublishedAt.Year())
}

func TestRemapHeroSlideDefaults(t *testing.T) {
	slide, err := RemapHeroSlide(Document{"id": "slide-1", "image": "hero.jpg"})
	assert.NoError(t, err)
	assert.Equal(t, "View Properties", slide.ButtonText)
	assert.Equal(t, "/properties", slide.ButtonLink)
	assert.True(t, slide.IsActive)
}

func TestRemapHeroSlideLegacyButtonFields(t *testing.T) {
	slide, err := RemapHeroSlide(Document{
		"id":       "slide-2",
		"image":    "hero.jpg",
		"btn1Text": "Explore",
		"btn1Link": "/projects",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Explore", slide.ButtonText)
	assert.Equal(t, "/projects", slide.ButtonLink)
}

func TestRemapHeroSlideRequiresImage(t *testing.T) {
	_, err := RemapHeroSlide(Document{"id": "slide-3", "title": "No picture"})
	assert.ErrorIs(t, err, errMissingImage)
}

func TestRemapGalleryItemFieldGenerations(t *testing.T) {
	item, err := RemapGalleryItem(Document{"id": "g-1", "url": "pool.jpg", "caption": "Amenities"})
	assert.NoError(t, err)
	assert.Equal(t, "pool.jpg", item.ImageURL)
	assert.Equal(t, "Amenities", item.Category)

	item, err = RemapGalleryItem(Document{"id": "g-2", "image": "gym.jpg"})
	assert.NoError(t, err)
	assert.Equal(t, "General", item.Category)
}

func TestRemapGalleryItemRequiresImage(t *testing.T) {
	_, err := RemapGalleryItem(Document{"id": "g-3"})
	assert.ErrorIs(t, err, errMissingImage)
}

func TestRemapTestimonial(t *testing.T) {
	testimonial, err := RemapTestimonial(Document{"id": "t-1", "content": "Loved the handover process."})
	assert.NoError(t, err)
	assert.Equal(t, "Anonymous", testimonial.Name)
	assert.Equal(t, "Loved the handover process.", testimonial.Text)
}

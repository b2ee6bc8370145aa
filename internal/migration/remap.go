package migration

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"

	"estatecms_backend/internal/model"
)

// The legacy store accumulated several generations of field names per
// collection. Each remap function tries the known names in priority order
// and falls back to a sensible default, mirroring what the old import page
// did. Remapping is pure so it can be tested without a database.

var errMissingImage = errors.New("record has no image")

func RemapProperty(doc Document) (model.Property, error) {
	images := []string{}
	if featured := stringField(doc, "featured_image"); featured != "" {
		images = append(images, featured)
	}
	for _, img := range stringSliceField(doc, "images") {
		if img != "" {
			images = append(images, img)
		}
	}

	property := model.Property{
		ID:          stringField(doc, "id"),
		Title:       stringFieldOr(doc, "Untitled", "title"),
		Slug:        stringFieldOr(doc, stringField(doc, "id"), "slug"),
		Location:    stringField(doc, "location", "meta.map_address"),
		Area:        stringField(doc, "area", "meta.land"),
		AreaUnit:    "sft",
		Price:       stringField(doc, "price"),
		PriceLabel:  stringField(doc, "priceLabel", "price_label"),
		Bedrooms:    intField(doc, "bedrooms"),
		Bathrooms:   intField(doc, "bathrooms"),
		Status:      model.PropertyStatus(stringFieldOr(doc, string(model.PropertyStatusOngoing), "status")),
		Features:    datatypes.JSONSlice[string](stringSliceField(doc, "features")),
		Images:      datatypes.JSONSlice[string](images),
		Description: stringField(doc, "content", "description"),
		SortOrder:   intField(doc, "order", "sort_order"),
	}

	plans, err := floorPlansField(doc, "floor_plans")
	if err != nil {
		return property, fmt.Errorf("floor_plans: %w", err)
	}
	property.FloorPlans = datatypes.JSONSlice[model.FloorPlan](plans)

	return property, nil
}

func RemapBlog(doc Document) (model.Blog, error) {
	return model.Blog{
		ID:            stringField(doc, "id"),
		Title:         stringFieldOr(doc, "Untitled Post", "title"),
		Slug:          stringFieldOr(doc, stringField(doc, "id"), "slug"),
		Category:      stringFieldOr(doc, "Uncategorized", "category"),
		FeaturedImage: stringField(doc, "featured_image", "featuredImage", "image"),
		Excerpt:       stringField(doc, "excerpt", "seo.metadesc", "description"),
		Content:       stringField(doc, "content", "body"),
		PublishedAt:   timeFieldOr(doc, time.Now(), "date", "publishedAt", "created_at"),
	}, nil
}

func RemapHeroSlide(doc Document) (model.HeroSlide, error) {
	slide := model.HeroSlide{
		ID:         stringField(doc, "id"),
		Image:      stringField(doc, "image"),
		Title:      stringField(doc, "title"),
		Subtitle:   stringField(doc, "subtitle"),
		ButtonText: stringFieldOr(doc, "View Properties", "btn1Text", "buttonText", "button_text"),
		ButtonLink: stringFieldOr(doc, "/properties", "btn1Link", "buttonLink", "button_link"),
		IsActive:   true,
		SortOrder:  intField(doc, "order", "sort_order"),
	}
	if slide.Image == "" {
		return slide, errMissingImage
	}
	return slide, nil
}

func RemapGalleryItem(doc Document) (model.GalleryItem, error) {
	item := model.GalleryItem{
		ID:        stringField(doc, "id"),
		ImageURL:  stringField(doc, "image", "url", "image_url"),
		Category:  stringFieldOr(doc, "General", "caption", "category"),
		SortOrder: intField(doc, "order", "sort_order"),
	}
	if item.ImageURL == "" {
		return item, errMissingImage
	}
	return item, nil
}

func RemapTestimonial(doc Document) (model.Testimonial, error) {
	return model.Testimonial{
		ID:   stringField(doc, "id"),
		Name: stringFieldOr(doc, "Anonymous", "name"),
		Text: stringField(doc, "text", "content"),
	}, nil
}

// stringField walks the paths in order and returns the first non-empty
// string. A path may be dotted ("meta.map_address").
func stringField(doc Document, paths ...string) string {
	for _, path := range paths {
		if s, ok := lookup(doc, path).(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func stringFieldOr(doc Document, fallback string, paths ...string) string {
	if s := stringField(doc, paths...); s != "" {
		return s
	}
	return fallback
}

func intField(doc Document, paths ...string) int {
	for _, path := range paths {
		switch v := lookup(doc, path).(type) {
		case int:
			return v
		case int32:
			return int(v)
		case int64:
			return int(v)
		case float64:
			return int(v)
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n
			}
		}
	}
	return 0
}

func timeFieldOr(doc Document, fallback time.Time, paths ...string) time.Time {
	for _, path := range paths {
		switch v := lookup(doc, path).(type) {
		case time.Time:
			return v
		case string:
			for _, layout := range []string{time.RFC3339, "2006-01-02"} {
				if t, err := time.Parse(layout, v); err == nil {
					return t
				}
			}
		}
	}
	return fallback
}

func stringSliceField(doc Document, path string) []string {
	items, ok := lookup(doc, path).([]interface{})
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func floorPlansField(doc Document, path string) ([]model.FloorPlan, error) {
	v := lookup(doc, path)
	if v == nil {
		return []model.FloorPlan{}, nil
	}

	// The documents store plans as free-form maps; a JSON round trip is the
	// simplest honest conversion into the typed shape.
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	plans := []model.FloorPlan{}
	if err := json.Unmarshal(raw, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func lookup(doc Document, path string) interface{} {
	var current interface{} = map[string]interface{}(doc)
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current = m[part]
	}
	return current
}

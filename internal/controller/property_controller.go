package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"estatecms_backend/internal/model"
	"estatecms_backend/internal/repository"
)

type PropertyController struct {
	repo *repository.PropertyRepo
}

func NewPropertyController(repo *repository.PropertyRepo) *PropertyController {
	return &PropertyController{repo: repo}
}

type PropertyInput struct {
	ID          string               `json:"id"`
	Title       string               `json:"title" validate:"required"`
	Slug        string               `json:"slug"`
	Location    string               `json:"location"`
	Area        string               `json:"area"`
	AreaUnit    string               `json:"area_unit"`
	Price       string               `json:"price"`
	PriceLabel  string               `json:"price_label"`
	Bedrooms    int                  `json:"bedrooms" validate:"min=0"`
	Bathrooms   int                  `json:"bathrooms" validate:"min=0"`
	Status      model.PropertyStatus `json:"status" validate:"omitempty,oneof=Ongoing Completed Upcoming"`
	Features    []string             `json:"features"`
	Images      []string             `json:"images"`
	FloorPlans  []model.FloorPlan    `json:"floor_plans"`
	Description string               `json:"description"`
	SortOrder   int                  `json:"sort_order"`
}

// List is the public listings page feed.
func (ct *PropertyController) List(c *fiber.Ctx) error {
	properties, err := ct.repo.List(c.UserContext())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(properties)
}

// GetBySlug serves the property detail page.
func (ct *PropertyController) GetBySlug(c *fiber.Ctx) error {
	property, err := ct.repo.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(property)
}

// Upsert saves a property from the admin form. A request without an id
// creates; with an id it overwrites every field of the existing row.
func (ct *PropertyController) Upsert(c *fiber.Ctx) error {
	input := new(PropertyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	property := model.Property{
		ID:          input.ID,
		Title:       input.Title,
		Slug:        input.Slug,
		Location:    input.Location,
		Area:        input.Area,
		AreaUnit:    input.AreaUnit,
		Price:       input.Price,
		PriceLabel:  input.PriceLabel,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		Status:      input.Status,
		Features:    datatypes.JSONSlice[string](input.Features),
		Images:      datatypes.JSONSlice[string](input.Images),
		FloorPlans:  datatypes.JSONSlice[model.FloorPlan](input.FloorPlans),
		Description: input.Description,
		SortOrder:   input.SortOrder,
	}

	id, err := ct.repo.Upsert(c.UserContext(), &property)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(fiber.Map{"id": id})
}

func (ct *PropertyController) Delete(c *fiber.Ctx) error {
	if err := ct.repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return repoError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

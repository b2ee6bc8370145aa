package controller

import (
	"github.com/gofiber/fiber/v2"

	"estatecms_backend/internal/model"
	"estatecms_backend/internal/repository"
)

type GalleryController struct {
	repo *repository.GalleryRepo
}

func NewGalleryController(repo *repository.GalleryRepo) *GalleryController {
	return &GalleryController{repo: repo}
}

type GalleryItemInput struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	ImageURL  string `json:"image_url" validate:"required"`
	SortOrder int    `json:"sort_order"`
}

func (ct *GalleryController) List(c *fiber.Ctx) error {
	items, err := ct.repo.List(c.UserContext())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(items)
}

func (ct *GalleryController) Upsert(c *fiber.Ctx) error {
	input := new(GalleryItemInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image URL is required",
		})
	}

	item := model.GalleryItem{
		ID:        input.ID,
		Category:  input.Category,
		ImageURL:  input.ImageURL,
		SortOrder: input.SortOrder,
	}

	id, err := ct.repo.Upsert(c.UserContext(), &item)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(fiber.Map{"id": id})
}

func (ct *GalleryController) Delete(c *fiber.Ctx) error {
	if err := ct.repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return repoError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

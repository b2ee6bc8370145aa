package controller

import (
	"github.com/gofiber/fiber/v2"

	"estatecms_backend/internal/model"
	"estatecms_backend/internal/repository"
)

type HeroController struct {
	repo *repository.HeroRepo
}

func NewHeroController(repo *repository.HeroRepo) *HeroController {
	return &HeroController{repo: repo}
}

type HeroSlideInput struct {
	ID         string `json:"id"`
	Image      string `json:"image" validate:"required"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"button_text"`
	ButtonLink string `json:"button_link"`
	IsActive   *bool  `json:"is_active"`
	SortOrder  int    `json:"sort_order"`
}

// ListActive feeds the public hero carousel.
func (ct *HeroController) ListActive(c *fiber.Ctx) error {
	slides, err := ct.repo.ListActive(c.UserContext())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(slides)
}

// List returns every slide, including inactive ones, for the admin panel.
func (ct *HeroController) List(c *fiber.Ctx) error {
	slides, err := ct.repo.List(c.UserContext())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(slides)
}

func (ct *HeroController) Upsert(c *fiber.Ctx) error {
	input := new(HeroSlideInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Slide image is required",
		})
	}

	slide := model.HeroSlide{
		ID:         input.ID,
		Image:      input.Image,
		Title:      input.Title,
		Subtitle:   input.Subtitle,
		ButtonText: input.ButtonText,
		ButtonLink: input.ButtonLink,
		IsActive:   input.IsActive == nil || *input.IsActive,
		SortOrder:  input.SortOrder,
	}

	id, err := ct.repo.Upsert(c.UserContext(), &slide)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(fiber.Map{"id": id})
}

func (ct *HeroController) Delete(c *fiber.Ctx) error {
	if err := ct.repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return repoError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

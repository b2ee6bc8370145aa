package controller

import (
	"github.com/gofiber/fiber/v2"

	"estatecms_backend/internal/model"
	"estatecms_backend/internal/repository"
)

type TestimonialController struct {
	repo *repository.TestimonialRepo
}

func NewTestimonialController(repo *repository.TestimonialRepo) *TestimonialController {
	return &TestimonialController{repo: repo}
}

type TestimonialInput struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required"`
	Text string `json:"text" validate:"required"`
}

func (ct *TestimonialController) List(c *fiber.Ctx) error {
	testimonials, err := ct.repo.List(c.UserContext())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(testimonials)
}

func (ct *TestimonialController) Upsert(c *fiber.Ctx) error {
	input := new(TestimonialInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and text are required",
		})
	}

	testimonial := model.Testimonial{
		ID:   input.ID,
		Name: input.Name,
		Text: input.Text,
	}

	id, err := ct.repo.Upsert(c.UserContext(), &testimonial)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(fiber.Map{"id": id})
}

func (ct *TestimonialController) Delete(c *fiber.Ctx) error {
	if err := ct.repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return repoError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package controller

import (
	"github.com/gofiber/fiber/v2"

	"estatecms_backend/internal/model"
	"estatecms_backend/internal/repository"
)

type EnquiryController struct {
	repo *repository.EnquiryRepo
}

func NewEnquiryController(repo *repository.EnquiryRepo) *EnquiryController {
	return &EnquiryController{repo: repo}
}

type EnquiryInput struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
	PropertyID string `json:"property_id"`
}

// Create handles the public contact form.
func (ct *EnquiryController) Create(c *fiber.Ctx) error {
	input := new(EnquiryInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	enquiry := model.Enquiry{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Message:    input.Message,
		PropertyID: input.PropertyID,
	}

	id, err := ct.repo.Add(c.UserContext(), &enquiry)
	if err != nil {
		return repoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (ct *EnquiryController) List(c *fiber.Ctx) error {
	enquiries, err := ct.repo.List(c.UserContext())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(enquiries)
}

func (ct *EnquiryController) Delete(c *fiber.Ctx) error {
	if err := ct.repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return repoError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

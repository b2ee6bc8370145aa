package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"estatecms_backend/internal/branding"
	"estatecms_backend/internal/repository"
)

type SettingsController struct {
	repo *repository.SettingsRepo
}

func NewSettingsController(repo *repository.SettingsRepo) *SettingsController {
	return &SettingsController{repo: repo}
}

// GetBranding returns the stored site branding merged onto the defaults, so
// consumers never see missing keys.
func (ct *SettingsController) GetBranding(c *fiber.Ctx) error {
	stored, err := ct.repo.Get(c.UserContext(), branding.SettingsKey)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return repoError(c, err)
	}

	merged, err := branding.Merge(stored)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Stored branding is not valid JSON",
		})
	}
	return c.JSON(merged)
}

func (ct *SettingsController) SaveBranding(c *fiber.Ctx) error {
	input := new(branding.SiteBranding)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if err := ct.repo.Save(c.UserContext(), branding.SettingsKey, input); err != nil {
		return repoError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Settings saved"})
}

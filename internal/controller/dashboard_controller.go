package controller

import (
	"github.com/gofiber/fiber/v2"

	"estatecms_backend/internal/repository"
)

type DashboardController struct {
	stats *repository.StatsRepo
}

func NewDashboardController(stats *repository.StatsRepo) *DashboardController {
	return &DashboardController{stats: stats}
}

// Counts returns the per-entity row counts shown on the admin dashboard.
func (ct *DashboardController) Counts(c *fiber.Ctx) error {
	counts, err := ct.stats.Counts(c.UserContext())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(counts)
}

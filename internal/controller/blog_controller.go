package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"estatecms_backend/internal/model"
	"estatecms_backend/internal/repository"
)

type BlogController struct {
	repo *repository.BlogRepo
}

func NewBlogController(repo *repository.BlogRepo) *BlogController {
	return &BlogController{repo: repo}
}

type BlogInput struct {
	ID            string     `json:"id"`
	Title         string     `json:"title" validate:"required"`
	Slug          string     `json:"slug"`
	Category      string     `json:"category"`
	FeaturedImage string     `json:"featured_image"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	PublishedAt   *time.Time `json:"published_at"`
}

type CategoryInput struct {
	Name string `json:"name" validate:"required"`
}

func (ct *BlogController) List(c *fiber.Ctx) error {
	blogs, err := ct.repo.List(c.UserContext())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(blogs)
}

func (ct *BlogController) GetBySlug(c *fiber.Ctx) error {
	blog, err := ct.repo.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(blog)
}

func (ct *BlogController) Upsert(c *fiber.Ctx) error {
	input := new(BlogInput)
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

	blog := model.Blog{
		ID:            input.ID,
		Title:         input.Title,
		Slug:          input.Slug,
		Category:      input.Category,
		FeaturedImage: input.FeaturedImage,
		Excerpt:       input.Excerpt,
		Content:       input.Content,
	}
	if input.PublishedAt != nil {
		blog.PublishedAt = *input.PublishedAt
	}

	id, err := ct.repo.Upsert(c.UserContext(), &blog)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(fiber.Map{"id": id})
}

func (ct *BlogController) Delete(c *fiber.Ctx) error {
	if err := ct.repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return repoError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (ct *BlogController) ListCategories(c *fiber.Ctx) error {
	categories, err := ct.repo.Categories(c.UserContext())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(categories)
}

func (ct *BlogController) AddCategory(c *fiber.Ctx) error {
	input := new(CategoryInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category name is required",
		})
	}

	if err := ct.repo.AddCategory(c.UserContext(), input.Name); err != nil {
		return repoError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

func (ct *BlogController) DeleteCategory(c *fiber.Ctx) error {
	if err := ct.repo.DeleteCategory(c.UserContext(), c.Params("name")); err != nil {
		return repoError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package controller

import (
	"bytes"
	"io"

	"github.com/gofiber/fiber/v2"

	"estatecms_backend/pkg/utils/storage"
	"estatecms_backend/pkg/utils/validation"
)

type UploadController struct {
	storage storage.Storage
}

func NewUploadController(s storage.Storage) *UploadController {
	return &UploadController{storage: s}
}

// Upload accepts one image in the multipart field "image", stores it under
// a collision-resistant name and returns the URL it can be fetched from.
// The stored bytes are the uploaded bytes, untouched.
func (ct *UploadController) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   validation.ErrFileRequired.Error(),
		})
	}

	if err := validation.ValidateImage(file); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not read uploaded file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not read uploaded file",
		})
	}

	if err := validation.ValidateImageBytes(data, file.Filename); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	filename := storage.ObjectName(file.Filename)
	url, err := ct.storage.Save(c.UserContext(), filename, file.Header.Get("Content-Type"), bytes.NewReader(data))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not save file",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"url":      url,
		"filename": filename,
	})
}

package curriculums

import (
	"database/sql"

	"edcenter/app/database"
	"edcenter/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetCurriculumsAPI(c *fiber.Ctx, db *sql.DB) error {
	curriculums, err := database.GetAllCurriculums(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch curriculums")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    curriculums,
	})
}

func GetCurriculumByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	curriculum, err := database.GetCurriculumByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Curriculum not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch curriculum")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    curriculum,
	})
}

func CreateCurriculumAPI(c *fiber.Ctx, db *sql.DB) error {
	var curriculum models.Curriculum
	if err := c.BodyParser(&curriculum); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if curriculum.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name is required")
	}
	if curriculum.Fees < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Fees must not be negative")
	}
	if curriculum.DurationMonths < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Duration must not be negative")
	}

	if err := database.CreateCurriculum(db, &curriculum); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create curriculum")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    curriculum,
		"message": "Curriculum created successfully",
	})
}

func UpdateCurriculumAPI(c *fiber.Ctx, db *sql.DB) error {
	var curriculum models.Curriculum
	if err := c.BodyParser(&curriculum); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	curriculum.ID = c.Params("id")

	if curriculum.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name is required")
	}
	if curriculum.Fees < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Fees must not be negative")
	}

	rowsAffected, err := database.UpdateCurriculum(db, &curriculum)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update curriculum")
	}
	if rowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Curriculum not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Curriculum updated successfully",
	})
}

func DeleteCurriculumAPI(c *fiber.Ctx, db *sql.DB) error {
	rowsAffected, err := database.DeleteCurriculum(db, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete curriculum")
	}
	if rowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Curriculum not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Curriculum deleted successfully",
	})
}

package schools

import (
	"database/sql"

	"edcenter/app/database"
	"edcenter/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetSchoolsAPI(c *fiber.Ctx, db *sql.DB) error {
	schools, err := database.GetAllSchools(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch schools")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    schools,
	})
}

func GetSchoolByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	school, err := database.GetSchoolByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "School not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch school")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    school,
	})
}

func GetSchoolCentersAPI(c *fiber.Ctx, db *sql.DB) error {
	centers, err := database.GetCentersBySchool(db, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch centers")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    centers,
	})
}

func CreateSchoolAPI(c *fiber.Ctx, db *sql.DB) error {
	var school models.School
	if err := c.BodyParser(&school); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if school.Name == "" || school.Code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name and code are required")
	}

	if err := database.CreateSchool(db, &school); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create school")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    school,
		"message": "School created successfully",
	})
}

func UpdateSchoolAPI(c *fiber.Ctx, db *sql.DB) error {
	var school models.School
	if err := c.BodyParser(&school); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	school.ID = c.Params("id")

	if school.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name is required")
	}

	rowsAffected, err := database.UpdateSchool(db, &school)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update school")
	}
	if rowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "School not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "School updated successfully",
	})
}

func DeleteSchoolAPI(c *fiber.Ctx, db *sql.DB) error {
	rowsAffected, err := database.DeleteSchool(db, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete school")
	}
	if rowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "School not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "School deleted successfully",
	})
}

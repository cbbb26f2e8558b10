package centers

import (
	"database/sql"

	"edcenter/app/database"
	"edcenter/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetCentersAPI(c *fiber.Ctx, db *sql.DB) error {
	centers, err := database.GetAllCenters(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch centers")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    centers,
	})
}

func GetCenterByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	center, err := database.GetCenterByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Center not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch center")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    center,
	})
}

func GetCenterClassesAPI(c *fiber.Ctx, db *sql.DB) error {
	classes, err := database.GetClassesByCenter(db, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch classes")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    classes,
	})
}

func CreateCenterAPI(c *fiber.Ctx, db *sql.DB) error {
	var center models.Center
	if err := c.BodyParser(&center); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if center.SchoolID == "" || center.Name == "" || center.Code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "School, name and code are required")
	}

	if err := database.CreateCenter(db, &center); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create center")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    center,
		"message": "Center created successfully",
	})
}

func UpdateCenterAPI(c *fiber.Ctx, db *sql.DB) error {
	var center models.Center
	if err := c.BodyParser(&center); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	center.ID = c.Params("id")

	if center.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name is required")
	}

	rowsAffected, err := database.UpdateCenter(db, &center)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update center")
	}
	if rowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Center not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Center updated successfully",
	})
}

func DeleteCenterAPI(c *fiber.Ctx, db *sql.DB) error {
	rowsAffected, err := database.DeleteCenter(db, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete center")
	}
	if rowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Center not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Center deleted successfully",
	})
}

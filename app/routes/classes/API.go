package classes

import (
	"database/sql"

	"edcenter/app/database"
	"edcenter/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetClassesAPI(c *fiber.Ctx, db *sql.DB) error {
	centerID := c.Query("center_id")

	var classes []*models.Class
	var err error
	if centerID != "" {
		classes, err = database.GetClassesByCenter(db, centerID)
	} else {
		classes, err = database.GetAllClasses(db)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch classes")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    classes,
	})
}

func GetClassByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	class, err := database.GetClassByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    class,
	})
}

func GetClassStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	students, err := database.GetStudentsByClass(db, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    students,
		"count":   len(students),
	})
}

func CreateClassAPI(c *fiber.Ctx, db *sql.DB) error {
	var class models.Class
	if err := c.BodyParser(&class); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if class.CenterID == "" || class.Name == "" || class.Code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Center, name and code are required")
	}
	if !class.Format.IsValid() {
		return fiber.NewError(fiber.StatusBadRequest, "Format must be weekday or weekend")
	}

	if err := database.CreateClass(db, &class); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create class")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    class,
		"message": "Class created successfully",
	})
}

func UpdateClassAPI(c *fiber.Ctx, db *sql.DB) error {
	var class models.Class
	if err := c.BodyParser(&class); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	class.ID = c.Params("id")

	if class.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name is required")
	}
	if !class.Format.IsValid() {
		return fiber.NewError(fiber.StatusBadRequest, "Format must be weekday or weekend")
	}

	rowsAffected, err := database.UpdateClass(db, &class)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update class")
	}
	if rowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Class not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Class updated successfully",
	})
}

func DeleteClassAPI(c *fiber.Ctx, db *sql.DB) error {
	rowsAffected, err := database.DeleteClass(db, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete class")
	}
	if rowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Class not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Class deleted successfully",
	})
}

package students

import (
	"database/sql"
	"strconv"

	"edcenter/app/database"
	"edcenter/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	if limit < 1 || limit > 200 {
		limit = 50
	}

	filters := database.StudentFilters{
		Search:       c.Query("search"),
		Status:       c.Query("status", "active"),
		CenterID:     c.Query("center_id"),
		ClassID:      c.Query("class_id"),
		CurriculumID: c.Query("curriculum_id"),
		Gender:       c.Query("gender"),
		SortBy:       c.Query("sort_by"),
		SortOrder:    c.Query("sort_order"),
		Limit:        limit,
		Offset:       (page - 1) * limit,
	}

	students, totalCount, err := database.GetStudentsWithFilters(db, filters)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}

	totalPages := (totalCount + limit - 1) / limit
	return c.JSON(fiber.Map{
		"success": true,
		"data":    students,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       totalCount,
			"total_pages": totalPages,
		},
	})
}

func GetStudentByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if student.StudentCode == "" || student.FirstName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Student code and first name are required")
	}
	if student.CenterID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Center is required")
	}
	if student.Gender != "" && !student.Gender.IsValid() {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid gender")
	}

	if err := database.CreateStudent(db, &student); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    student,
		"message": "Student created successfully",
	})
}

func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	student.ID = c.Params("id")

	if student.FirstName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "First name is required")
	}
	if student.Gender != "" && !student.Gender.IsValid() {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid gender")
	}

	rowsAffected, err := database.UpdateStudent(db, &student)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}
	if rowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student updated successfully",
	})
}

func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	rowsAffected, err := database.DeleteStudent(db, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}
	if rowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student deleted successfully",
	})
}

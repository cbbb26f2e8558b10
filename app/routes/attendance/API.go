package attendance

import (
	"database/sql"
	"strconv"
	"time"

	"edcenter/app/database"
	"edcenter/app/models"

	"github.com/gofiber/fiber/v2"
)

type markAttendanceRequest struct {
	StudentID string  `json:"student_id"`
	ClassID   *string `json:"class_id"`
	Date      string  `json:"date"`
	Status    string  `json:"status"`
}

type bulkMarkRequest struct {
	ClassID string `json:"class_id"`
	Date    string `json:"date"`
	Records []struct {
		StudentID string `json:"student_id"`
		Status    string `json:"status"`
	} `json:"records"`
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", value)
}

func markedBy(c *fiber.Ctx) *string {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return nil
	}
	return &userID
}

// MarkAttendanceAPI records or replaces one student's attendance for a date.
func MarkAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	var req markAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.StudentID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Student is required")
	}
	status := models.AttendanceStatus(req.Status)
	if !status.IsValid() {
		return fiber.NewError(fiber.StatusBadRequest, "Status must be present, absent, late or excused")
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Date must be in YYYY-MM-DD format")
	}

	record := &models.Attendance{
		StudentID: req.StudentID,
		ClassID:   req.ClassID,
		Date:      date,
		Status:    status,
		MarkedBy:  markedBy(c),
	}
	if err := database.CreateOrUpdateAttendance(db, record); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to mark attendance")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    record,
		"message": "Attendance marked successfully",
	})
}

// BulkMarkAttendanceAPI marks a whole class register for a date in one call.
// Records with an unknown status are skipped and reported back.
func BulkMarkAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	var req bulkMarkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.ClassID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Class is required")
	}
	if len(req.Records) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "At least one record is required")
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Date must be in YYYY-MM-DD format")
	}

	by := markedBy(c)
	marked := 0
	var skipped []string
	for _, r := range req.Records {
		status := models.AttendanceStatus(r.Status)
		if r.StudentID == "" || !status.IsValid() {
			skipped = append(skipped, r.StudentID)
			continue
		}
		record := &models.Attendance{
			StudentID: r.StudentID,
			ClassID:   &req.ClassID,
			Date:      date,
			Status:    status,
			MarkedBy:  by,
		}
		if err := database.CreateOrUpdateAttendance(db, record); err != nil {
			skipped = append(skipped, r.StudentID)
			continue
		}
		marked++
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Attendance marked successfully",
		"data": fiber.Map{
			"marked":  marked,
			"skipped": skipped,
		},
	})
}

// GetClassAttendanceAPI returns the register for a class on a date.
func GetClassAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	date, err := parseDate(c.Params("date"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Date must be in YYYY-MM-DD format")
	}

	records, err := database.GetAttendanceByClassAndDate(db, c.Params("class_id"), date)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    records,
		"date":    date.Format("2006-01-02"),
	})
}

// GetStudentAttendanceAPI returns a student's attendance history plus
// per-status totals.
func GetStudentAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("student_id")

	limit, _ := strconv.Atoi(c.Query("limit", "60"))
	if limit < 1 || limit > 365 {
		limit = 60
	}
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if offset < 0 {
		offset = 0
	}

	records, err := database.GetAttendanceByStudent(db, studentID, limit, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendance")
	}
	summary, err := database.GetAttendanceSummary(db, studentID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendance summary")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"records": records,
			"summary": summary,
		},
	})
}

package portal

import (
	"database/sql"

	"edcenter/app/config"
	"edcenter/app/database"
	"edcenter/app/services"

	"github.com/gofiber/fiber/v2"
)

// GetStudentProgressAPI is the public parent view: attendance totals and the
// billing snapshot, without the transaction ledger or discount details.
func GetStudentProgressAPI(c *fiber.Ctx, db *sql.DB) error {
	studentCode := c.Query("student_code")
	phone := c.Query("phone")
	if studentCode == "" || phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Student code and phone are required")
	}

	student, err := database.GetStudentByCodeAndGuardianPhone(db, studentCode, phone)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "No student matches that code and phone")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	summary, err := database.GetAttendanceSummary(db, student.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	data := fiber.Map{
		"student": fiber.Map{
			"student_code": student.StudentCode,
			"name":         student.FullName(),
			"class_name":   student.ClassName,
			"center_name":  student.CenterName,
		},
		"attendance": summary,
	}

	if student.CurriculumID != nil {
		enrollment, err := database.GetEnrollment(db, student.ID, *student.CurriculumID)
		if err == nil {
			billing, _, err := services.LoadStudentBilling(db, config.GetBilling(), enrollment)
			if err == nil {
				data["curriculum_name"] = student.CurriculumName
				data["fees"] = fiber.Map{
					"total_fees":         billing.Snapshot.TotalFees,
					"amount_paid":        billing.Snapshot.AmountPaid,
					"amount_pending":     billing.Snapshot.AmountPending,
					"payment_status":     billing.Snapshot.PaymentStatus,
					"installment_number": billing.Snapshot.InstallmentNumber,
					"total_installments": billing.Snapshot.TotalInstallments,
					"is_installment_due": billing.InstallmentDue,
				}
			}
		} else if err != sql.ErrNoRows {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch enrollment")
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

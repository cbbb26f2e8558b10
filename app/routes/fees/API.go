package fees

import (
	"database/sql"
	"math"
	"strconv"
	"time"

	"edcenter/app/config"
	"edcenter/app/database"
	"edcenter/app/models"
	"edcenter/app/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

type applyDiscountRequest struct {
	StudentID          string  `json:"student_id" validate:"required,uuid"`
	CurriculumID       string  `json:"curriculum_id" validate:"required,uuid"`
	DiscountPercentage float64 `json:"discount_percentage" validate:"gte=0,lte=100"`
	DiscountReason     *string `json:"discount_reason"`
	PaymentPlan        string  `json:"payment_plan" validate:"required,oneof=full installment"`
}

type recordPaymentRequest struct {
	StudentID            string  `json:"student_id" validate:"required,uuid"`
	CurriculumID         string  `json:"curriculum_id" validate:"required,uuid"`
	Amount               float64 `json:"amount" validate:"required"`
	PaymentMethod        string  `json:"payment_method" validate:"required"`
	PaymentDate          string  `json:"payment_date"`
	TransactionReference *string `json:"transaction_reference"`
	Remarks              *string `json:"remarks"`
}

// classFormatFor resolves the format of the student's class; students without
// a class assignment bill on the weekday schedule.
func classFormatFor(db *sql.DB, student *models.Student) models.ClassFormat {
	if student.ClassID != nil {
		if class, err := database.GetClassByID(db, *student.ClassID); err == nil && class.Format.IsValid() {
			return class.Format
		}
	}
	return models.WeekdayFormat
}

func buildEnrollment(db *sql.DB, student *models.Student, curriculum *models.Curriculum,
	discountPercentage float64, discountReason *string, plan models.PaymentPlan) (*models.CurriculumEnrollment, error) {

	billing := config.GetBilling()
	terms, err := services.QuoteEnrollment(curriculum.Fees, discountPercentage, plan,
		curriculum.DurationMonths, billing.DefaultInstallments)
	if err != nil {
		return nil, err
	}

	return &models.CurriculumEnrollment{
		StudentID:          student.ID,
		CurriculumID:       curriculum.ID,
		OriginalFees:       terms.OriginalFees,
		DiscountPercentage: terms.DiscountPercentage,
		DiscountReason:     discountReason,
		DiscountAmount:     terms.DiscountAmount,
		TotalFees:          terms.TotalFees,
		PaymentPlan:        terms.PaymentPlan,
		TotalInstallments:  terms.TotalInstallments,
		InstallmentAmount:  terms.InstallmentAmount,
		ClassFormat:        classFormatFor(db, student),
	}, nil
}

// ApplyDiscountAPI elects a discount percentage and payment plan for a
// student+curriculum pair. The election stays editable until the first payment
// is recorded; after that it returns 409.
func ApplyDiscountAPI(c *fiber.Ctx, db *sql.DB) error {
	var req applyDiscountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	student, err := database.GetStudentByID(db, req.StudentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}
	curriculum, err := database.GetCurriculumByID(db, req.CurriculumID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Curriculum not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch curriculum")
	}

	enrollment, err := buildEnrollment(db, student, curriculum,
		req.DiscountPercentage, req.DiscountReason, models.PaymentPlan(req.PaymentPlan))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := database.SaveEnrollment(db, enrollment); err != nil {
		if err == models.ErrEnrollmentLocked {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save enrollment")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    enrollment,
		"message": "Discount applied successfully",
	})
}

// RecordPaymentAPI appends a payment to an enrollment's ledger. When the
// student has no enrollment yet, one is created with no discount on the full
// plan, which the payment then locks.
func RecordPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req recordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	if req.Amount != math.Trunc(req.Amount) {
		return fiber.NewError(fiber.StatusBadRequest, "Amount must be a whole number")
	}
	amount := int64(req.Amount)
	if amount < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "Amount must be a positive whole number")
	}
	method := models.PaymentMethod(req.PaymentMethod)
	if !method.IsValid() {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment method")
	}

	paymentDate := time.Now()
	if req.PaymentDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PaymentDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Payment date must be in YYYY-MM-DD format")
		}
		paymentDate = parsed
	}

	recordedBy, ok := c.Locals("user_id").(string)
	if !ok || recordedBy == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
	}

	student, err := database.GetStudentByID(db, req.StudentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}
	curriculum, err := database.GetCurriculumByID(db, req.CurriculumID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Curriculum not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch curriculum")
	}

	enrollment, err := database.GetEnrollment(db, req.StudentID, req.CurriculumID)
	if err == sql.ErrNoRows {
		// No discount election was made: default to full plan, no discount.
		enrollment, err = buildEnrollment(db, student, curriculum, 0, nil, models.FullPlan)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := database.SaveEnrollment(db, enrollment); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create enrollment")
		}
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch enrollment")
	}

	// Receipts need a reference even for cash payments.
	if req.TransactionReference == nil || *req.TransactionReference == "" {
		ref := "RCPT-" + uuid.NewString()
		req.TransactionReference = &ref
	}

	payment := &models.PaymentTransaction{
		EnrollmentID:         enrollment.ID,
		StudentID:            student.ID,
		CurriculumID:         curriculum.ID,
		Amount:               amount,
		PaymentMethod:        method,
		PaymentDate:          paymentDate,
		TransactionReference: req.TransactionReference,
		Remarks:              req.Remarks,
		RecordedBy:           recordedBy,
	}

	if err := database.RecordPayment(db, payment); err != nil {
		if exceeds := models.IsExceedsPending(err); exceeds != nil {
			return fiber.NewError(fiber.StatusBadRequest, exceeds.Error())
		}
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
	}

	// Reflect the payment and the lock in the response.
	enrollment, err = database.GetEnrollmentByID(db, enrollment.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch enrollment")
	}
	billing, _, err := services.LoadStudentBilling(db, config.GetBilling(), enrollment)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute billing state")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"transaction": payment,
			"billing":     billing,
		},
		"message": "Payment recorded successfully",
	})
}

// GetStudentFeesAPI returns a student's full billing state: enrollment terms,
// derived snapshot, advisory due flag and the transaction ledger.
func GetStudentFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	curriculumID := c.Query("curriculum_id")
	if curriculumID == "" {
		if student.CurriculumID == nil {
			return fiber.NewError(fiber.StatusNotFound, "Student has no curriculum enrollment")
		}
		curriculumID = *student.CurriculumID
	}

	enrollment, err := database.GetEnrollment(db, student.ID, curriculumID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch enrollment")
	}

	billing, transactions, err := services.LoadStudentBilling(db, config.GetBilling(), enrollment)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute billing state")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"student":      student,
			"billing":      billing,
			"transactions": transactions,
		},
	})
}

type overviewRow struct {
	Enrollment *models.CurriculumEnrollment `json:"enrollment"`
	Snapshot   services.BillingSnapshot     `json:"snapshot"`
}

// GetCenterFeesOverviewAPI returns one derived snapshot per enrollment of the
// center's active students. Payments are summed in one batch query.
func GetCenterFeesOverviewAPI(c *fiber.Ctx, db *sql.DB) error {
	centerID := c.Params("id")
	if _, err := database.GetCenterByID(db, centerID); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Center not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch center")
	}

	enrollments, err := database.GetEnrollmentsByCenter(db, centerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}
	paid, err := database.SumPaymentsByEnrollments(db, centerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to sum payments")
	}

	rows := make([]overviewRow, 0, len(enrollments))
	for _, e := range enrollments {
		snap := services.BuildSnapshot(services.TermsFromEnrollment(e), paid[e.ID])
		rows = append(rows, overviewRow{Enrollment: e, Snapshot: snap})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    rows,
		"count":   len(rows),
	})
}

// GetCenterFeesStatsAPI aggregates a center's billing position: totals and
// per-status enrollment counts, all recomputed from the ledger.
func GetCenterFeesStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	centerID := c.Params("id")
	if _, err := database.GetCenterByID(db, centerID); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Center not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch center")
	}

	enrollments, err := database.GetEnrollmentsByCenter(db, centerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}
	paid, err := database.SumPaymentsByEnrollments(db, centerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to sum payments")
	}

	var totalFees, totalCollected, totalPending, totalDiscount int64
	statusCounts := map[models.PaymentStatus]int{}
	for _, e := range enrollments {
		snap := services.BuildSnapshot(services.TermsFromEnrollment(e), paid[e.ID])
		totalFees += snap.TotalFees
		totalCollected += snap.AmountPaid
		totalPending += snap.AmountPending
		totalDiscount += e.DiscountAmount
		statusCounts[snap.PaymentStatus]++
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_enrollments": len(enrollments),
			"total_fees":        totalFees,
			"total_collected":   totalCollected,
			"total_pending":     totalPending,
			"total_discount":    totalDiscount,
			"paid_count":        statusCounts[models.Paid],
			"partial_count":     statusCounts[models.Partial],
			"unpaid_count":      statusCounts[models.Unpaid],
		},
	})
}

// GetRemindersAPI lists pending installment reminders for staff follow-up.
func GetRemindersAPI(c *fiber.Ctx, db *sql.DB) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if offset < 0 {
		offset = 0
	}

	reminders, err := database.GetPendingReminders(db, limit, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch reminders")
	}
	total, err := database.CountPendingReminders(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count reminders")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    reminders,
		"total":   total,
	})
}

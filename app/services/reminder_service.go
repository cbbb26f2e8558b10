package services

import (
	"database/sql"
	"log"

	"edcenter/app/config"
	"edcenter/app/database"
	"edcenter/app/models"
)

// GenerateInstallmentReminders scans every enrollment and records a reminder
// for each one whose next installment has become due. The unique constraint on
// (enrollment, installment) keeps reruns from duplicating rows.
func GenerateInstallmentReminders(db *sql.DB, billing config.BillingConfig) error {
	log.Println("Starting installment reminder generation...")

	enrollments, err := database.GetAllEnrollments(db)
	if err != nil {
		return err
	}

	count := 0
	for _, enrollment := range enrollments {
		state, _, err := LoadStudentBilling(db, billing, enrollment)
		if err != nil {
			log.Printf("Failed to compute billing for enrollment %s: %v", enrollment.ID, err)
			continue
		}
		if !state.InstallmentDue {
			continue
		}

		reminder := &models.InstallmentReminder{
			EnrollmentID:      enrollment.ID,
			InstallmentNumber: state.Snapshot.InstallmentNumber,
			PresentCount:      state.PresentCount,
			AmountPending:     state.Snapshot.CurrentInstallmentPending,
		}
		created, err := database.CreateInstallmentReminder(db, reminder)
		if err != nil {
			log.Printf("Failed to create reminder for enrollment %s: %v", enrollment.ID, err)
			continue
		}
		if created {
			count++
		}
	}

	log.Printf("Installment reminder generation completed. Created %d records.", count)
	return nil
}

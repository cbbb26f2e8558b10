package services

import (
	"database/sql"
	"log"

	"edcenter/app/config"

	"github.com/robfig/cron/v3"
)

// StartScheduler registers the background jobs and starts the cron runner.
// Returns the runner so main can stop it on shutdown.
func StartScheduler(db *sql.DB, billing config.BillingConfig) *cron.Cron {
	c := cron.New()

	// Nightly at 20:05, after the day's attendance has been marked.
	_, err := c.AddFunc("5 20 * * *", func() {
		if err := GenerateInstallmentReminders(db, billing); err != nil {
			log.Printf("Error generating installment reminders: %v", err)
		}
	})
	if err != nil {
		log.Printf("Failed to register reminder job: %v", err)
	}

	c.Start()
	log.Println("Scheduler started...")
	return c
}

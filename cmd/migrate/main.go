package main

import (
	"log"

	"edcenter/app/config"
	"edcenter/app/database"
)

func main() {
	config.Init()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}
	log.Println("Migrations completed successfully")
}

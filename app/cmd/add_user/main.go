package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"edcenter/app/config"
	"edcenter/app/database"
	"edcenter/app/models"
)

func main() {
	email := flag.String("email", "", "user email (required)")
	password := flag.String("password", "", "initial password (required)")
	firstName := flag.String("first", "", "first name")
	lastName := flag.String("last", "", "last name")
	roles := flag.String("roles", models.RoleAdmin, "comma-separated roles")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(1)
	}

	config.Init()
	db := config.GetDB()
	defer db.Close()

	user := &models.User{
		Email:     *email,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
	}

	roleNames := strings.Split(*roles, ",")
	for i := range roleNames {
		roleNames[i] = strings.TrimSpace(roleNames[i])
	}

	if err := database.CreateUser(db, user, roleNames...); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s %s (%s) roles=%s\n",
		user.FirstName, user.LastName, user.Email, strings.Join(roleNames, ","))
}

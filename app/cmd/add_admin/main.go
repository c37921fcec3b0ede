package main

import (
	"flag"
	"fmt"

	"amyza-admin/app/config"
	"amyza-admin/app/database"
	"amyza-admin/app/models"
	"amyza-admin/app/permissions"
)

func main() {
	email := flag.String("email", "", "email address for the new account")
	password := flag.String("password", "", "initial password")
	firstName := flag.String("first", "Admin", "first name")
	lastName := flag.String("last", "User", "last name")
	role := flag.String("role", string(permissions.RoleSuperAdmin), "role: super_admin, admin or viewer")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_admin -email <email> -password <password> [-first <name>] [-last <name>] [-role <role>]")
		return
	}
	if permissions.ParseRole(*role) == permissions.RoleNone {
		fmt.Printf("Unknown role %q\n", *role)
		return
	}

	config.Init()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}

	if err := database.RunMigrations(db); err != nil {
		fmt.Printf("Error running migrations: %v\n", err)
		return
	}

	admin := &models.AdminProfile{
		Email:     *email,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
		Role:      *role,
	}

	if err := database.CreateAdmin(db, admin); err != nil {
		fmt.Printf("Error creating account: %v\n", err)
		return
	}

	fmt.Printf("Account created: %s %s (%s) role=%s\n", admin.FirstName, admin.LastName, admin.Email, admin.Role)
}

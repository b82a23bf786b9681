package main

import (
	"context"
	"errors"
	"log"

	"smartcampus/internal/auth"
	"smartcampus/internal/config"
	"smartcampus/internal/db"
	"smartcampus/internal/idp"
	"smartcampus/internal/model"
	"smartcampus/internal/repository"
	"smartcampus/internal/service"
)

type seedUser struct {
	userID   string
	name     string
	email    string
	userType string
	password string
	active   bool
}

// The canonical directory accounts of a fresh portal install.
var seedUsers = []seedUser{
	{userID: "admin001", name: "Administrator", email: "admin001@campus.edu", userType: "Admin", password: "Pass123!", active: true},
	{userID: "student001", name: "John Doe", email: "student001@campus.edu", userType: "Student", password: "Pass123!", active: true},
	{userID: "student002", name: "Jane Smith", email: "student002@campus.edu", userType: "Student", password: "Pass123!", active: true},
	{userID: "student003", name: "Mike Johnson", email: "student003@campus.edu", userType: "Student", password: "Pass123!", active: false},
}

var seedMenu = []model.MenuItem{
	{Name: "Veg Thali", Price: 80, Category: "Meals", Description: "Rice, dal, two sabzis and roti", Available: true},
	{Name: "Masala Dosa", Price: 50, Category: "South Indian", Description: "Crispy dosa with potato filling", Available: true},
	{Name: "Cold Coffee", Price: 40, Category: "Beverages", Description: "Iced coffee with milk", Available: true},
	{Name: "Veg Sandwich", Price: 35, Category: "Snacks", Description: "Grilled sandwich with vegetables", Available: true},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&idp.Account{}, &model.MenuItem{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	provider := idp.NewDirectory(gormDB, auth.NewJWTService(cfg.JWTSecret))

	created := 0
	for _, u := range seedUsers {
		acct := &idp.Account{
			UserID:   u.userID,
			Name:     u.name,
			Email:    u.email,
			UserType: u.userType,
		}
		if err := provider.CreateUser(ctx, acct, u.password); err != nil {
			if errors.Is(err, idp.ErrUsernameExists) {
				log.Printf("User %s already exists, skipping", u.userID)
				continue
			}
			log.Fatalf("Failed to create user %s: %v", u.userID, err)
		}
		// active seed accounts get a permanent password, the inactive one
		// stays unconfirmed
		if u.active {
			if err := provider.SetPassword(ctx, u.userID, u.password, true); err != nil {
				log.Fatalf("Failed to set password for %s: %v", u.userID, err)
			}
		}
		created++
	}
	log.Printf("Seeded %d directory users", created)

	menuRepo := repository.NewResourceRepository[model.MenuItem](gormDB, model.MenuItemRatingColumns...)
	menuService := service.NewResourceService[model.MenuItem](menuRepo)

	existing, err := menuRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list menu items: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Menu already has %d items, skipping menu seed", len(existing))
		return
	}

	for i := range seedMenu {
		item := seedMenu[i]
		if _, err := menuService.Create(ctx, &item); err != nil {
			log.Fatalf("Failed to create menu item %q: %v", item.Name, err)
		}
	}
	log.Printf("Seeded %d menu items", len(seedMenu))
}

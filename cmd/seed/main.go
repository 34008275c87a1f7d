package main

import (
	"context"
	"log"

	"gorm.io/gorm"

	"covoit/internal/config"
	"covoit/internal/db"
	"covoit/internal/model"
	"covoit/internal/repository"
)

// Starter data for local runs: one admin, one user whose password is
// still uninitialized (to exercise the initPassword flow), and a few
// agencies usable as trip endpoints.
var seedUsers = []model.User{
	{Nom: "Martin", Prenom: "Claire", Telephone: "0601020304", Mail: "claire.martin@covoit.fr", Role: model.RoleAdmin},
	{Nom: "Durand", Prenom: "Paul", Telephone: "0605060708", Mail: "paul.durand@covoit.fr", Role: model.RoleUser},
}

var seedAgences = []model.Agence{
	{Nom: "Paris Gare de Lyon"},
	{Nom: "Lyon Part-Dieu"},
	{Nom: "Marseille Saint-Charles"},
	{Nom: "Lille Flandres"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Agence{}, &model.Trajet{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	agenceRepo := repository.NewAgenceRepository(gormDB)

	for i := range seedUsers {
		user := seedUsers[i]
		existing, err := userRepo.FindByMail(ctx, user.Mail)
		if err == nil && existing != nil {
			log.Printf("User %s already present, skipping", user.Mail)
			continue
		}
		if err != nil && err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check user %s: %v", user.Mail, err)
		}
		if err := userRepo.Create(ctx, &user); err != nil {
			log.Fatalf("Failed to create user %s: %v", user.Mail, err)
		}
		log.Printf("Created user %s (%s)", user.Mail, user.Role)
	}

	agences, err := agenceRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list agencies: %v", err)
	}
	existing := make(map[string]bool, len(agences))
	for _, agence := range agences {
		existing[agence.Nom] = true
	}
	for i := range seedAgences {
		agence := seedAgences[i]
		if existing[agence.Nom] {
			log.Printf("Agency %q already present, skipping", agence.Nom)
			continue
		}
		if err := agenceRepo.Create(ctx, &agence); err != nil {
			log.Fatalf("Failed to create agency %q: %v", agence.Nom, err)
		}
		log.Printf("Created agency %q", agence.Nom)
	}

	log.Println("Seed completed. Passwords are set through the initPassword page.")
}

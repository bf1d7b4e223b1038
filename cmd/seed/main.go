package main

import (
	"log"
	"os"
	"time"

	"brand-chatbot-be/internal/model"
	"brand-chatbot-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Demo Brand...")

	brands := []struct {
		brand      model.Brand
		recipients []string
	}{
		{
			brand: model.Brand{
				Id:          uuid.New(),
				BrandKey:    "demo",
				DisplayName: "Demo Brand",
				Email:       "hello@demo.example.com",
				Instructions: "You are a friendly assistant for the Demo Brand website. " +
					"Answer product questions and collect contact details when visitors are interested.",
				IsActive:  true,
				CreatedAt: time.Now(),
			},
			recipients: []string{"sales@demo.example.com", "support@demo.example.com"},
		},
	}

	for _, item := range brands {
		var existing model.Brand
		if err := db.Where("brand_key = ?", item.brand.BrandKey).First(&existing).Error; err == nil {
			color.Yellow("Brand '%s' already exists, skipping...", item.brand.BrandKey)
			continue
		}

		if err := db.Create(&item.brand).Error; err != nil {
			color.Red("Error creating brand '%s': %v", item.brand.BrandKey, err)
			continue
		}

		for _, email := range item.recipients {
			recipient := model.BrandRecipient{
				Id:        uuid.New(),
				BrandId:   item.brand.Id,
				Email:     email,
				IsActive:  true,
				CreatedAt: time.Now(),
			}
			if err := db.Create(&recipient).Error; err != nil {
				color.Red("Error creating recipient '%s': %v", email, err)
			}
		}

		color.Green("Created brand: %s (%s) with %d recipients",
			item.brand.DisplayName, item.brand.BrandKey, len(item.recipients))
	}

	color.Cyan("Seeding completed!")
}

package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/Vantage-CRM/vantage-crm-backend/config"
	"github.com/Vantage-CRM/vantage-crm-backend/models"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds a demo tenant with two users and sample filter presets
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("VANTAGE CRM - Demo Data Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := config.CrmGorm.AutoMigrate(
		&models.User{},
		&models.FilterPreset{},
		&models.ActivityLog{},
	); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	log.Println("✓ Schema migrated")

	tenantID := envUUID("SEED_TENANT_ID", "0190a1b2-0000-7000-8000-000000000001")

	alice := seedUser(tenantID, "alice@demo.vantage-crm.io", "Alice Demo")
	bob := seedUser(tenantID, "bob@demo.vantage-crm.io", "Bob Demo")

	seedPreset(models.FilterPreset{
		TenantID:   tenantID,
		EntityType: "users",
		Name:       "Active users",
		FilterConfig: models.FilterConfigMap{
			"logic": "AND",
			"conditions": []map[string]any{
				{"field": "status", "operator": "equals", "value": "active"},
			},
		},
		FilterLogic: "AND",
		IsPublic:    true,
		IsDefault:   true,
		CreatedBy:   alice.ID,
	})

	seedPreset(models.FilterPreset{
		TenantID:   tenantID,
		EntityType: "deals",
		Name:       "Open deals over 10k",
		FilterConfig: models.FilterConfigMap{
			"logic": "AND",
			"conditions": []map[string]any{
				{"field": "stage", "operator": "not_equals", "value": "closed"},
				{"field": "amount", "operator": "gt", "value": 10000},
			},
		},
		FilterLogic: "AND",
		IsPublic:    true,
		CreatedBy:   alice.ID,
	})

	seedPreset(models.FilterPreset{
		TenantID:   tenantID,
		EntityType: "users",
		Name:       "My churned accounts",
		FilterConfig: models.FilterConfigMap{
			"logic": "OR",
			"conditions": []map[string]any{
				{"field": "status", "operator": "equals", "value": "churned"},
				{"field": "status", "operator": "equals", "value": "suspended"},
			},
		},
		FilterLogic: "OR",
		CreatedBy:   bob.ID,
	})

	fmt.Println()
	fmt.Println("✅ Seed complete")
	fmt.Printf("   Tenant: %s\n", tenantID)
	fmt.Printf("   Users:  %s, %s\n", alice.Email, bob.Email)
}

func seedUser(tenantID uuid.UUID, email, name string) models.User {
	var existing models.User
	err := config.CrmGorm.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("✓ User '%s' already exists", email)
		return existing
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Database error: %v", err)
	}

	user := models.User{
		TenantID: tenantID,
		Email:    email,
		Name:     name,
	}
	if err := config.CrmGorm.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create user '%s': %v", email, err)
	}
	log.Printf("✓ Created user '%s'", email)
	return user
}

func seedPreset(preset models.FilterPreset) {
	var existing models.FilterPreset
	err := config.CrmGorm.
		Where("tenant_id = ? AND created_by = ? AND name = ?", preset.TenantID, preset.CreatedBy, preset.Name).
		First(&existing).Error
	if err == nil {
		log.Printf("✓ Preset '%s' already exists", preset.Name)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Database error: %v", err)
	}

	if err := config.CrmGorm.Create(&preset).Error; err != nil {
		log.Fatalf("Failed to create preset '%s': %v", preset.Name, err)
	}
	log.Printf("✓ Created preset '%s'", preset.Name)
}

func envUUID(key, fallback string) uuid.UUID {
	value := os.Getenv(key)
	if value == "" {
		value = fallback
	}
	id, err := uuid.Parse(value)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return id
}

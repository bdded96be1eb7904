package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	CrmDB *pgxpool.Pool

	CrmGorm *gorm.DB
)

func InitDB() {
	initPgx()
	initGORM()
}

func initPgx() {
	// Prefer full URL if provided (Neon/managed Postgres)
	crmURL := os.Getenv("CRM_DB_URL")
	if crmURL == "" {
		// fallback to local
		crmURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/vantage_crm_backend?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ CRM_DB_URL not set, using local default")
	}

	var err error
	CrmDB, err = pgxpool.New(context.Background(), crmURL)
	if err != nil {
		log.Fatalf("❌ Unable to connect to CRM database: %v", err)
	}

	if err = CrmDB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ CRM database ping failed: %v", err)
	}

	log.Println("✅ CRM database connected (pgx)")
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	// Prefer full URL, same as pgx
	var crmDSN string
	if os.Getenv("CRM_DB_URL") != "" {
		crmDSN = os.Getenv("CRM_DB_URL")
	} else {
		crmDSN = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=vantage_crm_backend port=%s sslmode=disable TimeZone=UTC",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ CRM_DB_URL not set, using local GORM default")
	}

	var err error
	CrmGorm, err = gorm.Open(postgres.Open(crmDSN), &gorm.Config{
		Logger:         gormLogger,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true, // duplicate-key → gorm.ErrDuplicatedKey
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to CRM database with GORM: %v", err)
	}
	if sqlDB, err := CrmGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ CRM database connected (GORM)")
}

func CloseDB() {
	if CrmDB != nil {
		CrmDB.Close()
		log.Println("✅ CRM database connection closed (pgx)")
	}

	if CrmGorm != nil {
		sqlDB, _ := CrmGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ CRM database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout (bumped from 5s for Neon cold starts)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

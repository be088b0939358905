package db

import (
	"log"
	"os"
	"toron/internal/models"
	"toron/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=toron port=5432 sslmode=disable TimeZone=Asia/Seoul"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Seed admin account
	seedAdmin()
}

// Migrate runs auto-migration for all entities. Split out from Init so
// tests can migrate an in-memory database.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Topic{},
		&models.Claim{},
		&models.Rebuttal{},
		&models.Evidence{},
		&models.Vote{},
		&models.Report{},
		&models.Notification{},
	)
}

// seedAdmin creates the bootstrap administrator account on first run.
// Topics can only be created by admins, so without this seed a fresh
// deployment has no way to open a debate.
func seedAdmin() {
	var count int64
	DB.Model(&models.User{}).Where("level >= ?", models.LevelAdmin).Count(&count)
	if count > 0 {
		log.Println("Admin account already seeded, skipping")
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe!123"
		log.Println("ADMIN_PASSWORD not set, seeding admin with default password")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Username: "admin",
		Password: hash,
		RealName: "Administrator",
		Level:    models.LevelAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to create admin account: %v", err)
		return
	}
	log.Println("Admin account created successfully")
}

package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"wardrobe/internal/commands"
	"wardrobe/internal/repositories"
	"wardrobe/internal/services"
)

// defaultDBPath is the fixed backing file for the inventory, created in the
// working directory on first use.
const defaultDBPath = "garments.db"

func main() {
	// --- Configuration ---
	// Set up Viper to read configuration from environment variables
	viper.SetDefault("DB_PATH", defaultDBPath)
	viper.AutomaticEnv()

	dbPath := viper.GetString("DB_PATH")

	// --- Open Database ---
	// One connection for the whole process; every operation runs to
	// completion on the calling goroutine before the process exits.
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", dbPath, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to access database connection: %v", err)
	}
	defer sqlDB.Close() // Release the connection at process exit

	// --- Initialize Repository & Schema ---
	garmentRepo := repositories.NewGORMGarmentRepository(db)
	if err := garmentRepo.Init(); err != nil {
		log.Fatalf("Failed to initialize database schema: %v", err)
	}

	// --- Initialize Services ---
	inventoryService := services.NewInventoryService(garmentRepo)
	importService := services.NewImportService(inventoryService)

	// --- Initialize CLI ---
	root := &cobra.Command{
		Use:          "wardrobe",
		Short:        "Garment inventory management",
		Long:         "Track garment inventory: add, update, delete, list and bulk-import records.",
		SilenceUsage: true,
	}
	commands.NewGarmentCommands(inventoryService, importService).Register(root)

	if err := root.Execute(); err != nil {
		sqlDB.Close()
		log.Fatalf("Error: %v", err)
	}
}

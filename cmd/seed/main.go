package main

import (
	"log"
	"os"

	"libshelf/internal/adapters/persistence/models"
	"libshelf/internal/config"

	"github.com/spf13/cobra"
)

var (
	csvPath string
	fresh   bool
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the libshelf database with demo users and books",
	Long: `Seed creates the schema, inserts demo user accounts and imports
books from a Goodreads CSV export. With --fresh all existing tables are
dropped first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		db, err := config.ConnectDatabase(cfg)
		if err != nil {
			return err
		}
		defer config.CloseDatabase()

		if fresh {
			log.Println("🗑️ Dropping existing tables...")
			if err := db.Migrator().DropTable(&models.Loan{}, &models.Book{}, &models.User{}); err != nil {
				return err
			}
		}

		if err := models.AutoMigrate(db); err != nil {
			return err
		}

		return config.NewSeeder(db).Run(csvPath)
	},
}

func init() {
	rootCmd.Flags().StringVar(&csvPath, "csv", "goodreads_library_export.csv", "path to the Goodreads CSV export")
	rootCmd.Flags().BoolVar(&fresh, "fresh", false, "drop all tables before seeding")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// cmd/skillctl/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/skillsharehq/skillshare-hub/internal/config"
	"github.com/skillsharehq/skillshare-hub/internal/model"
	"github.com/skillsharehq/skillshare-hub/internal/repository"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var retentionDays int

func init() {
	sweepCmd.Flags().IntVar(&retentionDays, "days", 30, "Delete notifications older than this many days")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(sweepCmd)
}

var rootCmd = &cobra.Command{
	Use:   "skillctl",
	Short: "skillctl is the SkillShare Hub admin CLI",
	Long:  `skillctl runs schema migrations and maintenance tasks against the SkillShare Hub database.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Run: func(cmd *cobra.Command, args []string) {
		db := openDatabase()

		err := db.AutoMigrate(
			&model.User{},
			&model.Workshop{},
			&model.Enrollment{},
			&model.Payment{},
			&model.Notification{},
			&model.NotificationPreferences{},
			&model.ChatMessage{},
			&model.ChatRead{},
			&model.Review{},
		)
		if err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		fmt.Println("Schema migrated successfully")
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep-notifications",
	Short: "Delete notifications past the retention period",
	Run: func(cmd *cobra.Command, args []string) {
		db := openDatabase()

		repo := repository.NewNotificationRepository(db)
		cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)

		deleted, err := repo.DeleteOlderThan(context.Background(), cutoff)
		if err != nil {
			log.Fatalf("Failed to sweep notifications: %v", err)
		}

		fmt.Printf("Deleted %d notifications older than %s\n", deleted, cutoff.Format(time.RFC3339))
	},
}

func openDatabase() *gorm.DB {
	_ = godotenv.Load()
	cfg := config.Load()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

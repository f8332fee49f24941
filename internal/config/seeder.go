package config

import (
	"bufio"
	"log"
	"math/rand"
	"os"

	"libshelf/internal/adapters/persistence/models"
	"libshelf/internal/pkg/csvline"
	"libshelf/internal/pkg/password"

	"gorm.io/gorm"
)

// Goodreads export column positions
const (
	csvColTitle  = 1
	csvColAuthor = 2
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders. Books come from a Goodreads CSV export; when the
// file is missing a single fallback book is inserted instead.
func (s *Seeder) Run(csvPath string) error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedUsers(); err != nil {
		return err
	}
	if err := s.seedBooks(csvPath); err != nil {
		return err
	}

	log.Println("🎉 Database seeding completed")
	return nil
}

// seedUsers seeds demo accounts for development and testing
func (s *Seeder) seedUsers() error {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("   Users already present, skipping user seed")
		return nil
	}

	demo := []struct {
		name     string
		username string
		plain    string
	}{
		{"Budi Petarung", "budi", "123"},
		{"Siti Jagoan", "siti", "456"},
		{"Udin Jalu", "udin", "789"},
	}

	for _, d := range demo {
		hashed, err := password.Hash(d.plain)
		if err != nil {
			return err
		}
		user := &models.User{
			Name:     d.name,
			Username: d.username,
			Password: hashed,
		}
		if err := s.db.Create(user).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Seeded %d demo users", len(demo))
	return nil
}

// seedBooks imports books from the CSV export. Rows missing title or author
// are skipped silently; seeding is offline and partial data loss is fine.
func (s *Seeder) seedBooks(csvPath string) error {
	file, err := os.Open(csvPath)
	if err != nil {
		log.Printf("⚠️ CSV file not found (%s), inserting fallback book", csvPath)
		return s.db.Create(&models.Book{
			Title:  "Cara Merawat Ayam Jago",
			Author: "Bapak Jago",
			Stock:  2,
		}).Error
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	successCount := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			continue // header
		}

		columns := csvline.Parse(scanner.Text())
		if len(columns) <= csvColAuthor {
			continue
		}

		title := columns[csvColTitle]
		author := columns[csvColAuthor]
		if title == "" || author == "" {
			continue
		}

		book := &models.Book{
			Title:  title,
			Author: author,
			Stock:  rand.Intn(5) + 1,
		}
		if err := s.db.Create(book).Error; err != nil {
			return err
		}
		successCount++
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	log.Printf("✅ Imported %d books from CSV", successCount)
	return nil
}

// Seeds the database with the system-owned starter assets. Safe to run
// repeatedly: rows that already exist are left alone.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/mylanyard/server/data"
	"github.com/mylanyard/server/internal/config"
	"github.com/mylanyard/server/internal/database"
	"github.com/mylanyard/server/internal/identity"
	"github.com/mylanyard/server/internal/models"
	"gorm.io/gorm"
)

type seedCard struct {
	Text string   `json:"text"`
	Icon string   `json:"icon"`
	Tags []string `json:"tags"`
}

type seedIcon struct {
	Name     string   `json:"name"`
	ImageURL string   `json:"imageUrl"`
	Tags     []string `json:"tags"`
}

type seedTag struct {
	Name string `json:"name"`
}

type seedLanyard struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Tags        []string   `json:"tags"`
	Cards       []seedCard `json:"cards"`
}

type seedFile struct {
	Icons    []seedIcon    `json:"icons"`
	Tags     []seedTag     `json:"tags"`
	Lanyards []seedLanyard `json:"lanyards"`
}

// seeder resolves fixture names to row ids while applying one seed file.
type seeder struct {
	tx          *gorm.DB
	tagsByName  map[string]uint64
	iconsByName map[string]uint64
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var seed seedFile
	if err := json.Unmarshal(data.SystemAssets, &seed); err != nil {
		log.Fatalf("Failed to parse embedded seed data: %v", err)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		s := &seeder{
			tx:          tx,
			tagsByName:  make(map[string]uint64),
			iconsByName: make(map[string]uint64),
		}
		return s.apply(seed)
	}); err != nil {
		log.Fatalf("Failed to seed system assets: %v", err)
	}

	log.Println("System assets seeded")
}

func (s *seeder) apply(seed seedFile) error {
	for _, t := range seed.Tags {
		tag := models.Tag{Name: t.Name, AuthorID: identity.SystemStorageID}
		if err := s.tx.Where(models.Tag{Name: t.Name, AuthorID: identity.SystemStorageID}).
			FirstOrCreate(&tag).Error; err != nil {
			return fmt.Errorf("tag %q: %w", t.Name, err)
		}
		s.tagsByName[t.Name] = tag.ID
	}

	for _, i := range seed.Icons {
		icon := models.Icon{
			Name:     i.Name,
			ImageURL: i.ImageURL,
			AuthorID: identity.SystemStorageID,
		}
		if err := s.tx.Where(models.Icon{Name: i.Name, AuthorID: identity.SystemStorageID}).
			FirstOrCreate(&icon).Error; err != nil {
			return fmt.Errorf("icon %q: %w", i.Name, err)
		}
		s.iconsByName[i.Name] = icon.ID

		if err := s.attach(i.Tags, models.TaggingTarget{Kind: models.TargetIcon, ID: icon.ID}); err != nil {
			return fmt.Errorf("icon %q: %w", i.Name, err)
		}
	}

	for _, l := range seed.Lanyards {
		lanyard := models.Lanyard{
			Name:        l.Name,
			Description: l.Description,
			AuthorID:    identity.SystemStorageID,
		}
		if err := s.tx.Where(models.Lanyard{Name: l.Name, AuthorID: identity.SystemStorageID}).
			FirstOrCreate(&lanyard).Error; err != nil {
			return fmt.Errorf("lanyard %q: %w", l.Name, err)
		}
		if err := s.attach(l.Tags, models.TaggingTarget{Kind: models.TargetLanyard, ID: lanyard.ID}); err != nil {
			return fmt.Errorf("lanyard %q: %w", l.Name, err)
		}

		for _, c := range l.Cards {
			iconID, ok := s.iconsByName[c.Icon]
			if !ok {
				return fmt.Errorf("card %q references unknown icon %q", c.Text, c.Icon)
			}

			card := models.Card{
				Text:      c.Text,
				IconID:    iconID,
				LanyardID: &lanyard.ID,
				AuthorID:  identity.SystemStorageID,
			}
			if err := s.tx.Where(models.Card{Text: c.Text, AuthorID: identity.SystemStorageID}).
				FirstOrCreate(&card).Error; err != nil {
				return fmt.Errorf("card %q: %w", c.Text, err)
			}
			if err := s.attach(c.Tags, models.TaggingTarget{Kind: models.TargetCard, ID: card.ID}); err != nil {
				return fmt.Errorf("card %q: %w", c.Text, err)
			}
		}
	}

	return nil
}

// attach creates a system-owned tagging per named tag, skipping pairs that
// already exist.
func (s *seeder) attach(tagNames []string, target models.TaggingTarget) error {
	for _, name := range tagNames {
		tagID, ok := s.tagsByName[name]
		if !ok {
			return fmt.Errorf("unknown tag %q", name)
		}

		tagging, err := models.NewTagging(tagID, target, identity.SystemStorageID)
		if err != nil {
			return err
		}

		var existing models.Tagging
		err = s.tx.Where(tagging).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := s.tx.Create(tagging).Error; err != nil {
			return err
		}
	}
	return nil
}

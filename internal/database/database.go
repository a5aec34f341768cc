// internal/database/database.go
package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/atelier-backend/internal/config"
	"github.com/javajoker/atelier-backend/internal/models"
	"github.com/javajoker/atelier-backend/internal/store"
)

// Initialize prepares the data directory and returns a store over it.
func Initialize(cfg config.StorageConfig) (*store.DocumentStore, error) {
	dataDir, err := filepath.Abs(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data dir: %w", err)
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	// Probe writability now rather than on the first admin edit.
	probe, err := os.CreateTemp(dataDir, ".probe-*")
	if err != nil {
		return nil, fmt.Errorf("data dir %s is not writable: %w", dataDir, err)
	}
	probe.Close()
	os.Remove(probe.Name())

	logrus.WithField("data_dir", dataDir).Info("Document store ready")
	return store.NewDocumentStore(dataDir), nil
}

// SeedInitialData writes default documents for collections that have no
// file yet. Existing files are never touched. The messages inbox is left
// absent; it is created by the first submission.
func SeedInitialData(docs *store.DocumentStore, adminPassword string) error {
	logrus.Info("Seeding initial data...")

	defaults := []struct {
		collection models.Collection
		document   interface{}
	}{
		{models.CollectionProducts, []models.Product{}},
		{models.CollectionHome, DefaultHomeContent()},
		{models.CollectionContact, DefaultContactInfo()},
	}

	for _, d := range defaults {
		seeded, err := docs.Seed(d.collection, d.document)
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", d.collection, err)
		}
		if seeded {
			logrus.WithField("collection", d.collection).Info("Default document created")
		}
	}

	if adminPassword == "" {
		if !docs.Exists(models.CollectionAdmin) {
			logrus.Warn("No admin document and ADMIN_PASSWORD is unset; admin login is unavailable until a password is set")
		}
	} else {
		seeded, err := docs.Seed(models.CollectionAdmin, models.AdminCredential{Password: adminPassword})
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", models.CollectionAdmin, err)
		}
		if seeded {
			logrus.Info("Admin password initialized from ADMIN_PASSWORD")
		}
	}

	logrus.Info("Initial data seeding completed")
	return nil
}

func DefaultHomeContent() models.HomeContent {
	return models.HomeContent{
		Hero: models.HeroSection{
			H1:   "Tailored to you",
			H1Fa: "دوخته شده برای شما",
			P:    "Handmade suits, shirts and fine fabrics.",
			PFa:  "کت و شلوار، پیراهن و پارچه‌های ممتاز دست‌دوز.",
		},
		About: models.TextSection{
			Title:   "About us",
			TitleFa: "درباره ما",
		},
		Mission: models.TextSection{
			Title:   "Our mission",
			TitleFa: "ماموریت ما",
		},
		Vision: models.TextSection{
			Title:   "Our vision",
			TitleFa: "چشم‌انداز ما",
		},
	}
}

func DefaultContactInfo() models.ContactInfo {
	return models.ContactInfo{
		Email:     "info@example.com",
		Phone:     "+98 21 0000 0000",
		Address:   "Tehran, Iran",
		AddressFa: "تهران، ایران",
	}
}

// internal/services/content_service.go
package services

import (
	"github.com/javajoker/atelier-backend/internal/models"
	"github.com/javajoker/atelier-backend/internal/store"
)

// ContentService reads and replaces the singleton documents (home page
// copy and contact details). Both are expected to exist; a missing file is
// a read error.
type ContentService struct {
	docs *store.DocumentStore
}

func NewContentService(docs *store.DocumentStore) *ContentService {
	return &ContentService{docs: docs}
}

func (s *ContentService) GetHomeContent() (*models.HomeContent, error) {
	var home models.HomeContent
	if err := s.docs.Load(models.CollectionHome, &home); err != nil {
		return nil, err
	}
	return &home, nil
}

// ReplaceHomeContent overwrites the home document wholesale.
func (s *ContentService) ReplaceHomeContent(home *models.HomeContent) (*models.HomeContent, error) {
	if err := s.replace(models.CollectionHome, home); err != nil {
		return nil, err
	}
	return home, nil
}

func (s *ContentService) GetContactInfo() (*models.ContactInfo, error) {
	var contact models.ContactInfo
	if err := s.docs.Load(models.CollectionContact, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// ReplaceContactInfo overwrites the contact document wholesale.
func (s *ContentService) ReplaceContactInfo(contact *models.ContactInfo) (*models.ContactInfo, error) {
	if err := s.replace(models.CollectionContact, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContentService) replace(collection models.Collection, doc interface{}) error {
	return s.docs.Mutate(collection, func() error {
		return s.docs.Store(collection, doc)
	})
}

// internal/services/message_service.go
package services

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/atelier-backend/internal/models"
	"github.com/javajoker/atelier-backend/internal/store"
	"github.com/javajoker/atelier-backend/internal/utils"
)

// MessageService is the contact form inbox. The public side only appends;
// admins list and delete.
type MessageService struct {
	docs     *store.DocumentStore
	notifier MessageNotifier
	now      func() time.Time
	newID    func() string
}

type SubmitMessageRequest struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"notblank"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"notblank"`
}

func NewMessageService(docs *store.DocumentStore) *MessageService {
	return &MessageService{
		docs:  docs,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// SetNotifier registers n to be told about each accepted message.
func (s *MessageService) SetNotifier(n MessageNotifier) {
	s.notifier = n
}

// SubmitMessage trims every field, rejects blank name, email or message,
// and appends the stamped message. A missing or unreadable inbox is treated
// as empty.
func (s *MessageService) SubmitMessage(req *SubmitMessageRequest) (*models.Message, error) {
	trimmed := SubmitMessageRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Message: strings.TrimSpace(req.Message),
	}

	if err := utils.ValidateStruct(&trimmed); err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrValidation, err)
	}

	message := models.Message{
		ID:        s.newID(),
		Name:      trimmed.Name,
		Email:     trimmed.Email,
		Phone:     trimmed.Phone,
		Message:   trimmed.Message,
		CreatedAt: models.FormatTimestamp(s.now()),
	}

	err := s.docs.Mutate(models.CollectionMessages, func() error {
		var messages []models.Message
		if err := s.docs.Load(models.CollectionMessages, &messages); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logrus.WithError(err).Warn("Failed to read existing messages, starting a new inbox")
			}
			messages = nil
		}

		messages = append(messages, message)
		return s.docs.Store(models.CollectionMessages, messages)
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.MessageReceived(message)
	}

	return &message, nil
}

// ListMessages returns the inbox newest first. Equal timestamps keep their
// stored order. A missing inbox is empty, not an error.
func (s *MessageService) ListMessages() ([]models.Message, error) {
	messages := []models.Message{}
	if !s.docs.Exists(models.CollectionMessages) {
		return messages, nil
	}

	if err := s.docs.Load(models.CollectionMessages, &messages); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Message{}, nil
		}
		return nil, err
	}
	if messages == nil {
		messages = []models.Message{}
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedTime().After(messages[j].CreatedTime())
	})
	return messages, nil
}

// DeleteMessage removes the message with id. It fails with ErrNotFound
// only when the inbox file does not exist; an unknown id is a no-op.
func (s *MessageService) DeleteMessage(id string) error {
	return s.docs.Mutate(models.CollectionMessages, func() error {
		if !s.docs.Exists(models.CollectionMessages) {
			return fmt.Errorf("messages: %w", store.ErrNotFound)
		}

		var messages []models.Message
		if err := s.docs.Load(models.CollectionMessages, &messages); err != nil {
			return err
		}

		filtered := make([]models.Message, 0, len(messages))
		for _, message := range messages {
			if message.ID != id {
				filtered = append(filtered, message)
			}
		}

		return s.docs.Store(models.CollectionMessages, filtered)
	})
}

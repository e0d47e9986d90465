package services

import (
	"log"

	"portfolio-site/models"

	"gorm.io/gorm"
)

type MessageService struct {
	DB       *gorm.DB
	Notifier Notifier
}

func NewMessageService(db *gorm.DB, notifier Notifier) *MessageService {
	return &MessageService{DB: db, Notifier: notifier}
}

// ----------------------------------------------------
// CREATE (public contact form)
// ----------------------------------------------------
func (s *MessageService) Create(msg *models.Message) error {
	if err := s.DB.Create(msg).Error; err != nil {
		log.Printf("❌ MessageService.Create error: %v", err)
		return err
	}
	log.Printf("✅ Message %d received from %s", msg.ID, msg.Email)

	if s.Notifier != nil {
		go s.Notifier.MessageReceived(*msg)
	}
	return nil
}

// GetAll returns messages newest first.
func (s *MessageService) GetAll() ([]models.Message, error) {
	var messages []models.Message
	err := s.DB.Order("created_at DESC, id DESC").Find(&messages).Error
	return messages, err
}

// Delete removes a message. Unknown ids are not an error.
func (s *MessageService) Delete(id uint) error {
	return s.DB.Delete(&models.Message{}, id).Error
}

package services

import (
	"errors"
	"log"

	"portfolio-site/models"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

type FeedbackService struct {
	DB       *gorm.DB
	Notifier Notifier
}

func NewFeedbackService(db *gorm.DB, notifier Notifier) *FeedbackService {
	return &FeedbackService{DB: db, Notifier: notifier}
}

func (s *FeedbackService) Create(fb *models.Feedback) error {
	if err := s.DB.Create(fb).Error; err != nil {
		log.Printf("❌ FeedbackService.Create error: %v", err)
		return err
	}
	log.Printf("✅ Feedback %d received (rating=%d notify=%v)", fb.ID, fb.Rating, fb.Notify)

	if s.Notifier != nil {
		go s.Notifier.FeedbackReceived(*fb)
	}
	return nil
}

// GetAll returns feedback newest first.
func (s *FeedbackService) GetAll() ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	err := s.DB.Order("created_at DESC, id DESC").Find(&feedbacks).Error
	return feedbacks, err
}

func (s *FeedbackService) CountUnread() (int64, error) {
	var n int64
	err := s.DB.Model(&models.Feedback{}).Where("is_read = ?", false).Count(&n).Error
	return n, err
}

// ToggleRead flips is_read and returns the new value.
func (s *FeedbackService) ToggleRead(id uint) (bool, error) {
	var fb models.Feedback
	err := s.DB.First(&fb, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, err
	}

	next := !fb.IsRead
	if err := s.DB.Model(&fb).Update("is_read", next).Error; err != nil {
		return false, err
	}
	return next, nil
}

func (s *FeedbackService) Delete(id uint) error {
	return s.DB.Delete(&models.Feedback{}, id).Error
}

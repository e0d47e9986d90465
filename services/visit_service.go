package services

import (
	"time"

	"portfolio-site/models"

	"gorm.io/gorm"
)

type VisitService struct {
	DB *gorm.DB
}

func NewVisitService(db *gorm.DB) *VisitService {
	return &VisitService{DB: db}
}

// Track appends one visit for ip dated at now's calendar day.
func (s *VisitService) Track(ip string, now time.Time) error {
	visit := models.Visit{IPAddress: ip, VisitDate: models.VisitDay(now)}
	return s.DB.Create(&visit).Error
}

// Stats counts all visits, today's, and those within the last 7 and 30 days.
func (s *VisitService) Stats(now time.Time) (models.VisitStats, error) {
	var stats models.VisitStats
	today := models.VisitDay(now)
	weekAgo := models.VisitDay(now.AddDate(0, 0, -7))
	monthAgo := models.VisitDay(now.AddDate(0, 0, -30))

	if err := s.DB.Model(&models.Visit{}).Count(&stats.Total).Error; err != nil {
		return stats, err
	}
	if err := s.DB.Model(&models.Visit{}).Where("visit_date = ?", today).Count(&stats.Today).Error; err != nil {
		return stats, err
	}
	if err := s.DB.Model(&models.Visit{}).Where("visit_date >= ?", weekAgo).Count(&stats.Week).Error; err != nil {
		return stats, err
	}
	if err := s.DB.Model(&models.Visit{}).Where("visit_date >= ?", monthAgo).Count(&stats.Month).Error; err != nil {
		return stats, err
	}
	return stats, nil
}

package models

import "time"

const DefaultFeedbackRating = 5

// Feedback is a public feedback submission shown to the admin as a notification.
type Feedback struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Rating    int       `gorm:"not null" json:"rating"`
	Message   string    `gorm:"type:text" json:"message"`
	Notify    bool      `gorm:"default:false" json:"notify"`
	IsRead    bool      `gorm:"column:is_read;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Feedback) TableName() string { return "feedback" }

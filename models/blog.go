package models

import "time"

// Blog is a blog post. Image follows the same lifecycle as Project.Image.
type Blog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Excerpt   string    `gorm:"type:text" json:"excerpt"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Image     string    `gorm:"size:255" json:"image"`
	Link      string    `gorm:"size:512" json:"link"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

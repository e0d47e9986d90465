package models

// Project is a portfolio entry. Image is a filename inside the projects
// upload directory, or empty when no image was attached.
type Project struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Image       string `gorm:"size:255;not null;default:''" json:"image"`
	Link        string `gorm:"size:512;not null" json:"link"`
}

package models

// Admin is an account allowed into the admin area.
type Admin struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never returned in JSON
}

func (Admin) TableName() string { return "admin" }

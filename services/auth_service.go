package services

import (
	"errors"
	"fmt"
	"log"

	"portfolio-site/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// compared against when the username is unknown, so both paths pay for one bcrypt check
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("portfolio-dummy-password"), bcrypt.DefaultCost)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Authenticate returns the admin whose username and password match.
func (s *AuthService) Authenticate(username, password string) (*models.Admin, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var admin models.Admin
	err := s.DB.Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		log.Printf("⚠️ Login failed for unknown user %q", username)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		log.Printf("⚠️ Login failed for %q", username)
		return nil, ErrInvalidCredentials
	}
	log.Printf("✅ Admin %q logged in", username)
	return &admin, nil
}

package services

import (
	"errors"
	"log"
	"mime/multipart"

	"portfolio-site/models"

	"gorm.io/gorm"
)

type BlogService struct {
	DB    *gorm.DB
	Files *FileStore
}

func NewBlogService(db *gorm.DB, files *FileStore) *BlogService {
	return &BlogService{DB: db, Files: files}
}

// GetAll returns posts newest first.
func (s *BlogService) GetAll() ([]models.Blog, error) {
	var posts []models.Blog
	err := s.DB.Order("created_at DESC, id DESC").Find(&posts).Error
	return posts, err
}

// GetByID returns ErrNotFound when the post does not exist.
func (s *BlogService) GetByID(id uint) (*models.Blog, error) {
	var post models.Blog
	err := s.DB.First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *BlogService) Create(post *models.Blog, image *multipart.FileHeader) error {
	filename, err := s.Files.SaveImage(s.Files.BlogsDir, image)
	if err != nil {
		log.Printf("❌ BlogService.Create save image: %v", err)
		return err
	}
	post.Image = filename

	if err := s.DB.Create(post).Error; err != nil {
		return err
	}
	log.Printf("✅ Blog post %d created (image=%q)", post.ID, post.Image)
	return nil
}

// Delete removes the image file (best-effort) and then the row.
func (s *BlogService) Delete(id uint) error {
	post, err := s.GetByID(id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if post.Image != "" && !s.Files.RemoveImage(s.Files.BlogsDir, post.Image) {
		log.Printf("⚠️ Blog %d image %q was not removed", post.ID, post.Image)
	}
	return s.DB.Delete(&models.Blog{}, id).Error
}

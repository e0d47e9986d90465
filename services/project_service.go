package services

import (
	"errors"
	"log"
	"mime/multipart"

	"portfolio-site/models"

	"gorm.io/gorm"
)

type ProjectService struct {
	DB    *gorm.DB
	Files *FileStore
}

func NewProjectService(db *gorm.DB, files *FileStore) *ProjectService {
	return &ProjectService{DB: db, Files: files}
}

func (s *ProjectService) GetAll() ([]models.Project, error) {
	var projects []models.Project
	err := s.DB.Find(&projects).Error
	return projects, err
}

// Create stores the optional image and inserts the project row.
func (s *ProjectService) Create(project *models.Project, image *multipart.FileHeader) error {
	filename, err := s.Files.SaveImage(s.Files.ProjectsDir, image)
	if err != nil {
		log.Printf("❌ ProjectService.Create save image: %v", err)
		return err
	}
	project.Image = filename

	if err := s.DB.Create(project).Error; err != nil {
		return err
	}
	log.Printf("✅ Project %d created (image=%q)", project.ID, project.Image)
	return nil
}

// Delete removes the image file (best-effort) and then the row.
func (s *ProjectService) Delete(id uint) error {
	var project models.Project
	err := s.DB.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if project.Image != "" && !s.Files.RemoveImage(s.Files.ProjectsDir, project.Image) {
		log.Printf("⚠️ Project %d image %q was not removed", project.ID, project.Image)
	}
	return s.DB.Delete(&models.Project{}, id).Error
}

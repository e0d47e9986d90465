package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const ResumeFilename = "resume.pdf"

// FileStore owns the upload directories for project images, blog images and
// the resume.
type FileStore struct {
	ProjectsDir string
	BlogsDir    string
	ResumeDir   string
}

func NewFileStore(projectsDir, blogsDir, resumeDir string) *FileStore {
	return &FileStore{ProjectsDir: projectsDir, BlogsDir: blogsDir, ResumeDir: resumeDir}
}

// EnsureDirs creates every upload directory that does not exist yet.
func (s *FileStore) EnsureDirs() error {
	for _, dir := range []string{s.ProjectsDir, s.BlogsDir, s.ResumeDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	return nil
}

// SaveImage writes an uploaded image under dir with a collision-resistant
// name and returns that name. A nil header saves nothing and returns "".
func (s *FileStore) SaveImage(dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", nil
	}

	filename := uniqueFilename(fh.Filename)
	if err := saveUpload(fh, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

// RemoveImage deletes filename from dir. It is best-effort: a missing file or
// an OS error is reported as false and otherwise ignored.
func (s *FileStore) RemoveImage(dir, filename string) bool {
	if filename == "" {
		return false
	}
	// stored names never contain separators; refuse anything that would escape dir
	if filename != filepath.Base(filename) {
		return false
	}
	if err := os.Remove(filepath.Join(dir, filename)); err != nil {
		return false
	}
	return true
}

// SaveResume overwrites the single resume file.
func (s *FileStore) SaveResume(fh *multipart.FileHeader) error {
	return saveUpload(fh, s.ResumePath())
}

func (s *FileStore) ResumePath() string {
	return filepath.Join(s.ResumeDir, ResumeFilename)
}

func saveUpload(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func uniqueFilename(original string) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	name := SanitizeFilename(original)
	if name == "" {
		return token
	}
	return token + "_" + name
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// SanitizeFilename reduces an uploaded filename to a safe ASCII base name:
// path components dropped, whitespace turned into underscores, anything else
// outside [A-Za-z0-9_.-] removed, leading dots and underscores trimmed.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

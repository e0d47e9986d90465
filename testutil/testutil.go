// Package testutil provides helpers shared by package tests.
package testutil

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-site/config"
)

// SetupTestDB opens a private in-memory SQLite database with every table
// migrated. It is closed when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(uuid.NewString(), "-", "")
	cfg := &config.Config{
		DBDriver:            config.DriverSQLite,
		DatabaseURL:         fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		DBLogLevel:          "silent",
		SQLiteBusyTimeoutMS: 5000,
	}

	db, err := config.OpenDatabase(cfg)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// FileField is one file part of a multipart form.
type FileField struct {
	Field    string
	Filename string
	Content  []byte
}

// MultipartBody encodes fields and files and returns the body with its
// content type.
func MultipartBody(t *testing.T, fields map[string]string, files ...FileField) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(f.Content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, w.FormDataContentType()
}

// FileHeader builds a *multipart.FileHeader the way a handler would see it.
func FileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body, contentType := MultipartBody(t, nil, FileField{Field: field, Filename: filename, Content: content})
	req, err := http.NewRequest(http.MethodPost, "/", body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", contentType)
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}
	headers := req.MultipartForm.File[field]
	if len(headers) == 0 {
		t.Fatalf("no file for field %q", field)
	}
	return headers[0]
}

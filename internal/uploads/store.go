package uploads

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/divi1127/BackendDeepF/internal/constants"
	"github.com/divi1127/BackendDeepF/internal/utils"
)

// Store persists uploaded resume files on local disk. Stored filenames
// are the upload time in milliseconds plus the original extension, so
// they are safe to serve statically without sanitization.
type Store struct {
	dir string
}

// NewStore ensures the upload directory exists and returns a Store over it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string { return s.dir }

// allowedExtension matches the extension case-insensitively against the
// resume whitelist.
func allowedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, allowed := range constants.AllowedResumeExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// SaveResume reads the named multipart file field from the request and
// writes it under the store directory. The caller must have wrapped
// r.Body in http.MaxBytesReader so oversized uploads fail mid-read.
//
// Returns the stored filename, or one of utils.ErrMissingFile,
// utils.ErrInvalidFileType, utils.ErrFileTooLarge.
func (s *Store) SaveResume(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", utils.ErrMissingFile
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", utils.ErrFileTooLarge
		}
		return "", err
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	if !allowedExtension(ext) {
		return "", utils.ErrInvalidFileType
	}

	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), strings.ToLower(ext))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(dst.Name())
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", utils.ErrFileTooLarge
		}
		return "", err
	}
	return name, nil
}

// URLFor returns the public path a stored file is served from.
func URLFor(filename string) string {
	return constants.UploadsURLPrefix + filename
}

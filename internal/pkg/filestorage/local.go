package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/e3mc/bschool-admin/internal/app/models"
	"github.com/e3mc/bschool-admin/internal/pkg/apperrors"
	"github.com/e3mc/bschool-admin/internal/pkg/logger"
)

// Limits holds the configured upload ceilings in bytes.
type Limits struct {
	MaxImageSize    int64
	MaxDocumentSize int64
}

// DefaultLimits applies when config leaves a ceiling unset: 3MB images,
// 25MB documents.
var DefaultLimits = Limits{
	MaxImageSize:    3 << 20,
	MaxDocumentSize: 25 << 20,
}

var documentMimes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

// SanitizeFilename reduces an original filename to a safe charset.
func SanitizeFilename(name string) string {
	return unsafeChars.ReplaceAllString(filepath.Base(name), "_")
}

// LocalStorage writes uploads under a base directory served statically at
// a public URL prefix.
type LocalStorage struct {
	basePath     string
	publicPrefix string
	limits       Limits
}

// NewLocalStorage ensures the base directory exists and returns a storage
// rooted there. publicPrefix is the URL path the directory is served
// under, e.g. "/uploads".
func NewLocalStorage(basePath, publicPrefix string, limits Limits) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	if limits.MaxImageSize <= 0 {
		limits.MaxImageSize = DefaultLimits.MaxImageSize
	}
	if limits.MaxDocumentSize <= 0 {
		limits.MaxDocumentSize = DefaultLimits.MaxDocumentSize
	}
	return &LocalStorage{
		basePath:     basePath,
		publicPrefix: strings.TrimRight(publicPrefix, "/"),
		limits:       limits,
	}, nil
}

func (ls *LocalStorage) validate(fileHeader *multipart.FileHeader, kind Kind) error {
	mimeType := fileHeader.Header.Get("Content-Type")

	var limit int64
	switch kind {
	case KindImage:
		limit = ls.limits.MaxImageSize
		if !strings.HasPrefix(mimeType, "image/") {
			return apperrors.NewFileError(apperrors.ErrFileTypeNotAllowed,
				fmt.Sprintf("only images are allowed, got %s for %s", mimeType, fileHeader.Filename))
		}
	case KindDocument:
		limit = ls.limits.MaxDocumentSize
		if !documentMimes[mimeType] {
			return apperrors.NewFileError(apperrors.ErrFileTypeNotAllowed,
				fmt.Sprintf("file type %s is not allowed for %s", mimeType, fileHeader.Filename))
		}
	default:
		limit = ls.limits.MaxDocumentSize
	}

	if fileHeader.Size > limit {
		return apperrors.NewFileError(apperrors.ErrFileTooLarge,
			fmt.Sprintf("%s exceeds the %dMB limit", fileHeader.Filename, limit>>20))
	}
	return nil
}

// Save validates and persists one uploaded file. The stored name is
// unixMillis + a short random suffix + the sanitized original name, so
// concurrent saves never collide.
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader, kind Kind, subDir string) (models.FileMeta, error) {
	if err := ls.validate(fileHeader, kind); err != nil {
		return models.FileMeta{}, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.FileMeta{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dir := ls.basePath
	if subDir != "" {
		dir = filepath.Join(ls.basePath, subDir)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return models.FileMeta{}, fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	storedName := fmt.Sprintf("%d-%s-%s",
		time.Now().UnixMilli(),
		uuid.New().String()[:8],
		SanitizeFilename(fileHeader.Filename))
	dstPath := filepath.Join(dir, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		return models.FileMeta{}, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return models.FileMeta{}, fmt.Errorf("failed to save file content: %w", err)
	}

	publicPath := path.Join(ls.publicPrefix, subDir, storedName)
	logger.Info().
		Str("filename", fileHeader.Filename).
		Str("storedAs", storedName).
		Str("path", publicPath).
		Msg("File saved")

	return models.FileMeta{
		OriginalName: fileHeader.Filename,
		StoredName:   storedName,
		Path:         publicPath,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
	}, nil
}

// Remove deletes a stored file by its public path. Deletion is idempotent:
// a missing file is treated as already deleted.
func (ls *LocalStorage) Remove(publicPath string) error {
	if publicPath == "" {
		return nil
	}

	rel := strings.TrimPrefix(publicPath, ls.publicPrefix)
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" || strings.Contains(rel, "..") {
		return fmt.Errorf("invalid file path: %s", publicPath)
	}

	physicalPath := filepath.Join(ls.basePath, filepath.FromSlash(rel))
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}
	if err := os.Remove(physicalPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// RemoveAll deletes every referenced file, collecting a warning per
// failure. File cleanup never fails the surrounding document delete.
func (ls *LocalStorage) RemoveAll(files []models.FileMeta) []string {
	var warnings []string
	for _, f := range files {
		if err := ls.Remove(f.Path); err != nil {
			logger.Warn().Err(err).Str("path", f.Path).Msg("Failed to delete file")
			warnings = append(warnings, fmt.Sprintf("could not delete %s: %v", f.Path, err))
		}
	}
	return warnings
}

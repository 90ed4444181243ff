package filestorage

import (
	"mime/multipart"

	"github.com/e3mc/bschool-admin/internal/app/models"
)

// Kind selects the validation rules and target subdirectory for an upload.
type Kind string

const (
	// KindImage is an image-only slot (partner images, blog/event images,
	// student photo).
	KindImage Kind = "image"
	// KindDocument is a document-only slot (student doc file, form
	// identification and resume lists).
	KindDocument Kind = "document"
	// KindAny accepts any mime type under the document size cap (the
	// remaining form categories).
	KindAny Kind = "any"
)

// Storage persists uploaded payloads and removes them again on document
// deletion. Implementations must generate collision-free stored names so
// concurrent writers never conflict.
type Storage interface {
	// Save validates and writes one uploaded file into subDir, returning
	// its metadata record.
	Save(fileHeader *multipart.FileHeader, kind Kind, subDir string) (models.FileMeta, error)
	// Remove deletes a previously stored file by its public path. Missing
	// files are not an error.
	Remove(publicPath string) error
	// RemoveAll best-effort deletes every referenced file and returns one
	// warning message per failure. It never returns an error.
	RemoveAll(files []models.FileMeta) []string
}

package filestorage

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e3mc/bschool-admin/internal/app/models"
	"github.com/e3mc/bschool-admin/internal/pkg/apperrors"
)

func newFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "report_final_v2.pdf", SanitizeFilename("report final(v2).pdf"))
	assert.Equal(t, "passwd", SanitizeFilename("../../etc/passwd"))
	assert.Equal(t, "plain-name.txt", SanitizeFilename("plain-name.txt"))
}

func TestSaveAndRemoveImage(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base, "/uploads", DefaultLimits)
	require.NoError(t, err)

	fh := newFileHeader(t, "campus photo.png", "image/png", []byte("png-bytes"))
	meta, err := storage.Save(fh, KindImage, "images")
	require.NoError(t, err)

	assert.Equal(t, "campus photo.png", meta.OriginalName)
	assert.Equal(t, "image/png", meta.MimeType)
	assert.Equal(t, int64(len("png-bytes")), meta.Size)
	assert.True(t, strings.HasPrefix(meta.Path, "/uploads/images/"))
	assert.True(t, strings.HasSuffix(meta.StoredName, "campus_photo.png"))

	onDisk := filepath.Join(base, "images", meta.StoredName)
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	require.NoError(t, storage.Remove(meta.Path))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))

	// idempotent
	require.NoError(t, storage.Remove(meta.Path))
}

func TestSaveRejectsNonImageForImageSlot(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads", DefaultLimits)
	require.NoError(t, err)

	fh := newFileHeader(t, "resume.pdf", "application/pdf", []byte("%PDF"))
	_, err = storage.Save(fh, KindImage, "images")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrFileTypeNotAllowed)
}

func TestSaveRejectsUnknownDocumentType(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads", DefaultLimits)
	require.NoError(t, err)

	fh := newFileHeader(t, "movie.mp4", "video/mp4", []byte("mp4"))
	_, err = storage.Save(fh, KindDocument, "docs")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrFileTypeNotAllowed)
}

func TestSaveRejectsOversizeFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads", Limits{
		MaxImageSize:    4,
		MaxDocumentSize: 4,
	})
	require.NoError(t, err)

	fh := newFileHeader(t, "big.png", "image/png", []byte("larger than four bytes"))
	_, err = storage.Save(fh, KindImage, "images")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}

func TestSaveAnyKindAcceptsArbitraryMime(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads", DefaultLimits)
	require.NoError(t, err)

	fh := newFileHeader(t, "scan.tiff", "image/tiff", []byte("tiff"))
	meta, err := storage.Save(fh, KindAny, "forms")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(meta.Path, "/uploads/forms/"))
}

func TestRemoveRejectsTraversal(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads", DefaultLimits)
	require.NoError(t, err)

	err = storage.Remove("/uploads/../outside.txt")
	require.Error(t, err)
}

func TestRemoveAllCollectsWarnings(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads", DefaultLimits)
	require.NoError(t, err)

	fh := newFileHeader(t, "ok.png", "image/png", []byte("png"))
	meta, err := storage.Save(fh, KindImage, "images")
	require.NoError(t, err)

	warnings := storage.RemoveAll([]models.FileMeta{
		meta,
		{Path: "/uploads/../escape.txt"},
	})
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "escape.txt")
}

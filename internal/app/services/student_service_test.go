package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e3mc/bschool-admin/internal/app/models"
	"github.com/e3mc/bschool-admin/internal/app/models/dto"
	"github.com/e3mc/bschool-admin/internal/pkg/filestorage"
)

// stubStorage records saves and removals without touching disk. Paths in
// failRemove return an error from Remove, surfacing as RemoveAll warnings.
type stubStorage struct {
	saveErr    error
	failRemove map[string]error
	saved      []models.FileMeta
	removed    []string
}

func (s *stubStorage) Save(fh *multipart.FileHeader, kind filestorage.Kind, subDir string) (models.FileMeta, error) {
	if s.saveErr != nil {
		return models.FileMeta{}, s.saveErr
	}
	meta := models.FileMeta{
		OriginalName: fh.Filename,
		StoredName:   fh.Filename,
		Path:         "/uploads/" + subDir + "/" + fh.Filename,
		Size:         fh.Size,
	}
	s.saved = append(s.saved, meta)
	return meta, nil
}

func (s *stubStorage) Remove(publicPath string) error {
	if err := s.failRemove[publicPath]; err != nil {
		return err
	}
	s.removed = append(s.removed, publicPath)
	return nil
}

func (s *stubStorage) RemoveAll(files []models.FileMeta) []string {
	var warnings []string
	for _, f := range files {
		if err := s.Remove(f.Path); err != nil {
			warnings = append(warnings, fmt.Sprintf("failed to remove %s: %v", f.Path, err))
		}
	}
	return warnings
}

type stubStudentStore struct {
	student   *models.Student
	getErr    error
	createErr error
	updateErr error
	deleteErr error
}

func (s *stubStudentStore) Create(ctx context.Context, st *models.Student) (*models.Student, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	st.ID = 1
	return st, nil
}

func (s *stubStudentStore) GetAll(ctx context.Context) ([]models.Student, error) {
	return nil, nil
}

func (s *stubStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.student, nil
}

func (s *stubStudentStore) FindByCodes(ctx context.Context, apCode, endorsementCode string) (*models.Student, error) {
	return s.student, s.getErr
}

func (s *stubStudentStore) Update(ctx context.Context, st *models.Student) error {
	return s.updateErr
}

func (s *stubStudentStore) Delete(ctx context.Context, id int64) error {
	return s.deleteErr
}

func fileMeta(path string) *models.FileMeta {
	return &models.FileMeta{
		OriginalName: "orig.bin",
		StoredName:   "stored.bin",
		Path:         path,
	}
}

func TestStudentUpdateReplacesImageAndRemovesOldFile(t *testing.T) {
	storage := &stubStorage{}
	store := &stubStudentStore{student: &models.Student{
		ID:    4,
		Name:  "Asha Verma",
		Image: fileMeta("/uploads/images/old_photo.png"),
	}}
	svc := &studentServiceImpl{studentRepo: store, storage: storage}

	student, err := svc.Update(context.Background(), 4, &dto.StudentUpdateRequest{},
		&multipart.FileHeader{Filename: "new_photo.png"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "/uploads/images/new_photo.png", student.Image.Path)
	assert.Equal(t, []string{"/uploads/images/old_photo.png"}, storage.removed)
}

func TestStudentUpdateWithoutUploadKeepsFiles(t *testing.T) {
	storage := &stubStorage{}
	store := &stubStudentStore{student: &models.Student{
		ID:      4,
		Name:    "Asha Verma",
		Image:   fileMeta("/uploads/images/photo.png"),
		DocFile: fileMeta("/uploads/docs/transcript.pdf"),
	}}
	svc := &studentServiceImpl{studentRepo: store, storage: storage}

	name := "Asha V."
	student, err := svc.Update(context.Background(), 4, &dto.StudentUpdateRequest{Name: &name}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Asha V.", student.Name)
	assert.Equal(t, "/uploads/images/photo.png", student.Image.Path)
	assert.Equal(t, "/uploads/docs/transcript.pdf", student.DocFile.Path)
	assert.Empty(t, storage.removed)
}

func TestStudentUpdateFailureRemovesNewFilesKeepsOld(t *testing.T) {
	storage := &stubStorage{}
	store := &stubStudentStore{
		student:   &models.Student{ID: 4, Image: fileMeta("/uploads/images/old_photo.png")},
		updateErr: assert.AnError,
	}
	svc := &studentServiceImpl{studentRepo: store, storage: storage}

	_, err := svc.Update(context.Background(), 4, &dto.StudentUpdateRequest{},
		&multipart.FileHeader{Filename: "new_photo.png"}, nil)
	require.Error(t, err)

	assert.Equal(t, []string{"/uploads/images/new_photo.png"}, storage.removed)
}

func TestStudentCreateFailureRemovesWrittenFiles(t *testing.T) {
	storage := &stubStorage{}
	store := &stubStudentStore{createErr: assert.AnError}
	svc := &studentServiceImpl{studentRepo: store, storage: storage}

	_, err := svc.Create(context.Background(),
		&dto.StudentCreateRequest{Name: "Asha Verma"},
		&multipart.FileHeader{Filename: "photo.png"},
		&multipart.FileHeader{Filename: "transcript.pdf"})
	require.Error(t, err)

	assert.ElementsMatch(t,
		[]string{"/uploads/images/photo.png", "/uploads/docs/transcript.pdf"},
		storage.removed)
}

func TestStudentDeleteRemovesAttachments(t *testing.T) {
	storage := &stubStorage{}
	store := &stubStudentStore{student: &models.Student{
		ID:      4,
		Image:   fileMeta("/uploads/images/photo.png"),
		DocFile: fileMeta("/uploads/docs/transcript.pdf"),
	}}
	svc := &studentServiceImpl{studentRepo: store, storage: storage}

	warnings, err := svc.Delete(context.Background(), 4)
	require.NoError(t, err)

	assert.Empty(t, warnings)
	assert.ElementsMatch(t,
		[]string{"/uploads/images/photo.png", "/uploads/docs/transcript.pdf"},
		storage.removed)
}

func TestStudentDeleteCollectsRemovalWarnings(t *testing.T) {
	storage := &stubStorage{failRemove: map[string]error{
		"/uploads/images/photo.png": assert.AnError,
	}}
	store := &stubStudentStore{student: &models.Student{
		ID:    4,
		Image: fileMeta("/uploads/images/photo.png"),
	}}
	svc := &studentServiceImpl{studentRepo: store, storage: storage}

	warnings, err := svc.Delete(context.Background(), 4)
	require.NoError(t, err)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "/uploads/images/photo.png")
}

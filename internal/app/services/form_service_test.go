package services

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e3mc/bschool-admin/internal/app/models"
	"github.com/e3mc/bschool-admin/internal/app/models/dto"
	"github.com/e3mc/bschool-admin/internal/pkg/apperrors"
)

type stubFormStore struct {
	form      *models.Form
	getErr    error
	createErr error
	updateErr error
	deleteErr error
}

func (s *stubFormStore) Create(ctx context.Context, f *models.Form) (*models.Form, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	f.ID = 1
	return f, nil
}

func (s *stubFormStore) List(ctx context.Context, q string, offset uint64, limit int) ([]models.Form, int64, error) {
	return nil, 0, nil
}

func (s *stubFormStore) GetByID(ctx context.Context, id int64) (*models.Form, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.form, nil
}

func (s *stubFormStore) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return s.updateErr
}

func (s *stubFormStore) Delete(ctx context.Context, id int64) error { return s.deleteErr }

func headers(names ...string) []*multipart.FileHeader {
	hs := make([]*multipart.FileHeader, 0, len(names))
	for _, name := range names {
		hs = append(hs, &multipart.FileHeader{Filename: name})
	}
	return hs
}

func validFormRequest() *dto.FormCreateRequest {
	return &dto.FormCreateRequest{
		FirstName: "Ravi",
		LastName:  "Kumar",
		Email:     "ravi@example.com",
		Phone:     "+91 98100 00000",
	}
}

func TestFormCreateStoresDocumentGroups(t *testing.T) {
	storage := &stubStorage{}
	svc := &formServiceImpl{formRepo: &stubFormStore{}, storage: storage}

	form, err := svc.Create(context.Background(), validFormRequest(), map[string][]*multipart.FileHeader{
		FieldEducationDocs: headers("degree.pdf"),
		FieldResumeDocs:    headers("resume.pdf"),
	})
	require.NoError(t, err)

	require.Len(t, form.EducationDocuments, 1)
	require.Len(t, form.ResumeDocuments, 1)
	assert.Equal(t, "/uploads/forms/degree.pdf", form.EducationDocuments[0].Path)
	assert.Equal(t, "/uploads/forms/resume.pdf", form.ResumeDocuments[0].Path)
}

func TestFormCreateRejectsOversizeResumeGroup(t *testing.T) {
	storage := &stubStorage{}
	svc := &formServiceImpl{formRepo: &stubFormStore{}, storage: storage}

	_, err := svc.Create(context.Background(), validFormRequest(), map[string][]*multipart.FileHeader{
		FieldResumeDocs: headers("r1.pdf", "r2.pdf", "r3.pdf", "r4.pdf", "r5.pdf", "r6.pdf"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, storage.saved)
}

func TestFormCreateFailureRemovesWrittenFiles(t *testing.T) {
	storage := &stubStorage{}
	svc := &formServiceImpl{formRepo: &stubFormStore{createErr: assert.AnError}, storage: storage}

	_, err := svc.Create(context.Background(), validFormRequest(), map[string][]*multipart.FileHeader{
		FieldEducationDocs: headers("degree.pdf", "marksheet.pdf"),
		FieldResumeDocs:    headers("resume.pdf"),
	})
	require.Error(t, err)

	assert.ElementsMatch(t, []string{
		"/uploads/forms/degree.pdf",
		"/uploads/forms/marksheet.pdf",
		"/uploads/forms/resume.pdf",
	}, storage.removed)
}

func TestFormDeleteRemovesEveryDocumentList(t *testing.T) {
	storage := &stubStorage{}
	store := &stubFormStore{form: &models.Form{
		ID:                      9,
		EducationDocuments:      []models.FileMeta{*fileMeta("/uploads/forms/degree.pdf")},
		EmploymentDocuments:     []models.FileMeta{*fileMeta("/uploads/forms/offer.pdf")},
		IdentificationDocuments: []models.FileMeta{*fileMeta("/uploads/forms/passport.pdf")},
		AwardsDocuments:         []models.FileMeta{*fileMeta("/uploads/forms/medal.pdf")},
		PurposeDocuments:        []models.FileMeta{*fileMeta("/uploads/forms/sop.pdf")},
		ResumeDocuments:         []models.FileMeta{*fileMeta("/uploads/forms/resume.pdf")},
	}}
	svc := &formServiceImpl{formRepo: store, storage: storage}

	warnings, err := svc.Delete(context.Background(), 9)
	require.NoError(t, err)

	assert.Empty(t, warnings)
	assert.ElementsMatch(t, []string{
		"/uploads/forms/degree.pdf",
		"/uploads/forms/offer.pdf",
		"/uploads/forms/passport.pdf",
		"/uploads/forms/medal.pdf",
		"/uploads/forms/sop.pdf",
		"/uploads/forms/resume.pdf",
	}, storage.removed)
}

func TestFormDeleteCollectsRemovalWarnings(t *testing.T) {
	storage := &stubStorage{failRemove: map[string]error{
		"/uploads/forms/degree.pdf": assert.AnError,
	}}
	store := &stubFormStore{form: &models.Form{
		ID:                 9,
		EducationDocuments: []models.FileMeta{*fileMeta("/uploads/forms/degree.pdf")},
		ResumeDocuments:    []models.FileMeta{*fileMeta("/uploads/forms/resume.pdf")},
	}}
	svc := &formServiceImpl{formRepo: store, storage: storage}

	warnings, err := svc.Delete(context.Background(), 9)
	require.NoError(t, err)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "/uploads/forms/degree.pdf")
	assert.Equal(t, []string{"/uploads/forms/resume.pdf"}, storage.removed)
}

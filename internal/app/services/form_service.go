package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/e3mc/bschool-admin/internal/app/models"
	"github.com/e3mc/bschool-admin/internal/app/models/dto"
	"github.com/e3mc/bschool-admin/internal/app/repositories"
	"github.com/e3mc/bschool-admin/internal/pkg/apperrors"
	"github.com/e3mc/bschool-admin/internal/pkg/filestorage"
	"github.com/e3mc/bschool-admin/internal/pkg/helpers"
)

// Multipart field names of the admission form document groups.
const (
	FieldEducationDocs      = "education_docs"
	FieldEmploymentDocs     = "employment_docs"
	FieldIdentificationDocs = "identification_docs"
	FieldAwardsDocs         = "awards_docs"
	FieldPurposeDocs        = "purpose_docs"
	FieldResumeDocs         = "resume_docs"
)

// Per-group upload caps.
const (
	MaxDocsPerGroup = 20
	MaxResumeDocs   = 5
)

// formDocGroups drives validation and storage for the six document groups.
// Identification and resume uploads must be real documents; the other
// categories only have to fit the size cap.
var formDocGroups = []struct {
	field string
	kind  filestorage.Kind
	max   int
}{
	{FieldEducationDocs, filestorage.KindAny, MaxDocsPerGroup},
	{FieldEmploymentDocs, filestorage.KindAny, MaxDocsPerGroup},
	{FieldIdentificationDocs, filestorage.KindDocument, MaxDocsPerGroup},
	{FieldAwardsDocs, filestorage.KindAny, MaxDocsPerGroup},
	{FieldPurposeDocs, filestorage.KindAny, MaxDocsPerGroup},
	{FieldResumeDocs, filestorage.KindDocument, MaxResumeDocs},
}

// FormService defines admission form operations.
type FormService interface {
	Create(ctx context.Context, req *dto.FormCreateRequest, files map[string][]*multipart.FileHeader) (*models.Form, error)
	List(ctx context.Context, q string, page, limit int) ([]models.Form, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Form, error)
	Patch(ctx context.Context, id int64, req *dto.FormPatchRequest) (*models.Form, error)
	Delete(ctx context.Context, id int64) ([]string, error)
}

// formStore is the persistence surface the service needs, satisfied by
// repositories.FormRepository.
type formStore interface {
	Create(ctx context.Context, f *models.Form) (*models.Form, error)
	List(ctx context.Context, q string, offset uint64, limit int) ([]models.Form, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Form, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

type formServiceImpl struct {
	formRepo formStore
	storage  filestorage.Storage
}

// NewFormService creates a new form service instance.
func NewFormService(formRepo *repositories.FormRepository, storage filestorage.Storage) FormService {
	return &formServiceImpl{
		formRepo: formRepo,
		storage:  storage,
	}
}

// Create validates and stores every uploaded document group, then the
// record. Any failure removes the files already written.
func (s *formServiceImpl) Create(ctx context.Context, req *dto.FormCreateRequest, files map[string][]*multipart.FileHeader) (*models.Form, error) {
	form := &models.Form{
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Email:                 req.Email,
		Phone:                 req.Phone,
		DOB:                   req.DOB,
		Gender:                req.Gender,
		Country:               req.Country,
		FatherName:            req.FatherName,
		MotherName:            req.MotherName,
		MaritalStatus:         req.MaritalStatus,
		HighestQualifications: req.HighestQualifications,
		AddressLine1:          req.AddressLine1,
		AddressLine2:          req.AddressLine2,
		City:                  req.City,
		State:                 req.State,
		EducationType:         req.EducationType,
		EmploymentType:        req.EmploymentType,
		IdentificationType:    req.IdentificationType,
		AwardsType:            req.AwardsType,
		PurposeType:           req.PurposeType,
	}

	var written []models.FileMeta
	fail := func(err error) (*models.Form, error) {
		s.storage.RemoveAll(written)
		return nil, err
	}

	for _, group := range formDocGroups {
		headers := files[group.field]
		if len(headers) > group.max {
			return fail(apperrors.NewValidationError(
				fmt.Sprintf("%s accepts at most %d files", group.field, group.max)))
		}

		var metas []models.FileMeta
		for _, fh := range headers {
			meta, err := s.storage.Save(fh, group.kind, "forms")
			if err != nil {
				return fail(err)
			}
			metas = append(metas, meta)
			written = append(written, meta)
		}

		switch group.field {
		case FieldEducationDocs:
			form.EducationDocuments = metas
		case FieldEmploymentDocs:
			form.EmploymentDocuments = metas
		case FieldIdentificationDocs:
			form.IdentificationDocuments = metas
		case FieldAwardsDocs:
			form.AwardsDocuments = metas
		case FieldPurposeDocs:
			form.PurposeDocuments = metas
		case FieldResumeDocs:
			form.ResumeDocuments = metas
		}
	}

	created, err := s.formRepo.Create(ctx, form)
	if err != nil {
		return fail(err)
	}
	return created, nil
}

// List returns a page of forms plus the total matching the filter.
func (s *formServiceImpl) List(ctx context.Context, q string, page, limit int) ([]models.Form, int64, error) {
	return s.formRepo.List(ctx, q, helpers.CalculateOffsetLimit(page, limit), limit)
}

// GetByID retrieves a single form.
func (s *formServiceImpl) GetByID(ctx context.Context, id int64) (*models.Form, error) {
	return s.formRepo.GetByID(ctx, id)
}

// Patch updates the whitelisted scalar fields and returns the fresh
// record. Document lists are never touched.
func (s *formServiceImpl) Patch(ctx context.Context, id int64, req *dto.FormPatchRequest) (*models.Form, error) {
	fields := map[string]interface{}{}
	set := func(column string, value *string) {
		if value != nil {
			fields[column] = *value
		}
	}
	set("first_name", req.FirstName)
	set("last_name", req.LastName)
	set("email", req.Email)
	set("phone", req.Phone)
	set("dob", req.DOB)
	set("gender", req.Gender)
	set("country", req.Country)
	set("father_name", req.FatherName)
	set("mother_name", req.MotherName)
	set("marital_status", req.MaritalStatus)
	set("highest_qualifications", req.HighestQualifications)
	set("address_line1", req.AddressLine1)
	set("address_line2", req.AddressLine2)
	set("city", req.City)
	set("state", req.State)

	if len(fields) > 0 {
		if err := s.formRepo.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.formRepo.GetByID(ctx, id)
}

// Delete removes the record and best-effort deletes every file across all
// six document lists.
func (s *formServiceImpl) Delete(ctx context.Context, id int64) ([]string, error) {
	form, err := s.formRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.formRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.storage.RemoveAll(form.AllFiles()), nil
}

package services

import (
	"context"
	"mime/multipart"

	"github.com/e3mc/bschool-admin/internal/app/models"
	"github.com/e3mc/bschool-admin/internal/app/models/dto"
	"github.com/e3mc/bschool-admin/internal/app/repositories"
	"github.com/e3mc/bschool-admin/internal/pkg/filestorage"
	"github.com/e3mc/bschool-admin/internal/pkg/logger"
)

// StudentService defines student verification record operations.
type StudentService interface {
	Create(ctx context.Context, req *dto.StudentCreateRequest, image, docFile *multipart.FileHeader) (*models.Student, error)
	GetAll(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	FindByCodes(ctx context.Context, apCode, endorsementCode string) (*models.Student, error)
	Update(ctx context.Context, id int64, req *dto.StudentUpdateRequest, image, docFile *multipart.FileHeader) (*models.Student, error)
	Delete(ctx context.Context, id int64) ([]string, error)
}

// studentStore is the persistence surface the service needs, satisfied by
// repositories.StudentRepository.
type studentStore interface {
	Create(ctx context.Context, s *models.Student) (*models.Student, error)
	GetAll(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	FindByCodes(ctx context.Context, apCode, endorsementCode string) (*models.Student, error)
	Update(ctx context.Context, s *models.Student) error
	Delete(ctx context.Context, id int64) error
}

type studentServiceImpl struct {
	studentRepo studentStore
	storage     filestorage.Storage
}

// NewStudentService creates a new student service instance.
func NewStudentService(studentRepo *repositories.StudentRepository, storage filestorage.Storage) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		storage:     storage,
	}
}

// Create stores the uploaded attachments first, then the record. When the
// insert fails the just-written files are removed again so no orphans
// accumulate.
func (s *studentServiceImpl) Create(ctx context.Context, req *dto.StudentCreateRequest, image, docFile *multipart.FileHeader) (*models.Student, error) {
	student := &models.Student{
		Name:                req.Name,
		FatherName:          req.FatherName,
		DOB:                 req.DOB,
		Gender:              req.Gender,
		ProgramApplied:      req.ProgramApplied,
		Specialization:      req.Specialization,
		Session:             req.Session,
		Country:             req.Country,
		AcademicPartnerCode: req.AcademicPartnerCode,
		EndorsementCode:     req.EndorsementCode,
	}

	var written []models.FileMeta
	if image != nil {
		meta, err := s.storage.Save(image, filestorage.KindImage, "images")
		if err != nil {
			return nil, err
		}
		student.Image = &meta
		written = append(written, meta)
	}
	if docFile != nil {
		meta, err := s.storage.Save(docFile, filestorage.KindDocument, "docs")
		if err != nil {
			s.storage.RemoveAll(written)
			return nil, err
		}
		student.DocFile = &meta
		written = append(written, meta)
	}

	created, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		s.storage.RemoveAll(written)
		return nil, err
	}
	return created, nil
}

// GetAll returns every student, newest first.
func (s *studentServiceImpl) GetAll(ctx context.Context) ([]models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// GetByID retrieves a single student.
func (s *studentServiceImpl) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// FindByCodes retrieves the student matching both verification codes.
func (s *studentServiceImpl) FindByCodes(ctx context.Context, apCode, endorsementCode string) (*models.Student, error) {
	return s.studentRepo.FindByCodes(ctx, apCode, endorsementCode)
}

// Update applies the provided fields and replaces attachments for which a
// new file was uploaded. The superseded file is removed best-effort after
// the record write succeeds.
func (s *studentServiceImpl) Update(ctx context.Context, id int64, req *dto.StudentUpdateRequest, image, docFile *multipart.FileHeader) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&student.Name, req.Name)
	applyString(&student.FatherName, req.FatherName)
	applyString(&student.DOB, req.DOB)
	applyString(&student.Gender, req.Gender)
	applyString(&student.ProgramApplied, req.ProgramApplied)
	applyString(&student.Specialization, req.Specialization)
	applyString(&student.Session, req.Session)
	applyString(&student.Country, req.Country)
	applyString(&student.AcademicPartnerCode, req.AcademicPartnerCode)
	applyString(&student.EndorsementCode, req.EndorsementCode)

	var written []models.FileMeta
	var superseded []models.FileMeta
	if image != nil {
		meta, err := s.storage.Save(image, filestorage.KindImage, "images")
		if err != nil {
			return nil, err
		}
		if student.Image != nil {
			superseded = append(superseded, *student.Image)
		}
		student.Image = &meta
		written = append(written, meta)
	}
	if docFile != nil {
		meta, err := s.storage.Save(docFile, filestorage.KindDocument, "docs")
		if err != nil {
			s.storage.RemoveAll(written)
			return nil, err
		}
		if student.DocFile != nil {
			superseded = append(superseded, *student.DocFile)
		}
		student.DocFile = &meta
		written = append(written, meta)
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		s.storage.RemoveAll(written)
		return nil, err
	}

	for _, warning := range s.storage.RemoveAll(superseded) {
		logger.Warn().Str("warning", warning).Int64("studentId", id).Msg("Failed to remove superseded student file")
	}
	return student, nil
}

// Delete removes the record and best-effort deletes its attachments,
// returning one warning per file that could not be removed.
func (s *studentServiceImpl) Delete(ctx context.Context, id int64) ([]string, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	var files []models.FileMeta
	if student.Image != nil {
		files = append(files, *student.Image)
	}
	if student.DocFile != nil {
		files = append(files, *student.DocFile)
	}
	return s.storage.RemoveAll(files), nil
}

// applyString copies a patch value over the target when one was provided.
func applyString(target *string, value *string) {
	if value != nil {
		*target = *value
	}
}

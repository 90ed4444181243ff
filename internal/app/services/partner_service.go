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
	"github.com/e3mc/bschool-admin/internal/pkg/logger"
)

// MaxPartnerImages caps the images accepted per partner.
const MaxPartnerImages = 5

// PartnerService defines academic partner operations.
type PartnerService interface {
	Create(ctx context.Context, req *dto.PartnerCreateRequest, images []*multipart.FileHeader) (*models.AcademicPartner, error)
	GetAll(ctx context.Context) ([]models.AcademicPartner, error)
	GetByID(ctx context.Context, id int64) (*models.AcademicPartner, error)
	GetByAPCode(ctx context.Context, apCode string) (*models.AcademicPartner, error)
	Update(ctx context.Context, id int64, req *dto.PartnerUpdateRequest, images []*multipart.FileHeader) (*models.AcademicPartner, error)
	Delete(ctx context.Context, id int64) ([]string, error)
}

type partnerServiceImpl struct {
	partnerRepo *repositories.PartnerRepository
	storage     filestorage.Storage
}

// NewPartnerService creates a new partner service instance.
func NewPartnerService(partnerRepo *repositories.PartnerRepository, storage filestorage.Storage) PartnerService {
	return &partnerServiceImpl{
		partnerRepo: partnerRepo,
		storage:     storage,
	}
}

func (s *partnerServiceImpl) saveImages(images []*multipart.FileHeader) ([]models.FileMeta, error) {
	if len(images) > MaxPartnerImages {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("at most %d images are allowed", MaxPartnerImages))
	}

	var written []models.FileMeta
	for _, fh := range images {
		meta, err := s.storage.Save(fh, filestorage.KindImage, "partners")
		if err != nil {
			s.storage.RemoveAll(written)
			return nil, err
		}
		written = append(written, meta)
	}
	return written, nil
}

// Create stores the uploaded images first, then the record. Duplicate
// apCodes surface as ErrDuplicateAPCode and the written files are removed.
func (s *partnerServiceImpl) Create(ctx context.Context, req *dto.PartnerCreateRequest, images []*multipart.FileHeader) (*models.AcademicPartner, error) {
	written, err := s.saveImages(images)
	if err != nil {
		return nil, err
	}

	partner := &models.AcademicPartner{
		APCode:         req.APCode,
		InstituteType:  req.InstituteType,
		ContactPerson:  req.ContactPerson,
		ContactNumber:  req.ContactNumber,
		Country:        req.Country,
		State:          req.State,
		Address:        req.Address,
		Website:        req.Website,
		Email:          req.Email,
		WorkPermitArea: req.WorkPermitArea,
		Images:         written,
	}

	created, err := s.partnerRepo.Create(ctx, partner)
	if err != nil {
		s.storage.RemoveAll(written)
		return nil, err
	}
	return created, nil
}

// GetAll returns every partner, newest first.
func (s *partnerServiceImpl) GetAll(ctx context.Context) ([]models.AcademicPartner, error) {
	return s.partnerRepo.GetAll(ctx)
}

// GetByID retrieves a single partner.
func (s *partnerServiceImpl) GetByID(ctx context.Context, id int64) (*models.AcademicPartner, error) {
	return s.partnerRepo.GetByID(ctx, id)
}

// GetByAPCode retrieves a partner by its unique code.
func (s *partnerServiceImpl) GetByAPCode(ctx context.Context, apCode string) (*models.AcademicPartner, error) {
	return s.partnerRepo.GetByAPCode(ctx, apCode)
}

// Update applies the provided fields. A non-empty image upload replaces
// the whole stored list; the old files are removed best-effort after the
// record write succeeds. No upload keeps the existing list.
func (s *partnerServiceImpl) Update(ctx context.Context, id int64, req *dto.PartnerUpdateRequest, images []*multipart.FileHeader) (*models.AcademicPartner, error) {
	partner, err := s.partnerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&partner.APCode, req.APCode)
	applyString(&partner.InstituteType, req.InstituteType)
	applyString(&partner.ContactPerson, req.ContactPerson)
	applyString(&partner.ContactNumber, req.ContactNumber)
	applyString(&partner.Country, req.Country)
	applyString(&partner.State, req.State)
	applyString(&partner.Address, req.Address)
	applyString(&partner.Website, req.Website)
	applyString(&partner.Email, req.Email)
	applyString(&partner.WorkPermitArea, req.WorkPermitArea)

	var superseded []models.FileMeta
	var written []models.FileMeta
	if len(images) > 0 {
		written, err = s.saveImages(images)
		if err != nil {
			return nil, err
		}
		superseded = partner.Images
		partner.Images = written
	}

	if err := s.partnerRepo.Update(ctx, partner); err != nil {
		s.storage.RemoveAll(written)
		return nil, err
	}

	for _, warning := range s.storage.RemoveAll(superseded) {
		logger.Warn().Str("warning", warning).Int64("partnerId", id).Msg("Failed to remove superseded partner image")
	}
	return partner, nil
}

// Delete removes the record and best-effort deletes its images.
func (s *partnerServiceImpl) Delete(ctx context.Context, id int64) ([]string, error) {
	partner, err := s.partnerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.partnerRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.storage.RemoveAll(partner.Images), nil
}

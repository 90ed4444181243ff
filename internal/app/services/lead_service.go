package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/e3mc/bschool-admin/internal/app/models"
	"github.com/e3mc/bschool-admin/internal/app/models/dto"
	"github.com/e3mc/bschool-admin/internal/app/repositories"
	"github.com/e3mc/bschool-admin/internal/pkg/apperrors"
	"github.com/e3mc/bschool-admin/internal/pkg/email"
	"github.com/e3mc/bschool-admin/internal/pkg/helpers"
	"github.com/e3mc/bschool-admin/internal/pkg/logger"
)

// BrochureService defines brochure request operations. Creating a request
// also emails the brochure to the requester; a failed send is reported to
// the caller while the stored record is kept.
type BrochureService interface {
	Create(ctx context.Context, req *dto.BrochureCreateRequest) (*models.BrochureRequest, error)
	List(ctx context.Context, search string, page, limit int) ([]models.BrochureRequest, int64, error)
	GetByID(ctx context.Context, id int64) (*models.BrochureRequest, error)
	Delete(ctx context.Context, id int64) (*models.BrochureRequest, error)
}

type brochureServiceImpl struct {
	brochureRepo *repositories.BrochureRepository
	sender       email.Sender
	brochurePath string
}

// NewBrochureService creates a new brochure service instance.
func NewBrochureService(brochureRepo *repositories.BrochureRepository, sender email.Sender, brochurePath string) BrochureService {
	return &brochureServiceImpl{
		brochureRepo: brochureRepo,
		sender:       sender,
		brochurePath: brochurePath,
	}
}

// Create persists the request, then sends the brochure. When the send
// fails the error wraps ErrNotificationFailed and the created record is
// attached so the handler can report both.
func (s *brochureServiceImpl) Create(ctx context.Context, req *dto.BrochureCreateRequest) (*models.BrochureRequest, error) {
	created, err := s.brochureRepo.Create(ctx, &models.BrochureRequest{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		CourseInterest: req.CourseInterest,
		AgreeToUpdates: req.AgreeToUpdates,
	})
	if err != nil {
		return nil, err
	}

	body := fmt.Sprintf(
		"Dear %s,\r\n\r\nThank you for your interest. Please find our brochure attached.\r\n",
		created.FullName)
	err = s.sender.Send(created.Email, "Your Brochure", body, []email.Attachment{
		{Filename: filepath.Base(s.brochurePath), Path: s.brochurePath},
	})
	if err != nil {
		logger.Error().Err(err).Int64("brochureRequestId", created.ID).Msg("Brochure email failed")
		return created, fmt.Errorf("%w: %v", apperrors.ErrNotificationFailed, err)
	}
	return created, nil
}

// List returns a page of brochure requests plus the total matching the
// filter.
func (s *brochureServiceImpl) List(ctx context.Context, search string, page, limit int) ([]models.BrochureRequest, int64, error) {
	return s.brochureRepo.List(ctx, search, helpers.CalculateOffsetLimit(page, limit), limit)
}

// GetByID retrieves a single brochure request.
func (s *brochureServiceImpl) GetByID(ctx context.Context, id int64) (*models.BrochureRequest, error) {
	return s.brochureRepo.GetByID(ctx, id)
}

// Delete removes a brochure request and returns the deleted record.
func (s *brochureServiceImpl) Delete(ctx context.Context, id int64) (*models.BrochureRequest, error) {
	return s.brochureRepo.Delete(ctx, id)
}

// CounsellingService defines counselling request operations.
type CounsellingService interface {
	Create(ctx context.Context, req *dto.CounsellingCreateRequest) (*models.Counselling, error)
	GetAll(ctx context.Context) ([]models.Counselling, error)
	Delete(ctx context.Context, id int64) (*models.Counselling, error)
}

type counsellingServiceImpl struct {
	counsellingRepo *repositories.CounsellingRepository
}

// NewCounsellingService creates a new counselling service instance.
func NewCounsellingService(counsellingRepo *repositories.CounsellingRepository) CounsellingService {
	return &counsellingServiceImpl{counsellingRepo: counsellingRepo}
}

// Create stores a counselling request. The terms box must be ticked.
func (s *counsellingServiceImpl) Create(ctx context.Context, req *dto.CounsellingCreateRequest) (*models.Counselling, error) {
	if !req.AgreedToTerms {
		return nil, apperrors.NewValidationError("terms must be accepted")
	}
	return s.counsellingRepo.Create(ctx, &models.Counselling{
		Name:          req.Name,
		Email:         req.Email,
		PhoneCode:     req.PhoneCode,
		Phone:         req.Phone,
		AgreedToTerms: req.AgreedToTerms,
	})
}

// GetAll returns every counselling request, newest first.
func (s *counsellingServiceImpl) GetAll(ctx context.Context) ([]models.Counselling, error) {
	return s.counsellingRepo.GetAll(ctx)
}

// Delete removes a counselling request and returns the deleted record.
func (s *counsellingServiceImpl) Delete(ctx context.Context, id int64) (*models.Counselling, error) {
	return s.counsellingRepo.Delete(ctx, id)
}

// PartnerCounselingService defines partner counselling request operations.
type PartnerCounselingService interface {
	Create(ctx context.Context, req *dto.PartnerCounselingCreateRequest) (*models.PartnerCounseling, error)
	GetAll(ctx context.Context) ([]models.PartnerCounseling, int64, error)
	Delete(ctx context.Context, id int64) error
}

type partnerCounselingServiceImpl struct {
	partnerCounselingRepo *repositories.PartnerCounselingRepository
}

// NewPartnerCounselingService creates a new partner counselling service
// instance.
func NewPartnerCounselingService(partnerCounselingRepo *repositories.PartnerCounselingRepository) PartnerCounselingService {
	return &partnerCounselingServiceImpl{partnerCounselingRepo: partnerCounselingRepo}
}

// Create stores a partner counselling request.
func (s *partnerCounselingServiceImpl) Create(ctx context.Context, req *dto.PartnerCounselingCreateRequest) (*models.PartnerCounseling, error) {
	return s.partnerCounselingRepo.Create(ctx, &models.PartnerCounseling{
		FullName:      req.FullName,
		EmailAddress:  req.EmailAddress,
		PhoneNumber:   req.PhoneNumber,
		UserMessage:   req.UserMessage,
		TermsAccepted: req.TermsAccepted,
	})
}

// GetAll returns every partner counselling request, newest first, plus
// the total count.
func (s *partnerCounselingServiceImpl) GetAll(ctx context.Context) ([]models.PartnerCounseling, int64, error) {
	requests, err := s.partnerCounselingRepo.GetAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	return requests, int64(len(requests)), nil
}

// Delete removes a partner counselling request.
func (s *partnerCounselingServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.partnerCounselingRepo.Delete(ctx, id)
}

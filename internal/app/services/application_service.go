package services

import (
	"context"

	"github.com/e3mc/bschool-admin/internal/app/models"
	"github.com/e3mc/bschool-admin/internal/app/models/dto"
	"github.com/e3mc/bschool-admin/internal/app/repositories"
)

// ApplicationService defines apply-now submission operations.
type ApplicationService interface {
	Create(ctx context.Context, req *dto.ApplicationCreateRequest) (*models.Application, error)
	GetAll(ctx context.Context) ([]models.Application, error)
	Delete(ctx context.Context, id int64) (*models.Application, error)
}

type applicationServiceImpl struct {
	applicationRepo *repositories.ApplicationRepository
}

// NewApplicationService creates a new application service instance.
func NewApplicationService(applicationRepo *repositories.ApplicationRepository) ApplicationService {
	return &applicationServiceImpl{applicationRepo: applicationRepo}
}

// Create stores an apply-now submission.
func (s *applicationServiceImpl) Create(ctx context.Context, req *dto.ApplicationCreateRequest) (*models.Application, error) {
	return s.applicationRepo.Create(ctx, &models.Application{
		Name:        req.Name,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
		Phone:       req.Phone,
		ZipCode:     req.ZipCode,
		Status:      req.Status,
		Address:     req.Address,
	})
}

// GetAll returns every application, newest first.
func (s *applicationServiceImpl) GetAll(ctx context.Context) ([]models.Application, error) {
	return s.applicationRepo.GetAll(ctx)
}

// Delete removes an application and returns the deleted record.
func (s *applicationServiceImpl) Delete(ctx context.Context, id int64) (*models.Application, error) {
	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.applicationRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return application, nil
}

package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e3mc/bschool-admin/internal/app/models"
	"github.com/e3mc/bschool-admin/internal/app/models/dto"
	"github.com/e3mc/bschool-admin/internal/pkg/apperrors"
)

type stubPartnerService struct {
	createFn func(ctx context.Context, req *dto.PartnerCreateRequest, images []*multipart.FileHeader) (*models.AcademicPartner, error)
	getAllFn func(ctx context.Context) ([]models.AcademicPartner, error)
	getFn    func(ctx context.Context, id int64) (*models.AcademicPartner, error)
	deleteFn func(ctx context.Context, id int64) ([]string, error)
}

func (s *stubPartnerService) Create(ctx context.Context, req *dto.PartnerCreateRequest, images []*multipart.FileHeader) (*models.AcademicPartner, error) {
	return s.createFn(ctx, req, images)
}

func (s *stubPartnerService) GetAll(ctx context.Context) ([]models.AcademicPartner, error) {
	return s.getAllFn(ctx)
}

func (s *stubPartnerService) GetByID(ctx context.Context, id int64) (*models.AcademicPartner, error) {
	return s.getFn(ctx, id)
}

func (s *stubPartnerService) GetByAPCode(ctx context.Context, apCode string) (*models.AcademicPartner, error) {
	return nil, apperrors.ErrNotFound
}

func (s *stubPartnerService) Update(ctx context.Context, id int64, req *dto.PartnerUpdateRequest, images []*multipart.FileHeader) (*models.AcademicPartner, error) {
	return nil, apperrors.ErrNotFound
}

func (s *stubPartnerService) Delete(ctx context.Context, id int64) ([]string, error) {
	return s.deleteFn(ctx, id)
}

func partnerRouter(svc *stubPartnerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewPartnerController(svc)

	router := gin.New()
	router.POST("/api/partners", ctrl.Create)
	router.GET("/api/partners/:id", ctrl.GetByID)
	router.DELETE("/api/partners/:id", ctrl.Delete)
	return router
}

func partnerForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func validPartnerFields() map[string]string {
	return map[string]string{
		"apCode":        "AP-204",
		"instituteType": "University",
		"contactPerson": "R. Mehta",
		"contactNumber": "+91 98200 00000",
		"country":       "India",
		"state":         "Maharashtra",
		"address":       "12 Marine Drive, Mumbai",
		"email":         "partners@example.edu",
	}
}

func TestPartnerCreateReturnsCreatedPartner(t *testing.T) {
	svc := &stubPartnerService{
		createFn: func(ctx context.Context, req *dto.PartnerCreateRequest, images []*multipart.FileHeader) (*models.AcademicPartner, error) {
			assert.Equal(t, "AP-204", req.APCode)
			assert.Empty(t, images)
			return &models.AcademicPartner{ID: 7, APCode: req.APCode, Email: req.Email}, nil
		},
	}

	body, contentType := partnerForm(t, validPartnerFields())
	req := httptest.NewRequest(http.MethodPost, "/api/partners", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()
	partnerRouter(svc).ServeHTTP(recorder, req)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var resp dto.PartnerResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "Partner created successfully", resp.Message)
	assert.Equal(t, int64(7), resp.Partner.ID)
}

func TestPartnerCreateMissingFields(t *testing.T) {
	svc := &stubPartnerService{
		createFn: func(ctx context.Context, req *dto.PartnerCreateRequest, images []*multipart.FileHeader) (*models.AcademicPartner, error) {
			t.Fatal("service must not be called on a binding failure")
			return nil, nil
		},
	}

	body, contentType := partnerForm(t, map[string]string{"apCode": "AP-204"})
	req := httptest.NewRequest(http.MethodPost, "/api/partners", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()
	partnerRouter(svc).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPartnerCreateDuplicateAPCode(t *testing.T) {
	svc := &stubPartnerService{
		createFn: func(ctx context.Context, req *dto.PartnerCreateRequest, images []*multipart.FileHeader) (*models.AcademicPartner, error) {
			return nil, apperrors.ErrDuplicateAPCode
		},
	}

	body, contentType := partnerForm(t, validPartnerFields())
	req := httptest.NewRequest(http.MethodPost, "/api/partners", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()
	partnerRouter(svc).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "AP code already exists")
}

func TestPartnerGetByIDInvalidParam(t *testing.T) {
	svc := &stubPartnerService{
		getFn: func(ctx context.Context, id int64) (*models.AcademicPartner, error) {
			t.Fatal("service must not be called with an unparsed id")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/partners/abc", nil)
	recorder := httptest.NewRecorder()
	partnerRouter(svc).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid id")
}

func TestPartnerDeleteSurfacesWarnings(t *testing.T) {
	svc := &stubPartnerService{
		deleteFn: func(ctx context.Context, id int64) ([]string, error) {
			assert.Equal(t, int64(12), id)
			return []string{"failed to remove uploads/images/campus.png"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/partners/12", nil)
	recorder := httptest.NewRecorder()
	partnerRouter(svc).ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp dto.DeleteResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "Partner deleted successfully", resp.Message)
	assert.Len(t, resp.Warnings, 1)
}

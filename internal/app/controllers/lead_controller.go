package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/e3mc/bschool-admin/internal/app/models/dto"
	"github.com/e3mc/bschool-admin/internal/app/services"
	"github.com/e3mc/bschool-admin/internal/middleware"
	"github.com/e3mc/bschool-admin/internal/pkg/apperrors"
	"github.com/e3mc/bschool-admin/internal/pkg/helpers"
)

// defaultLeadPageSize is the page size of the brochure lead listing.
const defaultLeadPageSize = 10

// BrochureController handles brochure request endpoints.
type BrochureController struct {
	brochureService services.BrochureService
}

// NewBrochureController creates a new BrochureController.
func NewBrochureController(brochureService services.BrochureService) *BrochureController {
	return &BrochureController{brochureService: brochureService}
}

// Create handles POST /api/brochure. The record is always kept; a failed
// brochure email is reported with success=false in the same response.
func (ctrl *BrochureController) Create(c *gin.Context) {
	var req dto.BrochureCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, bindError(err))
		return
	}

	request, err := ctrl.brochureService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotificationFailed) {
			c.JSON(http.StatusOK, dto.BrochureResponse{
				Success: false,
				Message: "Request saved but the brochure email failed",
				Data:    request,
			})
			return
		}
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.BrochureResponse{
		Success: true,
		Message: "Brochure sent successfully",
		Data:    request,
	})
}

// List handles GET /api/brochure?page&limit&search.
func (ctrl *BrochureController) List(c *gin.Context) {
	page, limit := helpers.ParsePaginationParams(c, defaultLeadPageSize)
	search := c.Query("search")

	requests, total, err := ctrl.brochureService.List(c.Request.Context(), search, page, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BrochureListResponse{
		Success:     true,
		Data:        requests,
		Total:       total,
		TotalPages:  helpers.PageCount(total, limit),
		CurrentPage: page,
	})
}

// GetByID handles GET /api/brochure/:id.
func (ctrl *BrochureController) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	request, err := ctrl.brochureService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BrochureItemResponse{Success: true, Data: request})
}

// Delete handles DELETE /api/brochure/:id.
func (ctrl *BrochureController) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	request, err := ctrl.brochureService.Delete(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BrochureItemResponse{
		Success: true,
		Message: "Brochure request deleted successfully",
		Data:    request,
	})
}

// CounsellingController handles counselling request endpoints.
type CounsellingController struct {
	counsellingService services.CounsellingService
}

// NewCounsellingController creates a new CounsellingController.
func NewCounsellingController(counsellingService services.CounsellingService) *CounsellingController {
	return &CounsellingController{counsellingService: counsellingService}
}

// Create handles POST /api/counselling.
func (ctrl *CounsellingController) Create(c *gin.Context) {
	var req dto.CounsellingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, bindError(err))
		return
	}

	request, err := ctrl.counsellingService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CounsellingResponse{
		Message: "Counselling request submitted successfully",
		Data:    request,
	})
}

// GetAll handles GET /api/counselling.
func (ctrl *CounsellingController) GetAll(c *gin.Context) {
	requests, err := ctrl.counsellingService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// Delete handles DELETE /api/counselling/:id.
func (ctrl *CounsellingController) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	request, err := ctrl.counsellingService.Delete(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CounsellingResponse{
		Message: "Counselling request deleted successfully",
		Data:    request,
	})
}

// PartnerCounselingController handles partner counselling endpoints.
type PartnerCounselingController struct {
	partnerCounselingService services.PartnerCounselingService
}

// NewPartnerCounselingController creates a new PartnerCounselingController.
func NewPartnerCounselingController(partnerCounselingService services.PartnerCounselingService) *PartnerCounselingController {
	return &PartnerCounselingController{partnerCounselingService: partnerCounselingService}
}

// Create handles POST /api/partner-counseling.
func (ctrl *PartnerCounselingController) Create(c *gin.Context) {
	var req dto.PartnerCounselingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, bindError(err))
		return
	}

	request, err := ctrl.partnerCounselingService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.PartnerCounselingResponse{
		Message: "Partner counseling request submitted successfully",
		Data:    request,
	})
}

// GetAll handles GET /api/partner-counseling.
func (ctrl *PartnerCounselingController) GetAll(c *gin.Context) {
	requests, count, err := ctrl.partnerCounselingService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PartnerCounselingListResponse{
		Count: count,
		Data:  requests,
	})
}

// Delete handles DELETE /api/partner-counseling/:id.
func (ctrl *PartnerCounselingController) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.partnerCounselingService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Partner counseling request deleted successfully",
	})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/e3mc/bschool-admin/internal/app/models/dto"
	"github.com/e3mc/bschool-admin/internal/app/services"
	"github.com/e3mc/bschool-admin/internal/middleware"
)

// PartnerController handles academic partner endpoints.
type PartnerController struct {
	partnerService services.PartnerService
}

// NewPartnerController creates a new PartnerController.
func NewPartnerController(partnerService services.PartnerService) *PartnerController {
	return &PartnerController{partnerService: partnerService}
}

// Create handles POST /api/partners (multipart, images[]).
func (ctrl *PartnerController) Create(c *gin.Context) {
	var req dto.PartnerCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(c, bindError(err))
		return
	}

	partner, err := ctrl.partnerService.Create(c.Request.Context(), &req,
		formFileGroups(c)["images"])
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.PartnerResponse{
		Message: "Partner created successfully",
		Partner: partner,
	})
}

// GetAll handles GET /api/partners. With ?apCode= it returns the single
// matching partner instead of the list.
func (ctrl *PartnerController) GetAll(c *gin.Context) {
	if apCode := c.Query("apCode"); apCode != "" {
		partner, err := ctrl.partnerService.GetByAPCode(c.Request.Context(), apCode)
		if err != nil {
			middleware.HandleAPIError(c, err)
			return
		}
		c.JSON(http.StatusOK, partner)
		return
	}

	partners, err := ctrl.partnerService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, partners)
}

// GetByID handles GET /api/partners/:id.
func (ctrl *PartnerController) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	partner, err := ctrl.partnerService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, partner)
}

// Update handles PUT /api/partners/:id (multipart).
func (ctrl *PartnerController) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.PartnerUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(c, bindError(err))
		return
	}

	partner, err := ctrl.partnerService.Update(c.Request.Context(), id, &req,
		formFileGroups(c)["images"])
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PartnerResponse{
		Message: "Partner updated successfully",
		Partner: partner,
	})
}

// Delete handles DELETE /api/partners/:id.
func (ctrl *PartnerController) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	warnings, err := ctrl.partnerService.Delete(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{
		Message:  "Partner deleted successfully",
		Warnings: warnings,
	})
}

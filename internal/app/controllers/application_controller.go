package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/e3mc/bschool-admin/internal/app/models/dto"
	"github.com/e3mc/bschool-admin/internal/app/services"
	"github.com/e3mc/bschool-admin/internal/middleware"
)

// ApplicationController handles apply-now submission endpoints.
type ApplicationController struct {
	applicationService services.ApplicationService
}

// NewApplicationController creates a new ApplicationController.
func NewApplicationController(applicationService services.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// Create handles POST /api/applications.
func (ctrl *ApplicationController) Create(c *gin.Context) {
	var req dto.ApplicationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, bindError(err))
		return
	}

	application, err := ctrl.applicationService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ApplicationResponse{
		Message: "Application submitted successfully",
		Data:    application,
	})
}

// GetAll handles GET /api/applications.
func (ctrl *ApplicationController) GetAll(c *gin.Context) {
	applications, err := ctrl.applicationService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// Delete handles DELETE /api/applications/:id.
func (ctrl *ApplicationController) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	application, err := ctrl.applicationService.Delete(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ApplicationResponse{
		Message: "Application deleted successfully",
		Data:    application,
	})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/e3mc/bschool-admin/internal/app/models/dto"
	"github.com/e3mc/bschool-admin/internal/app/services"
	"github.com/e3mc/bschool-admin/internal/middleware"
	"github.com/e3mc/bschool-admin/internal/pkg/helpers"
)

// defaultFormPageSize is the page size of the admin form listing when the
// client does not ask for one.
const defaultFormPageSize = 10

// FormController handles admission form endpoints.
type FormController struct {
	formService services.FormService
}

// NewFormController creates a new FormController.
func NewFormController(formService services.FormService) *FormController {
	return &FormController{formService: formService}
}

// Create handles POST /api/forms (multipart with six document groups).
func (ctrl *FormController) Create(c *gin.Context) {
	var req dto.FormCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(c, bindError(err))
		return
	}

	form, err := ctrl.formService.Create(c.Request.Context(), &req, formFileGroups(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, form)
}

// List handles GET /api/forms?page&limit&q.
func (ctrl *FormController) List(c *gin.Context) {
	page, limit := helpers.ParsePaginationParams(c, defaultFormPageSize)
	q := c.Query("q")

	forms, total, err := ctrl.formService.List(c.Request.Context(), q, page, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FormListResponse{
		Items: forms,
		Total: total,
		Page:  page,
		Pages: helpers.PageCount(total, limit),
	})
}

// GetByID handles GET /api/forms/:id.
func (ctrl *FormController) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	form, err := ctrl.formService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// Patch handles PATCH /api/forms/:id with whitelisted scalar fields.
func (ctrl *FormController) Patch(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.FormPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, bindError(err))
		return
	}

	form, err := ctrl.formService.Patch(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// Delete handles DELETE /api/forms/:id.
func (ctrl *FormController) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	warnings, err := ctrl.formService.Delete(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{
		Message:  "Form deleted successfully",
		ID:       id,
		Warnings: warnings,
	})
}

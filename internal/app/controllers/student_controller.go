package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/e3mc/bschool-admin/internal/app/models/dto"
	"github.com/e3mc/bschool-admin/internal/app/services"
	"github.com/e3mc/bschool-admin/internal/middleware"
	"github.com/e3mc/bschool-admin/internal/pkg/apperrors"
)

// StudentController handles student verification record endpoints.
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController.
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// Create handles POST /api/students (multipart).
func (ctrl *StudentController) Create(c *gin.Context) {
	var req dto.StudentCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(c, bindError(err))
		return
	}

	student, err := ctrl.studentService.Create(c.Request.Context(), &req,
		formFile(c, "image"), formFile(c, "docFile"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.StudentResponse{
		Message: "Student created successfully",
		Student: student,
	})
}

// GetAll handles GET /api/students.
func (ctrl *StudentController) GetAll(c *gin.Context) {
	students, err := ctrl.studentService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// Search handles GET /api/students/search?academicPartnerCode=..&endorsementCode=..
// used by the public verification flow.
func (ctrl *StudentController) Search(c *gin.Context) {
	apCode := c.Query("academicPartnerCode")
	endorsementCode := c.Query("endorsementCode")
	if apCode == "" || endorsementCode == "" {
		middleware.HandleAPIError(c, apperrors.NewValidationError(
			"academicPartnerCode and endorsementCode are required"))
		return
	}

	student, err := ctrl.studentService.FindByCodes(c.Request.Context(), apCode, endorsementCode)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// GetByID handles GET /api/students/:id.
func (ctrl *StudentController) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	student, err := ctrl.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// Update handles PUT /api/students/:id (multipart).
func (ctrl *StudentController) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.StudentUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(c, bindError(err))
		return
	}

	student, err := ctrl.studentService.Update(c.Request.Context(), id, &req,
		formFile(c, "image"), formFile(c, "docFile"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StudentResponse{
		Message: "Student updated successfully",
		Student: student,
	})
}

// Delete handles DELETE /api/students/:id.
func (ctrl *StudentController) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	warnings, err := ctrl.studentService.Delete(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{
		Message:  "Student deleted successfully",
		Warnings: warnings,
	})
}

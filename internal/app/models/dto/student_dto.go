package dto

import "github.com/e3mc/bschool-admin/internal/app/models"

// StudentCreateRequest binds the multipart fields of the student
// verification form. The image and docFile parts are read separately.
type StudentCreateRequest struct {
	Name                string `form:"name" binding:"required"`
	FatherName          string `form:"fatherName"`
	DOB                 string `form:"dob" binding:"required"`
	Gender              string `form:"gender" binding:"required"`
	ProgramApplied      string `form:"programApplied" binding:"required"`
	Specialization      string `form:"specialization"`
	Session             string `form:"session"`
	Country             string `form:"country" binding:"required"`
	AcademicPartnerCode string `form:"academicPartnerCode"`
	EndorsementCode     string `form:"endorsementCode"`
}

// StudentUpdateRequest updates only the fields present in the form; nil
// means "leave unchanged".
type StudentUpdateRequest struct {
	Name                *string `form:"name"`
	FatherName          *string `form:"fatherName"`
	DOB                 *string `form:"dob"`
	Gender              *string `form:"gender"`
	ProgramApplied      *string `form:"programApplied"`
	Specialization      *string `form:"specialization"`
	Session             *string `form:"session"`
	Country             *string `form:"country"`
	AcademicPartnerCode *string `form:"academicPartnerCode"`
	EndorsementCode     *string `form:"endorsementCode"`
}

// StudentResponse wraps a single student for create/update replies.
type StudentResponse struct {
	Message string          `json:"message"`
	Student *models.Student `json:"student"`
}

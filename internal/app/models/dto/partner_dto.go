package dto

import "github.com/e3mc/bschool-admin/internal/app/models"

// PartnerCreateRequest binds the multipart fields of the partner
// onboarding form. The images[] parts are read separately.
type PartnerCreateRequest struct {
	APCode         string `form:"apCode" binding:"required"`
	InstituteType  string `form:"instituteType" binding:"required"`
	ContactPerson  string `form:"contactPerson" binding:"required"`
	ContactNumber  string `form:"contactNumber" binding:"required"`
	Country        string `form:"country" binding:"required"`
	State          string `form:"state" binding:"required"`
	Address        string `form:"address" binding:"required"`
	Website        string `form:"website"`
	Email          string `form:"email" binding:"required,email"`
	WorkPermitArea string `form:"workPermitArea"`
}

// PartnerUpdateRequest updates only the fields present in the form.
type PartnerUpdateRequest struct {
	APCode         *string `form:"apCode"`
	InstituteType  *string `form:"instituteType"`
	ContactPerson  *string `form:"contactPerson"`
	ContactNumber  *string `form:"contactNumber"`
	Country        *string `form:"country"`
	State          *string `form:"state"`
	Address        *string `form:"address"`
	Website        *string `form:"website"`
	Email          *string `form:"email"`
	WorkPermitArea *string `form:"workPermitArea"`
}

// PartnerResponse wraps a single partner for create/update replies.
type PartnerResponse struct {
	Message string                  `json:"message"`
	Partner *models.AcademicPartner `json:"partner"`
}

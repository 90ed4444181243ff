package dto

import "github.com/e3mc/bschool-admin/internal/app/models"

// FormCreateRequest binds the scalar multipart fields of the admission
// form. The six document groups are read from the multipart form directly.
type FormCreateRequest struct {
	FirstName             string `form:"firstName" binding:"required"`
	LastName              string `form:"lastName" binding:"required"`
	Email                 string `form:"email" binding:"required,email"`
	Phone                 string `form:"phone" binding:"required"`
	DOB                   string `form:"dob"`
	Gender                string `form:"gender"`
	Country               string `form:"country"`
	FatherName            string `form:"fatherName"`
	MotherName            string `form:"motherName"`
	MaritalStatus         string `form:"maritalStatus"`
	HighestQualifications string `form:"highestQualifications"`
	AddressLine1          string `form:"addressLine1"`
	AddressLine2          string `form:"addressLine2"`
	City                  string `form:"city"`
	State                 string `form:"state"`
	EducationType         string `form:"education_type"`
	EmploymentType        string `form:"employment_type"`
	IdentificationType    string `form:"identification_type"`
	AwardsType            string `form:"awards_type"`
	PurposeType           string `form:"purpose_type"`
}

// FormPatchRequest is the whitelist of scalar fields PATCH may touch.
// Document lists are never modified through PATCH.
type FormPatchRequest struct {
	FirstName             *string `json:"firstName"`
	LastName              *string `json:"lastName"`
	Email                 *string `json:"email"`
	Phone                 *string `json:"phone"`
	DOB                   *string `json:"dob"`
	Gender                *string `json:"gender"`
	Country               *string `json:"country"`
	FatherName            *string `json:"fatherName"`
	MotherName            *string `json:"motherName"`
	MaritalStatus         *string `json:"maritalStatus"`
	HighestQualifications *string `json:"highestQualifications"`
	AddressLine1          *string `json:"addressLine1"`
	AddressLine2          *string `json:"addressLine2"`
	City                  *string `json:"city"`
	State                 *string `json:"state"`
}

// FormListResponse is the paginated admin listing of admission forms.
type FormListResponse struct {
	Items []models.Form `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
}

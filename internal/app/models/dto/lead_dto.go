package dto

import "github.com/e3mc/bschool-admin/internal/app/models"

// BrochureCreateRequest is the request-info form body.
type BrochureCreateRequest struct {
	FullName       string `json:"fullName" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
	CourseInterest string `json:"courseInterest"`
	AgreeToUpdates bool   `json:"agreeToUpdates"`
}

// BrochureResponse reports a brochure submission. Success is false when
// the record was stored but the brochure email could not be sent.
type BrochureResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Data    *models.BrochureRequest `json:"data"`
}

// BrochureListResponse is the paginated admin listing of brochure leads.
type BrochureListResponse struct {
	Success     bool                     `json:"success"`
	Data        []models.BrochureRequest `json:"data"`
	Total       int64                    `json:"total"`
	TotalPages  int                      `json:"totalPages"`
	CurrentPage int                      `json:"currentPage"`
}

// BrochureItemResponse wraps a single brochure lead.
type BrochureItemResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message,omitempty"`
	Data    *models.BrochureRequest `json:"data"`
}

// CounsellingCreateRequest is the schedule-counselling form body.
// AgreedToTerms carries no binding tag; the service rejects an unticked
// box with its own message.
type CounsellingCreateRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	PhoneCode     string `json:"phoneCode" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	AgreedToTerms bool   `json:"agreedToTerms"`
}

// CounsellingResponse wraps a single counselling request.
type CounsellingResponse struct {
	Message string              `json:"message"`
	Data    *models.Counselling `json:"data"`
}

// PartnerCounselingCreateRequest is the partner counselling form body.
type PartnerCounselingCreateRequest struct {
	FullName      string `json:"fullName" binding:"required"`
	EmailAddress  string `json:"emailAddress" binding:"required,email"`
	PhoneNumber   string `json:"phoneNumber" binding:"required"`
	UserMessage   string `json:"userMessage"`
	TermsAccepted bool   `json:"termsAccepted"`
}

// PartnerCounselingResponse wraps a single partner counselling request.
type PartnerCounselingResponse struct {
	Message string                    `json:"message"`
	Data    *models.PartnerCounseling `json:"data"`
}

// PartnerCounselingListResponse is the counted admin listing.
type PartnerCounselingListResponse struct {
	Count int64                      `json:"count"`
	Data  []models.PartnerCounseling `json:"data"`
}

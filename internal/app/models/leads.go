package models

import "time"

// BrochureRequest is a lead captured by the request-info form. Submitting
// one also emails the requested brochure to the lead.
type BrochureRequest struct {
	ID             int64     `json:"id" db:"id"`
	FullName       string    `json:"fullName" db:"full_name"`
	Email          string    `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	CourseInterest string    `json:"courseInterest" db:"course_interest"`
	AgreeToUpdates bool      `json:"agreeToUpdates" db:"agree_to_updates"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// Counselling is a scheduled counselling request from the public site.
type Counselling struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"`
	PhoneCode     string    `json:"phoneCode" db:"phone_code"`
	Phone         string    `json:"phone" db:"phone"`
	AgreedToTerms bool      `json:"agreedToTerms" db:"agreed_to_terms"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// PartnerCounseling is a counselling request from a prospective partner.
type PartnerCounseling struct {
	ID            int64     `json:"id" db:"id"`
	FullName      string    `json:"fullName" db:"full_name"`
	EmailAddress  string    `json:"emailAddress" db:"email_address"`
	PhoneNumber   string    `json:"phoneNumber" db:"phone_number"`
	UserMessage   string    `json:"userMessage" db:"user_message"`
	TermsAccepted bool      `json:"termsAccepted" db:"terms_accepted"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

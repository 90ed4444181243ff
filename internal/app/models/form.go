package models

import "time"

// Form is a full admission form submission. It carries six independent
// document lists; deleting a form attempts deletion of every file across
// all of them.
type Form struct {
	ID                    int64  `json:"id" db:"id"`
	FirstName             string `json:"firstName" db:"first_name"`
	LastName              string `json:"lastName" db:"last_name"`
	Email                 string `json:"email" db:"email"`
	Phone                 string `json:"phone" db:"phone"`
	DOB                   string `json:"dob" db:"dob"`
	Gender                string `json:"gender" db:"gender"`
	Country               string `json:"country" db:"country"`
	FatherName            string `json:"fatherName" db:"father_name"`
	MotherName            string `json:"motherName" db:"mother_name"`
	MaritalStatus         string `json:"maritalStatus" db:"marital_status"`
	HighestQualifications string `json:"highestQualifications" db:"highest_qualifications"`
	AddressLine1          string `json:"addressLine1" db:"address_line1"`
	AddressLine2          string `json:"addressLine2" db:"address_line2"`
	City                  string `json:"city" db:"city"`
	State                 string `json:"state" db:"state"`

	EducationType      string `json:"education_type" db:"education_type"`
	EmploymentType     string `json:"employment_type" db:"employment_type"`
	IdentificationType string `json:"identification_type" db:"identification_type"`
	AwardsType         string `json:"awards_type" db:"awards_type"`
	PurposeType        string `json:"purpose_type" db:"purpose_type"`

	EducationDocuments      []FileMeta `json:"education_documents" db:"education_documents"`
	EmploymentDocuments     []FileMeta `json:"employment_documents" db:"employment_documents"`
	IdentificationDocuments []FileMeta `json:"identification_documents" db:"identification_documents"`
	AwardsDocuments         []FileMeta `json:"awards_documents" db:"awards_documents"`
	PurposeDocuments        []FileMeta `json:"purpose_documents" db:"purpose_documents"`
	ResumeDocuments         []FileMeta `json:"resume_documents" db:"resume_documents"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// AllFiles returns every file referenced by the form, across all six lists.
func (f *Form) AllFiles() []FileMeta {
	lists := [][]FileMeta{
		f.EducationDocuments,
		f.EmploymentDocuments,
		f.IdentificationDocuments,
		f.AwardsDocuments,
		f.PurposeDocuments,
		f.ResumeDocuments,
	}
	var all []FileMeta
	for _, l := range lists {
		all = append(all, l...)
	}
	return all
}

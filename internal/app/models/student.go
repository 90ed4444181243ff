package models

import "time"

// Student is a verification record created through the student
// verification form. Image and DocFile are single-slot attachments that
// are replaced (and the old file removed) on update.
type Student struct {
	ID                  int64     `json:"id" db:"id"`
	Image               *FileMeta `json:"image" db:"image"`
	Name                string    `json:"name" db:"name"`
	FatherName          string    `json:"fatherName" db:"father_name"`
	DOB                 string    `json:"dob" db:"dob"`
	Gender              string    `json:"gender" db:"gender"`
	ProgramApplied      string    `json:"programApplied" db:"program_applied"`
	Specialization      string    `json:"specialization" db:"specialization"`
	Session             string    `json:"session" db:"session"`
	Country             string    `json:"country" db:"country"`
	DocFile             *FileMeta `json:"docFile" db:"doc_file"`
	AcademicPartnerCode string    `json:"academicPartnerCode" db:"academic_partner_code"`
	EndorsementCode     string    `json:"endorsementCode" db:"endorsement_code"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at"`
}

package models

import "time"

// AcademicPartner is a partner institute. APCode is unique across all
// partners and enforced at write time.
type AcademicPartner struct {
	ID             int64      `json:"id" db:"id"`
	APCode         string     `json:"apCode" db:"ap_code"`
	InstituteType  string     `json:"instituteType" db:"institute_type"`
	ContactPerson  string     `json:"contactPerson" db:"contact_person"`
	ContactNumber  string     `json:"contactNumber" db:"contact_number"`
	Country        string     `json:"country" db:"country"`
	State          string     `json:"state" db:"state"`
	Address        string     `json:"address" db:"address"`
	Website        string     `json:"website" db:"website"`
	Email          string     `json:"email" db:"email"`
	WorkPermitArea string     `json:"workPermitArea" db:"work_permit_area"`
	Images         []FileMeta `json:"images" db:"images"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}

package models

import "time"

// Application is a short apply-now submission, distinct from the full
// admission Form.
type Application struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	DateOfBirth string    `json:"dateOfBirth" db:"date_of_birth"`
	Phone       string    `json:"phone" db:"phone"`
	ZipCode     string    `json:"zipCode" db:"zip_code"`
	Status      string    `json:"status" db:"status"`
	Address     string    `json:"address" db:"address"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

package dto

import "github.com/e3mc/bschool-admin/internal/app/models"

// ApplicationCreateRequest is the JSON body of the apply-now form.
type ApplicationCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	DateOfBirth string `json:"dateOfBirth"`
	Phone       string `json:"phone" binding:"required"`
	ZipCode     string `json:"zipCode" binding:"required"`
	Status      string `json:"status" binding:"required"`
	Address     string `json:"address" binding:"required"`
}

// ApplicationResponse wraps a single application for mutation replies.
type ApplicationResponse struct {
	Message string              `json:"message"`
	Data    *models.Application `json:"data"`
}

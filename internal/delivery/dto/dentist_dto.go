package dto

import "time"

// Request DTOs

type CreateDentistRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Specialization string `json:"specialization" validate:"required,max=100"`
	Phone          string `json:"phone" validate:"omitempty,max=15"`
	Email          string `json:"email" validate:"omitempty,email"`
	LicenseNumber  string `json:"license_number" validate:"required,max=20"`
	IsActive       *bool  `json:"is_active" validate:"omitempty"`
}

type UpdateDentistRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Specialization string `json:"specialization" validate:"required,max=100"`
	Phone          string `json:"phone" validate:"omitempty,max=15"`
	Email          string `json:"email" validate:"omitempty,email"`
	LicenseNumber  string `json:"license_number" validate:"required,max=20"`
	IsActive       *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type DentistResponse struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Phone          string    `json:"phone,omitempty"`
	Email          string    `json:"email,omitempty"`
	LicenseNumber  string    `json:"license_number"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

type DentistListResponse struct {
	Dentists []DentistResponse `json:"dentists"`
	Total    int               `json:"total"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	Name             string `json:"name" validate:"required,min=2,max=100"`
	Gender           string `json:"gender" validate:"required,oneof=M F"`
	DateOfBirth      string `json:"date_of_birth" validate:"required"` // Format: YYYY-MM-DD
	Phone            string `json:"phone" validate:"required,min=9,max=17"`
	Email            string `json:"email" validate:"omitempty,email"`
	Address          string `json:"address" validate:"omitempty"`
	Allergy          string `json:"allergy" validate:"omitempty"`
	MedicalHistory   string `json:"medical_history" validate:"omitempty"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty,max=100"`
	EmergencyPhone   string `json:"emergency_phone" validate:"omitempty,max=17"`
}

type UpdatePatientRequest struct {
	Name             string `json:"name" validate:"required,min=2,max=100"`
	Gender           string `json:"gender" validate:"required,oneof=M F"`
	DateOfBirth      string `json:"date_of_birth" validate:"required"` // Format: YYYY-MM-DD
	Phone            string `json:"phone" validate:"required,min=9,max=17"`
	Email            string `json:"email" validate:"omitempty,email"`
	Address          string `json:"address" validate:"omitempty"`
	Allergy          string `json:"allergy" validate:"omitempty"`
	MedicalHistory   string `json:"medical_history" validate:"omitempty"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty,max=100"`
	EmergencyPhone   string `json:"emergency_phone" validate:"omitempty,max=17"`
}

// Response DTOs

type PatientResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Gender           string    `json:"gender"`
	DateOfBirth      string    `json:"date_of_birth"`
	Age              int       `json:"age"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email,omitempty"`
	Address          string    `json:"address,omitempty"`
	Allergy          string    `json:"allergy,omitempty"`
	MedicalHistory   string    `json:"medical_history,omitempty"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
	EmergencyPhone   string    `json:"emergency_phone,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

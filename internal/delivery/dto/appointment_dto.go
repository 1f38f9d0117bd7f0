package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// BookAppointmentRequest creates a new appointment in status "scheduled".
// PatientID is required for staff actors; patient actors always book for
// their own linked record and may omit it.
type BookAppointmentRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"omitempty"`
	DentistID int       `json:"dentist_id" validate:"required,min=1"`
	ServiceID int       `json:"service_id" validate:"required,min=1"`
	Date      string    `json:"date" validate:"required"`       // Format: YYYY-MM-DD
	StartTime string    `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime   string    `json:"end_time" validate:"required"`   // Format: HH:MM
	Notes     string    `json:"notes" validate:"omitempty"`
}

// EditAppointmentRequest reschedules or annotates an appointment. Omitted
// fields keep their current values.
type EditAppointmentRequest struct {
	DentistID *int    `json:"dentist_id" validate:"omitempty,min=1"`
	ServiceID *int    `json:"service_id" validate:"omitempty,min=1"`
	Date      *string `json:"date" validate:"omitempty"`       // Format: YYYY-MM-DD
	StartTime *string `json:"start_time" validate:"omitempty"` // Format: HH:MM
	EndTime   *string `json:"end_time" validate:"omitempty"`   // Format: HH:MM
	Notes     *string `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          uuid.UUID        `json:"id"`
	PatientID   uuid.UUID        `json:"patient_id"`
	DentistID   int              `json:"dentist_id"`
	ServiceID   int              `json:"service_id"`
	Date        string           `json:"date"`
	StartTime   string           `json:"start_time"`
	EndTime     string           `json:"end_time"`
	Status      string           `json:"status"`
	Notes       string           `json:"notes,omitempty"`
	CreatedByID uuid.UUID        `json:"created_by_id"`
	Patient     *PatientResponse `json:"patient,omitempty"`
	Dentist     *DentistResponse `json:"dentist,omitempty"`
	Service     *ServiceResponse `json:"service,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

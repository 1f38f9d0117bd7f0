package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is one of the five persisted status tokens. Any other
// token is invalid input and must never reach storage.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

// AppointmentStatuses lists every valid status token in display order.
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusConfirmed,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
	AppointmentStatusNoShow,
}

// ParseAppointmentStatus validates a raw status token.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	for _, status := range AppointmentStatuses {
		if string(status) == s {
			return status, true
		}
	}
	return "", false
}

// Valid reports whether the status is one of the five known tokens.
func (s AppointmentStatus) Valid() bool {
	_, ok := ParseAppointmentStatus(string(s))
	return ok
}

// Appointment is the central scheduling entity. The composite unique index
// over (dentist_id, appointment_date, start_time) is the storage-level guard
// against dentist double-booking; the patient axis is checked in code only.
// CreatedByID is immutable once set and records which actor is accountable
// for the self-confirmation restriction.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DentistID       int               `gorm:"not null;uniqueIndex:uq_appointments_dentist_slot" json:"dentist_id"`
	ServiceID       int               `gorm:"not null;index" json:"service_id"`
	AppointmentDate time.Time         `gorm:"type:date;not null;uniqueIndex:uq_appointments_dentist_slot;index" json:"appointment_date"`
	StartTime       string            `gorm:"type:time;not null;uniqueIndex:uq_appointments_dentist_slot" json:"start_time"`
	EndTime         string            `gorm:"type:time;not null" json:"end_time"`
	Status          AppointmentStatus `gorm:"type:appointment_status;not null;default:'scheduled';index" json:"status"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedByID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"created_by_id"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient   Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Dentist   Dentist `gorm:"foreignKey:DentistID" json:"dentist,omitempty"`
	Service   Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	CreatedBy User    `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsOwnedBy reports whether the appointment belongs to the given patient record.
func (a *Appointment) IsOwnedBy(patientID uuid.UUID) bool {
	return a.PatientID == patientID
}

// IsCreatedBy reports whether the given actor created the appointment.
// Confirmation must come from the other party to the booking.
func (a *Appointment) IsCreatedBy(userID uuid.UUID) bool {
	return a.CreatedByID == userID
}

// IsCancelled checks if the appointment is cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsCompleted checks if the appointment is completed.
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

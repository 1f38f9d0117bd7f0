package entity

import "github.com/google/uuid"

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	Status    string    // one of the five status tokens, empty for all
	PatientID uuid.UUID // restrict to one patient, uuid.Nil for all
	DentistID int       // restrict to one dentist, zero for all
	StartAt   string    // Format: YYYY-MM-DD
	EndAt     string    // Format: YYYY-MM-DD
}

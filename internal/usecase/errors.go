package usecase

import "errors"

// Validation failures (malformed or missing input).
var (
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
	ErrInvalidTimeRange  = errors.New("end time must be after start time")
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrInvalidMonth      = errors.New("month must be between 1 and 12")
	ErrPatientRequired   = errors.New("patient_id is required")
	ErrDentistInactive   = errors.New("dentist is not accepting new appointments")
	ErrServiceInactive   = errors.New("service is not available for new appointments")
)

// Conflicts (double-booking on either axis, duplicate records).
var (
	ErrDentistSlotTaken   = errors.New("dentist already has an appointment at this time")
	ErrPatientSlotTaken   = errors.New("patient already has an appointment at this time")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrLicenseExists      = errors.New("license number already exists")
)

// Permission failures (role or ownership rule violated).
var (
	ErrUnauthenticated = errors.New("no authenticated user in request context")
	ErrForbidden       = errors.New("you don't have permission to perform this action")
	ErrSelfConfirm     = errors.New("an appointment cannot be confirmed by the actor who created it")
	ErrNoPatientRecord = errors.New("no patient record is linked to this account")
)

// Missing entities.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrDentistNotFound     = errors.New("dentist not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// Authentication and password-reset failures.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrCodeInvalid        = errors.New("one-time code does not match")
	ErrCodeExpired        = errors.New("one-time code has expired")
	ErrResetTicketInvalid = errors.New("reset ticket is invalid or already used")
	ErrEmailDelivery      = errors.New("failed to deliver email")
)

package usecase

import (
	"context"
	"testing"
	"time"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newAppointmentFixture() (*MockAppointmentRepository, *MockPatientRepository, *MockDentistRepository, *MockServiceRepository, *MockAuditService, AppointmentUsecase) {
	appointmentRepo := &MockAppointmentRepository{}
	patientRepo := &MockPatientRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
			return &entity.Patient{ID: id, Name: "Jordan Reyes"}, nil
		},
	}
	dentistRepo := &MockDentistRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*entity.Dentist, error) {
			return &entity.Dentist{ID: id, Name: "Dr. Chen", IsActive: true}, nil
		},
	}
	serviceRepo := &MockServiceRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*entity.Service, error) {
			return &entity.Service{ID: id, Name: "Cleaning", IsActive: true}, nil
		},
	}
	audit := &MockAuditService{}
	uc := NewAppointmentUsecase(testLogger(), appointmentRepo, patientRepo, dentistRepo, serviceRepo, audit)
	return appointmentRepo, patientRepo, dentistRepo, serviceRepo, audit, uc
}

func validBookRequest() *dto.BookAppointmentRequest {
	return &dto.BookAppointmentRequest{
		DentistID: 1,
		ServiceID: 1,
		Date:      "2026-09-15",
		StartTime: "10:00",
		EndTime:   "10:30",
	}
}

func TestBook_PatientActorUsesOwnRecord(t *testing.T) {
	appointmentRepo, _, _, _, audit, uc := newAppointmentFixture()

	userID := uuid.New()
	patientID := uuid.New()

	var created *entity.Appointment
	appointmentRepo.CreateFunc = func(ctx context.Context, a *entity.Appointment) error {
		a.ID = uuid.New()
		created = a
		return nil
	}
	appointmentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
		return created, nil
	}

	resp, err := uc.Book(patientContext(userID, patientID), validBookRequest())
	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, patientID, created.PatientID)
	assert.Equal(t, userID, created.CreatedByID)
	assert.Equal(t, entity.AppointmentStatusScheduled, created.Status)
	assert.Contains(t, audit.Actions, entity.AuditActionAppointmentCreate)
}

func TestBook_PatientCannotBookForAnotherPatient(t *testing.T) {
	_, _, _, _, _, uc := newAppointmentFixture()

	req := validBookRequest()
	req.PatientID = uuid.New() // someone else's record

	_, err := uc.Book(patientContext(uuid.New(), uuid.New()), req)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestBook_StaffMustNamePatient(t *testing.T) {
	_, _, _, _, _, uc := newAppointmentFixture()

	_, err := uc.Book(staffContext(uuid.New()), validBookRequest())
	assert.ErrorIs(t, err, ErrPatientRequired)
}

func TestBook_DentistSlotConflict(t *testing.T) {
	appointmentRepo, _, _, _, _, uc := newAppointmentFixture()

	appointmentRepo.ExistsDentistSlotFunc = func(ctx context.Context, dentistID int, date time.Time, startTime string, excludeID uuid.UUID) (bool, error) {
		return true, nil
	}

	_, err := uc.Book(patientContext(uuid.New(), uuid.New()), validBookRequest())
	assert.ErrorIs(t, err, ErrDentistSlotTaken)
}

func TestBook_PatientSlotConflict(t *testing.T) {
	appointmentRepo, _, _, _, _, uc := newAppointmentFixture()

	appointmentRepo.ExistsPatientSlotFunc = func(ctx context.Context, patientID uuid.UUID, date time.Time, startTime string, excludeID uuid.UUID) (bool, error) {
		return true, nil
	}

	_, err := uc.Book(patientContext(uuid.New(), uuid.New()), validBookRequest())
	assert.ErrorIs(t, err, ErrPatientSlotTaken)
}

func TestBook_InactiveDentistRejected(t *testing.T) {
	_, _, dentistRepo, _, _, uc := newAppointmentFixture()

	dentistRepo.FindByIDFunc = func(ctx context.Context, id int) (*entity.Dentist, error) {
		return &entity.Dentist{ID: id, IsActive: false}, nil
	}

	_, err := uc.Book(patientContext(uuid.New(), uuid.New()), validBookRequest())
	assert.ErrorIs(t, err, ErrDentistInactive)
}

func TestBook_InactiveServiceRejected(t *testing.T) {
	_, _, _, serviceRepo, _, uc := newAppointmentFixture()

	serviceRepo.FindByIDFunc = func(ctx context.Context, id int) (*entity.Service, error) {
		return &entity.Service{ID: id, IsActive: false}, nil
	}

	_, err := uc.Book(patientContext(uuid.New(), uuid.New()), validBookRequest())
	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestBook_TimeValidation(t *testing.T) {
	_, _, _, _, _, uc := newAppointmentFixture()
	ctx := patientContext(uuid.New(), uuid.New())

	req := validBookRequest()
	req.Date = "15-09-2026"
	_, err := uc.Book(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	req = validBookRequest()
	req.StartTime = "25:99"
	_, err = uc.Book(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	req = validBookRequest()
	req.StartTime = "11:00"
	req.EndTime = "10:30"
	_, err = uc.Book(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func confirmFixture(createdBy uuid.UUID, ownedBy uuid.UUID) *entity.Appointment {
	return &entity.Appointment{
		ID:              uuid.New(),
		PatientID:       ownedBy,
		DentistID:       1,
		ServiceID:       1,
		AppointmentDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		EndTime:         "10:30",
		Status:          entity.AppointmentStatusScheduled,
		CreatedByID:     createdBy,
	}
}

func TestConfirm_PatientCannotConfirmOwnBooking(t *testing.T) {
	appointmentRepo, _, _, _, _, uc := newAppointmentFixture()

	userID := uuid.New()
	patientID := uuid.New()
	appointment := confirmFixture(userID, patientID)
	appointmentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
		return appointment, nil
	}

	_, err := uc.Confirm(patientContext(userID, patientID), appointment.ID)
	assert.ErrorIs(t, err, ErrSelfConfirm)
}

func TestConfirm_StaffCannotConfirmOwnBooking(t *testing.T) {
	appointmentRepo, _, _, _, _, uc := newAppointmentFixture()

	staffID := uuid.New()
	appointment := confirmFixture(staffID, uuid.New())
	appointmentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
		return appointment, nil
	}

	_, err := uc.Confirm(staffContext(staffID), appointment.ID)
	assert.ErrorIs(t, err, ErrSelfConfirm)
}

func TestConfirm_OtherPartySucceeds(t *testing.T) {
	appointmentRepo, _, _, _, audit, uc := newAppointmentFixture()

	patientUserID := uuid.New()
	appointment := confirmFixture(patientUserID, uuid.New())
	appointmentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
		return appointment, nil
	}

	var applied entity.AppointmentStatus
	appointmentRepo.UpdateStatusFunc = func(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) (int64, error) {
		applied = status
		appointment.Status = status
		return 1, nil
	}

	resp, err := uc.Confirm(staffContext(uuid.New()), appointment.ID)
	assert.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusConfirmed, applied)
	assert.Equal(t, string(entity.AppointmentStatusConfirmed), resp.Status)
	assert.Contains(t, audit.Actions, entity.AuditActionAppointmentConfirm)
}

func TestConfirm_PatientCannotSeeOthersAppointment(t *testing.T) {
	appointmentRepo, _, _, _, _, uc := newAppointmentFixture()

	appointment := confirmFixture(uuid.New(), uuid.New())
	appointmentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
		return appointment, nil
	}

	// Different patient record: the appointment reads as not found.
	_, err := uc.Confirm(patientContext(uuid.New(), uuid.New()), appointment.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_PatientCancelsOwnAppointment(t *testing.T) {
	appointmentRepo, _, _, _, _, uc := newAppointmentFixture()

	patientID := uuid.New()
	appointment := confirmFixture(uuid.New(), patientID)
	appointmentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
		return appointment, nil
	}

	var applied entity.AppointmentStatus
	appointmentRepo.UpdateStatusFunc = func(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) (int64, error) {
		applied = status
		appointment.Status = status
		return 1, nil
	}

	_, err := uc.Cancel(patientContext(uuid.New(), patientID), appointment.ID)
	assert.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCancelled, applied)
}

func TestCancel_PatientCannotCancelOthersAppointment(t *testing.T) {
	appointmentRepo, _, _, _, _, uc := newAppointmentFixture()

	appointment := confirmFixture(uuid.New(), uuid.New())
	appointmentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
		return appointment, nil
	}

	_, err := uc.Cancel(patientContext(uuid.New(), uuid.New()), appointment.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestEdit_NoOpSaveExcludesOwnRow(t *testing.T) {
	appointmentRepo, _, _, _, _, uc := newAppointmentFixture()

	staffID := uuid.New()
	appointment := confirmFixture(staffID, uuid.New())
	appointmentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
		return appointment, nil
	}

	var dentistExclude, patientExclude uuid.UUID
	appointmentRepo.ExistsDentistSlotFunc = func(ctx context.Context, dentistID int, date time.Time, startTime string, excludeID uuid.UUID) (bool, error) {
		dentistExclude = excludeID
		return false, nil
	}
	appointmentRepo.ExistsPatientSlotFunc = func(ctx context.Context, patientID uuid.UUID, date time.Time, startTime string, excludeID uuid.UUID) (bool, error) {
		patientExclude = excludeID
		return false, nil
	}

	// Re-submitting the current slot unchanged must not self-collide.
	_, err := uc.Edit(staffContext(staffID), appointment.ID, &dto.EditAppointmentRequest{})
	assert.NoError(t, err)
	assert.Equal(t, appointment.ID, dentistExclude)
	assert.Equal(t, appointment.ID, patientExclude)
}

func TestEdit_PatientCannotEditStaffCreatedAppointment(t *testing.T) {
	appointmentRepo, _, _, _, _, uc := newAppointmentFixture()

	patientID := uuid.New()
	appointment := confirmFixture(uuid.New(), patientID) // created by staff
	appointmentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
		return appointment, nil
	}

	_, err := uc.Edit(patientContext(uuid.New(), patientID), appointment.ID, &dto.EditAppointmentRequest{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestEdit_CreatedByNeverChanges(t *testing.T) {
	appointmentRepo, _, _, _, _, uc := newAppointmentFixture()

	creatorID := uuid.New()
	appointment := confirmFixture(creatorID, uuid.New())
	appointmentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
		return appointment, nil
	}

	var saved *entity.Appointment
	appointmentRepo.UpdateFunc = func(ctx context.Context, a *entity.Appointment) error {
		saved = a
		return nil
	}

	notes := "rescheduled by front desk"
	_, err := uc.Edit(staffContext(uuid.New()), appointment.ID, &dto.EditAppointmentRequest{Notes: &notes})
	assert.NoError(t, err)
	assert.Equal(t, creatorID, saved.CreatedByID)
	assert.Equal(t, notes, saved.Notes)
}

func TestMarkCompleted_RequiresStaff(t *testing.T) {
	_, _, _, _, _, uc := newAppointmentFixture()

	_, err := uc.MarkCompleted(patientContext(uuid.New(), uuid.New()), uuid.New())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateStatus_RejectsUnknownToken(t *testing.T) {
	_, _, _, _, _, uc := newAppointmentFixture()

	_, err := uc.UpdateStatus(staffContext(uuid.New()), uuid.New(), "pending")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_MissingAppointment(t *testing.T) {
	appointmentRepo, _, _, _, _, uc := newAppointmentFixture()

	appointmentRepo.UpdateStatusFunc = func(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) (int64, error) {
		return 0, nil
	}

	_, err := uc.UpdateStatus(staffContext(uuid.New()), uuid.New(), "no_show")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_PatientScopedToOwnAppointments(t *testing.T) {
	appointmentRepo, _, _, _, _, uc := newAppointmentFixture()

	patientID := uuid.New()
	var gotFilter *entity.AppointmentFilter
	appointmentRepo.FindAllFunc = func(ctx context.Context, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
		gotFilter = filter
		return nil, nil
	}

	_, err := uc.List(patientContext(uuid.New(), patientID), "")
	assert.NoError(t, err)
	assert.Equal(t, patientID, gotFilter.PatientID)
}

func TestList_InvalidStatusFilter(t *testing.T) {
	_, _, _, _, _, uc := newAppointmentFixture()

	_, err := uc.List(staffContext(uuid.New()), "bogus")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

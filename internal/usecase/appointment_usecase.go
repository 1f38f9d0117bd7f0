package usecase

import (
	"context"
	"time"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"
	"dental-clinic-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AppointmentUsecase interface {
	Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	Confirm(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	Edit(ctx context.Context, appointmentID uuid.UUID, req *dto.EditAppointmentRequest) (*dto.AppointmentResponse, error)
	MarkCompleted(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, appointmentID uuid.UUID, status string) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, appointmentID uuid.UUID) error
	Get(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	List(ctx context.Context, status string) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	dentistRepo     repository.DentistRepository
	serviceRepo     repository.ServiceRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	dentistRepo repository.DentistRepository,
	serviceRepo repository.ServiceRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		dentistRepo:     dentistRepo,
		serviceRepo:     serviceRepo,
		auditService:    auditService,
	}
}

// Book creates a new appointment in status "scheduled".
//
// Flow:
// 1. Resolve the target patient (staff: from request, patient: own record)
// 2. Validate date/time and that dentist and service are active
// 3. Conflict pre-checks on both axes (dentist slot, patient slot)
// 4. Insert; a unique violation from the dentist-slot index maps to the same
//    conflict error, so a losing racer still gets a clean answer
func (u *appointmentUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	act, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireRole(act, entity.RoleIDStaff, entity.RoleIDPatient); err != nil {
		return nil, err
	}

	patientID, err := u.resolvePatientID(act, req.PatientID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	startTime, endTime, err := parseTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if err := u.checkDentistBookable(ctx, req.DentistID); err != nil {
		return nil, err
	}
	if err := u.checkServiceBookable(ctx, req.ServiceID); err != nil {
		return nil, err
	}

	if err := u.checkConflicts(ctx, req.DentistID, patientID, date, startTime, uuid.Nil); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		PatientID:       patientID,
		DentistID:       req.DentistID,
		ServiceID:       req.ServiceID,
		AppointmentDate: date,
		StartTime:       startTime,
		EndTime:         endTime,
		Status:          entity.AppointmentStatusScheduled,
		Notes:           req.Notes,
		CreatedByID:     act.userID,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		// The unique index over (dentist, date, start time) is the true
		// guard against concurrent double-booking.
		if isDuplicateKeyError(err, "uq_appointments_dentist_slot") {
			return nil, ErrDentistSlotTaken
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, &act.userID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), entity.JSON{
		"dentist_id": req.DentistID,
		"date":       req.Date,
		"start_time": startTime,
	})

	u.log.Infof("Appointment booked: id=%s, dentist=%d, date=%s %s", appointment.ID, req.DentistID, req.Date, startTime)
	return u.reload(ctx, appointment)
}

// Confirm applies the other-party rule: the confirmation step represents
// acknowledgment by the party that did not create the booking, so neither a
// patient nor a staff member may confirm an appointment they created
// themselves.
func (u *appointmentUsecase) Confirm(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	act, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireRole(act, entity.RoleIDStaff, entity.RoleIDPatient); err != nil {
		return nil, err
	}

	appointment, err := u.findVisible(ctx, act, appointmentID)
	if err != nil {
		return nil, err
	}

	if appointment.IsCreatedBy(act.userID) {
		return nil, ErrSelfConfirm
	}

	if _, err := u.appointmentRepo.UpdateStatus(ctx, appointmentID, entity.AppointmentStatusConfirmed); err != nil {
		u.log.Warnf("Failed to confirm appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	u.auditService.Record(ctx, &act.userID, entity.AuditActionAppointmentConfirm, "appointment", appointmentID.String(), nil)
	return u.Get(ctx, appointmentID)
}

// Cancel sets the appointment to "cancelled". Patients may cancel only their
// own appointments; staff may cancel any.
func (u *appointmentUsecase) Cancel(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	act, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireRole(act, entity.RoleIDStaff, entity.RoleIDPatient); err != nil {
		return nil, err
	}

	if _, err := u.findVisible(ctx, act, appointmentID); err != nil {
		return nil, err
	}

	if _, err := u.appointmentRepo.UpdateStatus(ctx, appointmentID, entity.AppointmentStatusCancelled); err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	u.auditService.Record(ctx, &act.userID, entity.AuditActionAppointmentCancel, "appointment", appointmentID.String(), nil)
	return u.Get(ctx, appointmentID)
}

// Edit reschedules or annotates an appointment. A patient may edit only
// appointments they own and personally created. Conflict checks are re-run
// against the proposed slot, excluding the appointment's own row so a no-op
// save always succeeds. CreatedByID is never modified.
func (u *appointmentUsecase) Edit(ctx context.Context, appointmentID uuid.UUID, req *dto.EditAppointmentRequest) (*dto.AppointmentResponse, error) {
	act, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireRole(act, entity.RoleIDStaff, entity.RoleIDPatient); err != nil {
		return nil, err
	}

	appointment, err := u.findVisible(ctx, act, appointmentID)
	if err != nil {
		return nil, err
	}
	if act.isPatient() && !appointment.IsCreatedBy(act.userID) {
		return nil, ErrForbidden
	}

	if req.DentistID != nil && *req.DentistID != appointment.DentistID {
		if err := u.checkDentistBookable(ctx, *req.DentistID); err != nil {
			return nil, err
		}
		appointment.DentistID = *req.DentistID
	}
	if req.ServiceID != nil && *req.ServiceID != appointment.ServiceID {
		if err := u.checkServiceBookable(ctx, *req.ServiceID); err != nil {
			return nil, err
		}
		appointment.ServiceID = *req.ServiceID
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		appointment.AppointmentDate = date
	}
	if req.StartTime != nil {
		appointment.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		appointment.EndTime = *req.EndTime
	}
	startTime, endTime, err := parseTimeRange(appointment.StartTime, appointment.EndTime)
	if err != nil {
		return nil, err
	}
	appointment.StartTime = startTime
	appointment.EndTime = endTime
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if err := u.checkConflicts(ctx, appointment.DentistID, appointment.PatientID, appointment.AppointmentDate, appointment.StartTime, appointment.ID); err != nil {
		return nil, err
	}

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		if isDuplicateKeyError(err, "uq_appointments_dentist_slot") {
			return nil, ErrDentistSlotTaken
		}
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	u.auditService.Record(ctx, &act.userID, entity.AuditActionAppointmentEdit, "appointment", appointmentID.String(), entity.JSON{
		"dentist_id": appointment.DentistID,
		"date":       appointment.AppointmentDate.Format("2006-01-02"),
		"start_time": appointment.StartTime,
	})
	return u.Get(ctx, appointmentID)
}

// MarkCompleted is staff-only and feeds the revenue aggregation.
func (u *appointmentUsecase) MarkCompleted(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	act, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireRole(act, entity.RoleIDStaff); err != nil {
		return nil, err
	}

	affected, err := u.appointmentRepo.UpdateStatus(ctx, appointmentID, entity.AppointmentStatusCompleted)
	if err != nil {
		u.log.Warnf("Failed to complete appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAppointmentNotFound
	}

	u.auditService.Record(ctx, &act.userID, entity.AuditActionAppointmentComplete, "appointment", appointmentID.String(), nil)
	return u.Get(ctx, appointmentID)
}

// UpdateStatus is the staff escape hatch covering the remaining tokens such
// as "no_show". An unknown token fails the write entirely.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, status string) (*dto.AppointmentResponse, error) {
	act, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireRole(act, entity.RoleIDStaff); err != nil {
		return nil, err
	}

	parsed, ok := entity.ParseAppointmentStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	affected, err := u.appointmentRepo.UpdateStatus(ctx, appointmentID, parsed)
	if err != nil {
		u.log.Warnf("Failed to update status of appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAppointmentNotFound
	}

	u.auditService.Record(ctx, &act.userID, entity.AuditActionAppointmentStatus, "appointment", appointmentID.String(), entity.JSON{
		"status": status,
	})
	return u.Get(ctx, appointmentID)
}

func (u *appointmentUsecase) Delete(ctx context.Context, appointmentID uuid.UUID) error {
	act, err := actorFromContext(ctx)
	if err != nil {
		return err
	}
	if err := requireRole(act, entity.RoleIDStaff); err != nil {
		return err
	}

	affected, err := u.appointmentRepo.Delete(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", appointmentID, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	u.auditService.Record(ctx, &act.userID, entity.AuditActionAppointmentDelete, "appointment", appointmentID.String(), nil)
	return nil
}

func (u *appointmentUsecase) Get(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	act, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	appointment, err := u.findVisible(ctx, act, appointmentID)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

// List returns all appointments for staff, optionally filtered by status,
// and only the actor's own appointments for patients.
func (u *appointmentUsecase) List(ctx context.Context, status string) (*dto.AppointmentListResponse, error) {
	act, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireRole(act, entity.RoleIDStaff, entity.RoleIDPatient); err != nil {
		return nil, err
	}

	if status != "" {
		if _, ok := entity.ParseAppointmentStatus(status); !ok {
			return nil, ErrInvalidStatus
		}
	}

	filter := &entity.AppointmentFilter{Status: status}
	if act.isPatient() {
		if act.patientID == nil {
			return nil, ErrNoPatientRecord
		}
		filter.PatientID = *act.patientID
	}

	appointments, err := u.appointmentRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// resolvePatientID picks the patient record an operation applies to. Staff
// must name a patient; a patient actor always acts on their linked record.
func (u *appointmentUsecase) resolvePatientID(act *actor, requested uuid.UUID) (uuid.UUID, error) {
	if act.isStaff() {
		if requested == uuid.Nil {
			return uuid.Nil, ErrPatientRequired
		}
		return requested, nil
	}

	if act.patientID == nil {
		return uuid.Nil, ErrNoPatientRecord
	}
	if requested != uuid.Nil && requested != *act.patientID {
		return uuid.Nil, ErrForbidden
	}
	return *act.patientID, nil
}

// findVisible loads an appointment subject to ownership: staff see every
// appointment, a patient only their own (anything else reads as not found).
func (u *appointmentUsecase) findVisible(ctx context.Context, act *actor, appointmentID uuid.UUID) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if act.isPatient() {
		if act.patientID == nil || !appointment.IsOwnedBy(*act.patientID) {
			return nil, ErrAppointmentNotFound
		}
	}
	return appointment, nil
}

// checkConflicts runs both double-booking checks. The dentist axis is also
// backed by a unique index; the patient axis exists in code only.
func (u *appointmentUsecase) checkConflicts(ctx context.Context, dentistID int, patientID uuid.UUID, date time.Time, startTime string, excludeID uuid.UUID) error {
	taken, err := u.appointmentRepo.ExistsDentistSlot(ctx, dentistID, date, startTime, excludeID)
	if err != nil {
		u.log.Warnf("Failed dentist conflict check: %+v", err)
		return err
	}
	if taken {
		return ErrDentistSlotTaken
	}

	taken, err = u.appointmentRepo.ExistsPatientSlot(ctx, patientID, date, startTime, excludeID)
	if err != nil {
		u.log.Warnf("Failed patient conflict check: %+v", err)
		return err
	}
	if taken {
		return ErrPatientSlotTaken
	}
	return nil
}

func (u *appointmentUsecase) checkDentistBookable(ctx context.Context, dentistID int) error {
	dentist, err := u.dentistRepo.FindByID(ctx, dentistID)
	if err != nil {
		u.log.Warnf("Failed to find dentist %d: %+v", dentistID, err)
		return err
	}
	if dentist == nil {
		return ErrDentistNotFound
	}
	if !dentist.IsActive {
		return ErrDentistInactive
	}
	return nil
}

func (u *appointmentUsecase) checkServiceBookable(ctx context.Context, serviceID int) error {
	svc, err := u.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", serviceID, err)
		return err
	}
	if svc == nil {
		return ErrServiceNotFound
	}
	if !svc.IsActive {
		return ErrServiceInactive
	}
	return nil
}

func (u *appointmentUsecase) reload(ctx context.Context, appointment *entity.Appointment) (*dto.AppointmentResponse, error) {
	full, err := u.appointmentRepo.FindByID(ctx, appointment.ID)
	if err != nil || full == nil {
		// Return basic response if reload fails
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(full), nil
}

// parseTimeRange normalizes HH:MM values and enforces start < end.
func parseTimeRange(start, end string) (string, string, error) {
	startAt, err := time.Parse("15:04", start)
	if err != nil {
		return "", "", ErrInvalidTimeFormat
	}
	endAt, err := time.Parse("15:04", end)
	if err != nil {
		return "", "", ErrInvalidTimeFormat
	}
	if !endAt.After(startAt) {
		return "", "", ErrInvalidTimeRange
	}
	return startAt.Format("15:04"), endAt.Format("15:04"), nil
}

package usecase

import (
	"context"
	"time"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PatientUsecase covers the staff-managed patient registry plus the
// self-profile operations a patient actor performs on its own record.
type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	List(ctx context.Context) (*dto.PatientListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetMyProfile(ctx context.Context) (*dto.PatientResponse, error)
	UpdateMyProfile(ctx context.Context, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	act, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireRole(act, entity.RoleIDStaff); err != nil {
		return nil, err
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	patient := &entity.Patient{
		Name:             req.Name,
		Gender:           req.Gender,
		DateOfBirth:      dob,
		Phone:            req.Phone,
		Email:            req.Email,
		Address:          req.Address,
		Allergy:          req.Allergy,
		MedicalHistory:   req.MedicalHistory,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	act, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	// Patients may only read their own record through this endpoint.
	if act.isPatient() && !act.ownsPatient(id) {
		return nil, ErrPatientNotFound
	}

	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) List(ctx context.Context) (*dto.PatientListResponse, error) {
	act, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireRole(act, entity.RoleIDStaff); err != nil {
		return nil, err
	}

	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	act, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireRole(act, entity.RoleIDStaff); err != nil {
		return nil, err
	}
	return u.applyUpdate(ctx, id, req)
}

func (u *patientUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	act, err := actorFromContext(ctx)
	if err != nil {
		return err
	}
	if err := requireRole(act, entity.RoleIDStaff); err != nil {
		return err
	}

	affected, err := u.patientRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}
	return nil
}

// GetMyProfile resolves the patient record linked to the calling account.
func (u *patientUsecase) GetMyProfile(ctx context.Context) (*dto.PatientResponse, error) {
	act, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireRole(act, entity.RoleIDPatient); err != nil {
		return nil, err
	}
	if act.patientID == nil {
		return nil, ErrNoPatientRecord
	}

	patient, err := u.patientRepo.FindByID(ctx, *act.patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrNoPatientRecord
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdateMyProfile(ctx context.Context, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	act, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireRole(act, entity.RoleIDPatient); err != nil {
		return nil, err
	}
	if act.patientID == nil {
		return nil, ErrNoPatientRecord
	}
	return u.applyUpdate(ctx, *act.patientID, req)
}

func (u *patientUsecase) applyUpdate(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	patient.Name = req.Name
	patient.Gender = req.Gender
	patient.DateOfBirth = dob
	patient.Phone = req.Phone
	patient.Email = req.Email
	patient.Address = req.Address
	patient.Allergy = req.Allergy
	patient.MedicalHistory = req.MedicalHistory
	patient.EmergencyContact = req.EmergencyContact
	patient.EmergencyPhone = req.EmergencyPhone

	if err := u.patientRepo.Update(ctx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

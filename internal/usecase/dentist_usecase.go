package usecase

import (
	"context"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// DentistUsecase manages the dentist directory. Mutations are staff-only;
// any authenticated user may browse the active roster when booking.
type DentistUsecase interface {
	Create(ctx context.Context, req *dto.CreateDentistRequest) (*dto.DentistResponse, error)
	Get(ctx context.Context, id int) (*dto.DentistResponse, error)
	List(ctx context.Context) (*dto.DentistListResponse, error)
	ListActive(ctx context.Context) (*dto.DentistListResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateDentistRequest) (*dto.DentistResponse, error)
	Delete(ctx context.Context, id int) error
}

type dentistUsecase struct {
	log         *logrus.Logger
	dentistRepo repository.DentistRepository
}

func NewDentistUsecase(log *logrus.Logger, dentistRepo repository.DentistRepository) DentistUsecase {
	return &dentistUsecase{
		log:         log,
		dentistRepo: dentistRepo,
	}
}

func (u *dentistUsecase) Create(ctx context.Context, req *dto.CreateDentistRequest) (*dto.DentistResponse, error) {
	act, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireRole(act, entity.RoleIDStaff); err != nil {
		return nil, err
	}

	dentist := &entity.Dentist{
		Name:           req.Name,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		Email:          req.Email,
		LicenseNumber:  req.LicenseNumber,
		IsActive:       true,
	}
	if req.IsActive != nil {
		dentist.IsActive = *req.IsActive
	}

	if err := u.dentistRepo.Create(ctx, dentist); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseExists
		}
		u.log.Warnf("Failed to create dentist: %+v", err)
		return nil, err
	}

	return converter.DentistToResponse(dentist), nil
}

func (u *dentistUsecase) Get(ctx context.Context, id int) (*dto.DentistResponse, error) {
	dentist, err := u.dentistRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find dentist: %+v", err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}
	return converter.DentistToResponse(dentist), nil
}

func (u *dentistUsecase) List(ctx context.Context) (*dto.DentistListResponse, error) {
	act, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireRole(act, entity.RoleIDStaff); err != nil {
		return nil, err
	}

	dentists, err := u.dentistRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list dentists: %+v", err)
		return nil, err
	}

	return &dto.DentistListResponse{
		Dentists: converter.DentistsToResponses(dentists),
		Total:    len(dentists),
	}, nil
}

func (u *dentistUsecase) ListActive(ctx context.Context) (*dto.DentistListResponse, error) {
	dentists, err := u.dentistRepo.FindActive(ctx)
	if err != nil {
		u.log.Warnf("Failed to list active dentists: %+v", err)
		return nil, err
	}

	return &dto.DentistListResponse{
		Dentists: converter.DentistsToResponses(dentists),
		Total:    len(dentists),
	}, nil
}

func (u *dentistUsecase) Update(ctx context.Context, id int, req *dto.UpdateDentistRequest) (*dto.DentistResponse, error) {
	act, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireRole(act, entity.RoleIDStaff); err != nil {
		return nil, err
	}

	dentist, err := u.dentistRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find dentist: %+v", err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}

	dentist.Name = req.Name
	dentist.Specialization = req.Specialization
	dentist.Phone = req.Phone
	dentist.Email = req.Email
	dentist.LicenseNumber = req.LicenseNumber
	if req.IsActive != nil {
		dentist.IsActive = *req.IsActive
	}

	if err := u.dentistRepo.Update(ctx, dentist); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseExists
		}
		u.log.Warnf("Failed to update dentist: %+v", err)
		return nil, err
	}

	return converter.DentistToResponse(dentist), nil
}

func (u *dentistUsecase) Delete(ctx context.Context, id int) error {
	act, err := actorFromContext(ctx)
	if err != nil {
		return err
	}
	if err := requireRole(act, entity.RoleIDStaff); err != nil {
		return err
	}

	affected, err := u.dentistRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete dentist: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDentistNotFound
	}
	return nil
}

package usecase

import (
	"context"
	"errors"
	"time"

	"dental-clinic-api/internal/delivery/http/middleware"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// testLogger returns a logger whose output is discarded.
func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(discard{})
	return log
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// staffContext builds a request context carrying a staff actor.
func staffContext(userID uuid.UUID) context.Context {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, userID)
	return context.WithValue(ctx, middleware.RoleIDKey, entity.RoleIDStaff)
}

// patientContext builds a request context carrying a patient actor linked to
// the given patient record.
func patientContext(userID, patientID uuid.UUID) context.Context {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.RoleIDKey, entity.RoleIDPatient)
	return context.WithValue(ctx, middleware.PatientIDKey, patientID)
}

// --- MockAppointmentRepository ---

var _ repository.AppointmentRepository = (*MockAppointmentRepository)(nil)

type MockAppointmentRepository struct {
	CreateFunc               func(ctx context.Context, appointment *entity.Appointment) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindAllFunc              func(ctx context.Context, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	UpdateFunc               func(ctx context.Context, appointment *entity.Appointment) error
	UpdateStatusFunc         func(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) (int64, error)
	DeleteFunc               func(ctx context.Context, id uuid.UUID) (int64, error)
	ExistsDentistSlotFunc    func(ctx context.Context, dentistID int, date time.Time, startTime string, excludeID uuid.UUID) (bool, error)
	ExistsPatientSlotFunc    func(ctx context.Context, patientID uuid.UUID, date time.Time, startTime string, excludeID uuid.UUID) (bool, error)
	CountFunc                func(ctx context.Context) (int64, error)
	CountByStatusInMonthFunc func(ctx context.Context, year, month int) ([]repository.StatusCount, error)
	SumCompletedRevenueFunc  func(ctx context.Context, year, month int) (decimal.Decimal, error)
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return 1, nil
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 1, nil
}

func (m *MockAppointmentRepository) ExistsDentistSlot(ctx context.Context, dentistID int, date time.Time, startTime string, excludeID uuid.UUID) (bool, error) {
	if m.ExistsDentistSlotFunc != nil {
		return m.ExistsDentistSlotFunc(ctx, dentistID, date, startTime, excludeID)
	}
	return false, nil
}

func (m *MockAppointmentRepository) ExistsPatientSlot(ctx context.Context, patientID uuid.UUID, date time.Time, startTime string, excludeID uuid.UUID) (bool, error) {
	if m.ExistsPatientSlotFunc != nil {
		return m.ExistsPatientSlotFunc(ctx, patientID, date, startTime, excludeID)
	}
	return false, nil
}

func (m *MockAppointmentRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockAppointmentRepository) CountByStatusInMonth(ctx context.Context, year, month int) ([]repository.StatusCount, error) {
	if m.CountByStatusInMonthFunc != nil {
		return m.CountByStatusInMonthFunc(ctx, year, month)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) SumCompletedRevenue(ctx context.Context, year, month int) (decimal.Decimal, error) {
	if m.SumCompletedRevenueFunc != nil {
		return m.SumCompletedRevenueFunc(ctx, year, month)
	}
	return decimal.Zero, nil
}

// --- MockPatientRepository ---

var _ repository.PatientRepository = (*MockPatientRepository)(nil)

type MockPatientRepository struct {
	CreateFunc            func(ctx context.Context, patient *entity.Patient) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	FindAllFunc           func(ctx context.Context) ([]entity.Patient, error)
	UpdateFunc            func(ctx context.Context, patient *entity.Patient) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) (int64, error)
	CountFunc             func(ctx context.Context) (int64, error)
	CountByGenderFunc     func(ctx context.Context, gender string) (int64, error)
	CountCreatedDailyFunc func(ctx context.Context, year, month int) ([]repository.DailyCount, error)
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 1, nil
}

func (m *MockPatientRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockPatientRepository) CountByGender(ctx context.Context, gender string) (int64, error) {
	if m.CountByGenderFunc != nil {
		return m.CountByGenderFunc(ctx, gender)
	}
	return 0, nil
}

func (m *MockPatientRepository) CountCreatedDaily(ctx context.Context, year, month int) ([]repository.DailyCount, error) {
	if m.CountCreatedDailyFunc != nil {
		return m.CountCreatedDailyFunc(ctx, year, month)
	}
	return nil, nil
}

// --- MockDentistRepository ---

var _ repository.DentistRepository = (*MockDentistRepository)(nil)

type MockDentistRepository struct {
	CreateFunc     func(ctx context.Context, dentist *entity.Dentist) error
	FindByIDFunc   func(ctx context.Context, id int) (*entity.Dentist, error)
	FindAllFunc    func(ctx context.Context) ([]entity.Dentist, error)
	FindActiveFunc func(ctx context.Context) ([]entity.Dentist, error)
	UpdateFunc     func(ctx context.Context, dentist *entity.Dentist) error
	DeleteFunc     func(ctx context.Context, id int) (int64, error)
	CountFunc      func(ctx context.Context) (int64, error)
}

func (m *MockDentistRepository) Create(ctx context.Context, dentist *entity.Dentist) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, dentist)
	}
	return nil
}

func (m *MockDentistRepository) FindByID(ctx context.Context, id int) (*entity.Dentist, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockDentistRepository) FindAll(ctx context.Context) ([]entity.Dentist, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockDentistRepository) FindActive(ctx context.Context) ([]entity.Dentist, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(ctx)
	}
	return nil, nil
}

func (m *MockDentistRepository) Update(ctx context.Context, dentist *entity.Dentist) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, dentist)
	}
	return nil
}

func (m *MockDentistRepository) Delete(ctx context.Context, id int) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 1, nil
}

func (m *MockDentistRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// --- MockServiceRepository ---

var _ repository.ServiceRepository = (*MockServiceRepository)(nil)

type MockServiceRepository struct {
	CreateFunc     func(ctx context.Context, service *entity.Service) error
	FindByIDFunc   func(ctx context.Context, id int) (*entity.Service, error)
	FindAllFunc    func(ctx context.Context) ([]entity.Service, error)
	FindActiveFunc func(ctx context.Context) ([]entity.Service, error)
	UpdateFunc     func(ctx context.Context, service *entity.Service) error
	DeleteFunc     func(ctx context.Context, id int) (int64, error)
}

func (m *MockServiceRepository) Create(ctx context.Context, service *entity.Service) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, service)
	}
	return nil
}

func (m *MockServiceRepository) FindByID(ctx context.Context, id int) (*entity.Service, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockServiceRepository) FindAll(ctx context.Context) ([]entity.Service, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockServiceRepository) FindActive(ctx context.Context) ([]entity.Service, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(ctx)
	}
	return nil, nil
}

func (m *MockServiceRepository) Update(ctx context.Context, service *entity.Service) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, service)
	}
	return nil
}

func (m *MockServiceRepository) Delete(ctx context.Context, id int) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 1, nil
}

// --- MockUserRepository ---

var _ repository.UserRepository = (*MockUserRepository)(nil)

type MockUserRepository struct {
	CreateFunc            func(ctx context.Context, user *entity.User) error
	CreateWithPatientFunc func(ctx context.Context, user *entity.User, patient *entity.Patient) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmailFunc       func(ctx context.Context, email string) (*entity.User, error)
	UpdateFunc            func(ctx context.Context, user *entity.User) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) CreateWithPatient(ctx context.Context, user *entity.User, patient *entity.Patient) error {
	if m.CreateWithPatientFunc != nil {
		return m.CreateWithPatientFunc(ctx, user, patient)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

// --- MockOneTimeCodeRepository ---

var _ repository.OneTimeCodeRepository = (*MockOneTimeCodeRepository)(nil)

type MockOneTimeCodeRepository struct {
	CreateFunc             func(ctx context.Context, code *entity.OneTimeCode) error
	FindLatestByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*entity.OneTimeCode, error)
	DeleteExpiredFunc      func(ctx context.Context, userID uuid.UUID, before time.Time) error
	DeleteByIDFunc         func(ctx context.Context, id int64) error
}

func (m *MockOneTimeCodeRepository) Create(ctx context.Context, code *entity.OneTimeCode) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, code)
	}
	return nil
}

func (m *MockOneTimeCodeRepository) FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.OneTimeCode, error) {
	if m.FindLatestByUserIDFunc != nil {
		return m.FindLatestByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockOneTimeCodeRepository) DeleteExpired(ctx context.Context, userID uuid.UUID, before time.Time) error {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx, userID, before)
	}
	return nil
}

func (m *MockOneTimeCodeRepository) DeleteByID(ctx context.Context, id int64) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return nil
}

// --- MockMailer ---

type MockMailer struct {
	SendPasswordResetCodeFunc func(toAddress, name, code string) error
	SentCodes                 []string
}

func (m *MockMailer) SendPasswordResetCode(toAddress, name, code string) error {
	m.SentCodes = append(m.SentCodes, code)
	if m.SendPasswordResetCodeFunc != nil {
		return m.SendPasswordResetCodeFunc(toAddress, name, code)
	}
	return nil
}

// --- MockResetSessionStore ---

type MockResetSessionStore struct {
	IssueTicketFunc     func(ctx context.Context, userID uuid.UUID, ttl time.Duration) (string, error)
	ConsumeTicketFunc   func(ctx context.Context, ticket string) (uuid.UUID, error)
	RevokeAllTokensFunc func(ctx context.Context, userID uuid.UUID) error
	RevokedUsers        []uuid.UUID
}

func (m *MockResetSessionStore) IssueTicket(ctx context.Context, userID uuid.UUID, ttl time.Duration) (string, error) {
	if m.IssueTicketFunc != nil {
		return m.IssueTicketFunc(ctx, userID, ttl)
	}
	return "ticket-" + userID.String(), nil
}

func (m *MockResetSessionStore) ConsumeTicket(ctx context.Context, ticket string) (uuid.UUID, error) {
	if m.ConsumeTicketFunc != nil {
		return m.ConsumeTicketFunc(ctx, ticket)
	}
	return uuid.Nil, errors.New("ConsumeTicketFunc not implemented in mock")
}

func (m *MockResetSessionStore) RevokeAllTokens(ctx context.Context, userID uuid.UUID) error {
	m.RevokedUsers = append(m.RevokedUsers, userID)
	if m.RevokeAllTokensFunc != nil {
		return m.RevokeAllTokensFunc(ctx, userID)
	}
	return nil
}

// --- MockAuditService ---

type MockAuditService struct {
	Actions []string
}

func (m *MockAuditService) Record(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, detail entity.JSON) {
	m.Actions = append(m.Actions, action)
}

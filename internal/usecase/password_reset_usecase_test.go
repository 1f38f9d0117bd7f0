package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"dental-clinic-api/config"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newResetFixture(user *entity.User) (*MockUserRepository, *MockOneTimeCodeRepository, *MockMailer, *MockResetSessionStore, *passwordResetUsecase) {
	userRepo := &MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			if user != nil && email == user.Email {
				return user, nil
			}
			return nil, nil
		},
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			if user != nil && id == user.ID {
				return user, nil
			}
			return nil, nil
		},
	}
	codeRepo := &MockOneTimeCodeRepository{}
	mailer := &MockMailer{}
	store := &MockResetSessionStore{}

	otpConfig := config.OTPConfig{CodeTTL: 5 * time.Minute, TicketTTL: 10 * time.Minute}
	uc := NewPasswordResetUsecase(testLogger(), userRepo, codeRepo, mailer, store, otpConfig).(*passwordResetUsecase)
	return userRepo, codeRepo, mailer, store, uc
}

func resetTestUser() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Email:    "pat@example.com",
		FullName: "Pat Doe",
		RoleID:   entity.RoleIDPatient,
		IsActive: true,
	}
}

func TestRequestReset_IssuesSixDigitCode(t *testing.T) {
	user := resetTestUser()
	_, codeRepo, mailer, _, uc := newResetFixture(user)

	issuedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return issuedAt }

	var purgedBefore time.Time
	codeRepo.DeleteExpiredFunc = func(ctx context.Context, userID uuid.UUID, before time.Time) error {
		purgedBefore = before
		return nil
	}

	var stored *entity.OneTimeCode
	codeRepo.CreateFunc = func(ctx context.Context, code *entity.OneTimeCode) error {
		code.ID = 1
		stored = code
		return nil
	}

	err := uc.RequestReset(context.Background(), &dto.RequestResetRequest{Email: user.Email})
	assert.NoError(t, err)
	assert.Equal(t, issuedAt, purgedBefore)
	assert.Len(t, stored.Code, 6)
	assert.Equal(t, issuedAt.Add(5*time.Minute), stored.ExpiresAt)
	assert.Equal(t, []string{stored.Code}, mailer.SentCodes)
}

func TestRequestReset_UnknownEmail(t *testing.T) {
	_, _, _, _, uc := newResetFixture(nil)

	err := uc.RequestReset(context.Background(), &dto.RequestResetRequest{Email: "nobody@example.com"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRequestReset_MailFailureDeletesCode(t *testing.T) {
	user := resetTestUser()
	_, codeRepo, mailer, _, uc := newResetFixture(user)

	codeRepo.CreateFunc = func(ctx context.Context, code *entity.OneTimeCode) error {
		code.ID = 42
		return nil
	}
	mailer.SendPasswordResetCodeFunc = func(toAddress, name, code string) error {
		return errors.New("smtp unreachable")
	}

	var deletedID int64
	codeRepo.DeleteByIDFunc = func(ctx context.Context, id int64) error {
		deletedID = id
		return nil
	}

	err := uc.RequestReset(context.Background(), &dto.RequestResetRequest{Email: user.Email})
	assert.ErrorIs(t, err, ErrEmailDelivery)
	assert.Equal(t, int64(42), deletedID)
}

func TestVerifyCode_RoundTrip(t *testing.T) {
	user := resetTestUser()
	_, codeRepo, _, store, uc := newResetFixture(user)

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	codeRepo.FindLatestByUserIDFunc = func(ctx context.Context, userID uuid.UUID) (*entity.OneTimeCode, error) {
		return &entity.OneTimeCode{ID: 1, UserID: user.ID, Code: "042913", ExpiresAt: now.Add(time.Minute)}, nil
	}
	store.IssueTicketFunc = func(ctx context.Context, userID uuid.UUID, ttl time.Duration) (string, error) {
		assert.Equal(t, user.ID, userID)
		assert.Equal(t, 10*time.Minute, ttl)
		return "ticket-abc", nil
	}

	resp, err := uc.VerifyCode(context.Background(), &dto.VerifyCodeRequest{Email: user.Email, Code: "042913"})
	assert.NoError(t, err)
	assert.Equal(t, "ticket-abc", resp.Ticket)
}

func TestVerifyCode_WrongCode(t *testing.T) {
	user := resetTestUser()
	_, codeRepo, _, _, uc := newResetFixture(user)

	codeRepo.FindLatestByUserIDFunc = func(ctx context.Context, userID uuid.UUID) (*entity.OneTimeCode, error) {
		return &entity.OneTimeCode{ID: 1, UserID: user.ID, Code: "111111", ExpiresAt: time.Now().Add(time.Minute)}, nil
	}

	_, err := uc.VerifyCode(context.Background(), &dto.VerifyCodeRequest{Email: user.Email, Code: "222222"})
	assert.ErrorIs(t, err, ErrCodeInvalid)
}

func TestVerifyCode_ExpiredCode(t *testing.T) {
	user := resetTestUser()
	_, codeRepo, _, _, uc := newResetFixture(user)

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	codeRepo.FindLatestByUserIDFunc = func(ctx context.Context, userID uuid.UUID) (*entity.OneTimeCode, error) {
		return &entity.OneTimeCode{ID: 1, UserID: user.ID, Code: "042913", ExpiresAt: now.Add(-time.Second)}, nil
	}

	_, err := uc.VerifyCode(context.Background(), &dto.VerifyCodeRequest{Email: user.Email, Code: "042913"})
	assert.ErrorIs(t, err, ErrCodeExpired)
}

func TestVerifyCode_OnlyLatestCodeCounts(t *testing.T) {
	user := resetTestUser()
	_, codeRepo, _, _, uc := newResetFixture(user)

	// An older, still-unexpired code exists but a newer one superseded it.
	codeRepo.FindLatestByUserIDFunc = func(ctx context.Context, userID uuid.UUID) (*entity.OneTimeCode, error) {
		return &entity.OneTimeCode{ID: 2, UserID: user.ID, Code: "999999", ExpiresAt: time.Now().Add(time.Minute)}, nil
	}

	_, err := uc.VerifyCode(context.Background(), &dto.VerifyCodeRequest{Email: user.Email, Code: "111111"})
	assert.ErrorIs(t, err, ErrCodeInvalid)
}

func TestResetPassword_ConsumesTicketAndRevokesSessions(t *testing.T) {
	user := resetTestUser()
	userRepo, _, _, store, uc := newResetFixture(user)

	store.ConsumeTicketFunc = func(ctx context.Context, ticket string) (uuid.UUID, error) {
		assert.Equal(t, "ticket-abc", ticket)
		return user.ID, nil
	}

	var savedPassword string
	userRepo.UpdateFunc = func(ctx context.Context, u *entity.User) error {
		savedPassword = u.Password
		return nil
	}

	err := uc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Ticket:          "ticket-abc",
		Password:        "new-password-1",
		ConfirmPassword: "new-password-1",
	})
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(savedPassword), []byte("new-password-1")))
	assert.Equal(t, []uuid.UUID{user.ID}, store.RevokedUsers)
}

func TestResetPassword_InvalidTicket(t *testing.T) {
	user := resetTestUser()
	_, _, _, store, uc := newResetFixture(user)

	store.ConsumeTicketFunc = func(ctx context.Context, ticket string) (uuid.UUID, error) {
		return uuid.Nil, service.ErrTicketNotFound
	}

	err := uc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Ticket:          "spent-ticket",
		Password:        "new-password-1",
		ConfirmPassword: "new-password-1",
	})
	assert.ErrorIs(t, err, ErrResetTicketInvalid)
}

func TestGenerateNumericCode_ZeroPadded(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := generateNumericCode()
		assert.NoError(t, err)
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}

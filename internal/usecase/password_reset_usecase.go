package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"dental-clinic-api/config"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"
	"dental-clinic-api/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// PasswordResetUsecase implements the three-step reset flow: request a code,
// verify it to obtain a single-use ticket, then set the new password with
// that ticket.
type PasswordResetUsecase interface {
	RequestReset(ctx context.Context, req *dto.RequestResetRequest) error
	VerifyCode(ctx context.Context, req *dto.VerifyCodeRequest) (*dto.VerifyCodeResponse, error)
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
}

type passwordResetUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	codeRepo     repository.OneTimeCodeRepository
	mailer       service.Mailer
	sessionStore service.ResetSessionStore
	otpConfig    config.OTPConfig
	now          func() time.Time
}

func NewPasswordResetUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	codeRepo repository.OneTimeCodeRepository,
	mailer service.Mailer,
	sessionStore service.ResetSessionStore,
	otpConfig config.OTPConfig,
) PasswordResetUsecase {
	return &passwordResetUsecase{
		log:          log,
		userRepo:     userRepo,
		codeRepo:     codeRepo,
		mailer:       mailer,
		sessionStore: sessionStore,
		otpConfig:    otpConfig,
		now:          time.Now,
	}
}

// RequestReset issues a fresh six-digit code for the account and emails it.
// The code row is only kept if the email actually went out.
func (u *passwordResetUsecase) RequestReset(ctx context.Context, req *dto.RequestResetRequest) error {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	now := u.now()

	// Housekeeping: drop this user's stale codes before issuing a new one.
	if err := u.codeRepo.DeleteExpired(ctx, user.ID, now); err != nil {
		u.log.Warnf("Failed to purge expired codes: %+v", err)
		return err
	}

	codeValue, err := generateNumericCode()
	if err != nil {
		u.log.Warnf("Failed to generate one-time code: %+v", err)
		return err
	}

	code := &entity.OneTimeCode{
		UserID:    user.ID,
		Code:      codeValue,
		CreatedAt: now,
		ExpiresAt: now.Add(u.otpConfig.CodeTTL),
	}
	if err := u.codeRepo.Create(ctx, code); err != nil {
		u.log.Warnf("Failed to store one-time code: %+v", err)
		return err
	}

	if err := u.mailer.SendPasswordResetCode(user.Email, user.FullName, codeValue); err != nil {
		u.log.Warnf("Failed to send reset code email: %+v", err)
		// A code the user never received must not stay redeemable.
		if delErr := u.codeRepo.DeleteByID(ctx, code.ID); delErr != nil {
			u.log.Warnf("Failed to delete undelivered code: %+v", delErr)
		}
		return ErrEmailDelivery
	}

	return nil
}

// VerifyCode checks the submitted code against the user's most recent one
// only. Older codes are dead the moment a newer one is issued.
func (u *passwordResetUsecase) VerifyCode(ctx context.Context, req *dto.VerifyCodeRequest) (*dto.VerifyCodeResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	latest, err := u.codeRepo.FindLatestByUserID(ctx, user.ID)
	if err != nil {
		u.log.Warnf("Failed to load latest code: %+v", err)
		return nil, err
	}
	if latest == nil || latest.Code != req.Code {
		return nil, ErrCodeInvalid
	}

	now := u.now()
	if latest.IsExpired(now) {
		return nil, ErrCodeExpired
	}

	ticket, err := u.sessionStore.IssueTicket(ctx, user.ID, u.otpConfig.TicketTTL)
	if err != nil {
		u.log.Warnf("Failed to issue reset ticket: %+v", err)
		return nil, err
	}

	// The code served its purpose; a second verify must start over.
	if err := u.codeRepo.DeleteByID(ctx, latest.ID); err != nil {
		u.log.Warnf("Failed to delete used code: %+v", err)
	}

	return &dto.VerifyCodeResponse{Ticket: ticket}, nil
}

// ResetPassword consumes the ticket, stores the new password hash and revokes
// every session the account still holds.
func (u *passwordResetUsecase) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	userID, err := u.sessionStore.ConsumeTicket(ctx, req.Ticket)
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			return ErrResetTicketInvalid
		}
		u.log.Warnf("Failed to consume reset ticket: %+v", err)
		return err
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	user.Password = string(hashedPassword)
	if err := u.userRepo.Update(ctx, user); err != nil {
		u.log.Warnf("Failed to update password: %+v", err)
		return err
	}

	if err := u.sessionStore.RevokeAllTokens(ctx, user.ID); err != nil {
		u.log.Warnf("Failed to revoke tokens after password reset: %+v", err)
	}

	return nil
}

// generateNumericCode returns a zero-padded six-digit string drawn from
// crypto/rand, so codes like "042913" keep their leading zero.
func generateNumericCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

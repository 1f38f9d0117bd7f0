package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/response"
	"dental-clinic-api/pkg/validator"
)

type PasswordResetHandler struct {
	resetUsecase usecase.PasswordResetUsecase
	validator    *validator.CustomValidator
}

func NewPasswordResetHandler(resetUsecase usecase.PasswordResetUsecase, validator *validator.CustomValidator) *PasswordResetHandler {
	return &PasswordResetHandler{
		resetUsecase: resetUsecase,
		validator:    validator,
	}
}

// RequestReset handles the first reset step: email a one-time code
// @Summary Request a password reset code
// @Tags PasswordReset
// @Accept json
// @Produce json
// @Param request body dto.RequestResetRequest true "Request Reset Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /auth/password-reset/request [post]
func (h *PasswordResetHandler) RequestReset(w http.ResponseWriter, r *http.Request) {
	var req dto.RequestResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.resetUsecase.RequestReset(r.Context(), &req); err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "No account found for this email")
		case usecase.ErrEmailDelivery:
			response.Error(w, http.StatusBadGateway, "Failed to send the reset email, please try again", nil)
		default:
			response.InternalServerError(w, "Failed to request password reset")
		}
		return
	}

	response.Success(w, http.StatusOK, "A reset code has been sent to your email", nil)
}

// VerifyCode handles the second reset step: exchange the code for a ticket
// @Summary Verify a password reset code
// @Tags PasswordReset
// @Accept json
// @Produce json
// @Param request body dto.VerifyCodeRequest true "Verify Code Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /auth/password-reset/verify [post]
func (h *PasswordResetHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.resetUsecase.VerifyCode(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "No account found for this email")
		case usecase.ErrCodeInvalid:
			response.BadRequest(w, "The code is incorrect")
		case usecase.ErrCodeExpired:
			response.BadRequest(w, "The code has expired, please request a new one")
		default:
			response.InternalServerError(w, "Failed to verify code")
		}
		return
	}

	response.Success(w, http.StatusOK, "Code verified successfully", result)
}

// ResetPassword handles the final reset step: set the new password
// @Summary Reset the password using a verification ticket
// @Tags PasswordReset
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Reset Password Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/password-reset/confirm [post]
func (h *PasswordResetHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.resetUsecase.ResetPassword(r.Context(), &req); err != nil {
		switch err {
		case usecase.ErrResetTicketInvalid:
			response.BadRequest(w, "The reset ticket is invalid or already used")
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to reset password")
		}
		return
	}

	response.Success(w, http.StatusOK, "Password has been reset, please login again", nil)
}

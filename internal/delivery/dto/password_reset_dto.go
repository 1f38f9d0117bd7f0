package dto

// Request DTOs

type RequestResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

type ResetPasswordRequest struct {
	Ticket          string `json:"ticket" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// Response DTOs

// VerifyCodeResponse carries the single-use ticket that authorizes the
// subsequent password reset call.
type VerifyCodeResponse struct {
	Ticket string `json:"ticket"`
}

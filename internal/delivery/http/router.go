package http

import (
	"net/http"

	"dental-clinic-api/internal/delivery/http/handler"
	"dental-clinic-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	passwordResetHandler *handler.PasswordResetHandler
	patientHandler       *handler.PatientHandler
	dentistHandler       *handler.DentistHandler
	serviceHandler       *handler.ServiceHandler
	appointmentHandler   *handler.AppointmentHandler
	dashboardHandler     *handler.DashboardHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	rateLimitMiddleware  *middleware.RateLimitMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	passwordResetHandler *handler.PasswordResetHandler,
	patientHandler *handler.PatientHandler,
	dentistHandler *handler.DentistHandler,
	serviceHandler *handler.ServiceHandler,
	appointmentHandler *handler.AppointmentHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		passwordResetHandler: passwordResetHandler,
		patientHandler:       patientHandler,
		dentistHandler:       dentistHandler,
		serviceHandler:       serviceHandler,
		appointmentHandler:   appointmentHandler,
		dashboardHandler:     dashboardHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
		rateLimitMiddleware:  rateLimitMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Credential-sensitive public routes get the per-IP rate limit.
	limited := api.PathPrefix("/auth").Subrouter()
	limited.Use(r.rateLimitMiddleware.Handle)
	limited.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	limited.HandleFunc("/password-reset/request", r.passwordResetHandler.RequestReset).Methods(http.MethodPost)
	limited.HandleFunc("/password-reset/verify", r.passwordResetHandler.VerifyCode).Methods(http.MethodPost)
	limited.HandleFunc("/password-reset/confirm", r.passwordResetHandler.ResetPassword).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	staffAuth := api.PathPrefix("/auth").Subrouter()
	staffAuth.Use(r.authMiddleware.Authenticate)
	staffAuth.Use(middleware.RequireStaff)
	staffAuth.HandleFunc("/register-staff", r.authHandler.RegisterStaff).Methods(http.MethodPost)

	// Patient self-profile. Registered before the generic /patients/{id}
	// route so "me" is never captured as an ID.
	patientOnly := api.PathPrefix("/patients").Subrouter()
	patientOnly.Use(r.authMiddleware.Authenticate)
	patientOnly.Use(middleware.RequirePatient)
	patientOnly.HandleFunc("/me", r.patientHandler.GetMyProfile).Methods(http.MethodGet)
	patientOnly.HandleFunc("/me", r.patientHandler.UpdateMyProfile).Methods(http.MethodPut)

	// Routes open to both roles (ownership is enforced in the usecases)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.Use(middleware.RequireStaffOrPatient)

	protected.HandleFunc("/appointments", r.appointmentHandler.Book).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Edit).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}/confirm", r.appointmentHandler.Confirm).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)

	protected.HandleFunc("/dentists/active", r.dentistHandler.ListActive).Methods(http.MethodGet)
	protected.HandleFunc("/services/active", r.serviceHandler.ListActive).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.Get).Methods(http.MethodGet)

	// Staff routes
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)

	staff.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/patients/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	staff.HandleFunc("/dentists", r.dentistHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/dentists", r.dentistHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/dentists/{id}", r.dentistHandler.Get).Methods(http.MethodGet)
	staff.HandleFunc("/dentists/{id}", r.dentistHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/dentists/{id}", r.dentistHandler.Delete).Methods(http.MethodDelete)

	staff.HandleFunc("/services", r.serviceHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/services", r.serviceHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/services/{id}", r.serviceHandler.Get).Methods(http.MethodGet)
	staff.HandleFunc("/services/{id}", r.serviceHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/services/{id}", r.serviceHandler.Delete).Methods(http.MethodDelete)

	staff.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.MarkCompleted).Methods(http.MethodPost)
	staff.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)
	staff.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)

	staff.HandleFunc("/dashboard", r.dashboardHandler.GetMonthly).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

package handler

import (
	"net/http"
	"strconv"
	"time"

	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// GetMonthly handles the staff dashboard overview. Year and month default to
// the current calendar month when omitted.
// @Summary Get the monthly dashboard
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) GetMonthly(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid year")
			return
		}
		year = parsed
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid month")
			return
		}
		month = parsed
	}

	dashboard, err := h.dashboardUsecase.GetMonthly(r.Context(), year, month)
	if err != nil {
		switch err {
		case usecase.ErrInvalidMonth:
			response.BadRequest(w, err.Error())
		case usecase.ErrForbidden:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to build dashboard")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

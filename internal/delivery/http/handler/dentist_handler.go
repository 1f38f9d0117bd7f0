package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/response"
	"dental-clinic-api/pkg/validator"

	"github.com/gorilla/mux"
)

type DentistHandler struct {
	dentistUsecase usecase.DentistUsecase
	validator      *validator.CustomValidator
}

func NewDentistHandler(dentistUsecase usecase.DentistUsecase, validator *validator.CustomValidator) *DentistHandler {
	return &DentistHandler{
		dentistUsecase: dentistUsecase,
		validator:      validator,
	}
}

// Create handles dentist creation (staff only)
// @Summary Create a dentist
// @Tags Dentists
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDentistRequest true "Create Dentist Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /dentists [post]
func (h *DentistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDentistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	dentist, err := h.dentistUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrLicenseExists:
			response.Conflict(w, "License number already exists")
		case usecase.ErrForbidden:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create dentist")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Dentist created successfully", dentist)
}

// Get handles fetching a single dentist
// @Summary Get a dentist
// @Tags Dentists
// @Security BearerAuth
// @Produce json
// @Param id path int true "Dentist ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /dentists/{id} [get]
func (h *DentistHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid dentist ID")
		return
	}

	dentist, err := h.dentistUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrDentistNotFound:
			response.NotFound(w, "Dentist not found")
		default:
			response.InternalServerError(w, "Failed to get dentist")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dentist retrieved successfully", dentist)
}

// List handles listing all dentists (staff only)
// @Summary List dentists
// @Tags Dentists
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /dentists [get]
func (h *DentistHandler) List(w http.ResponseWriter, r *http.Request) {
	dentists, err := h.dentistUsecase.List(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to list dentists")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dentists retrieved successfully", dentists)
}

// ListActive handles listing dentists available for booking
// @Summary List active dentists
// @Tags Dentists
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /dentists/active [get]
func (h *DentistHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	dentists, err := h.dentistUsecase.ListActive(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list active dentists")
		return
	}

	response.Success(w, http.StatusOK, "Active dentists retrieved successfully", dentists)
}

// Update handles dentist updates (staff only)
// @Summary Update a dentist
// @Tags Dentists
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Dentist ID"
// @Param request body dto.UpdateDentistRequest true "Update Dentist Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /dentists/{id} [put]
func (h *DentistHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid dentist ID")
		return
	}

	var req dto.UpdateDentistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	dentist, err := h.dentistUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrDentistNotFound:
			response.NotFound(w, "Dentist not found")
		case usecase.ErrLicenseExists:
			response.Conflict(w, "License number already exists")
		case usecase.ErrForbidden:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update dentist")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dentist updated successfully", dentist)
}

// Delete handles dentist deletion (staff only)
// @Summary Delete a dentist
// @Tags Dentists
// @Security BearerAuth
// @Produce json
// @Param id path int true "Dentist ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /dentists/{id} [delete]
func (h *DentistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid dentist ID")
		return
	}

	if err := h.dentistUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrDentistNotFound:
			response.NotFound(w, "Dentist not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to delete dentist")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dentist deleted successfully", nil)
}

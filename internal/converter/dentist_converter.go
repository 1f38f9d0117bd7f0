package converter

import (
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
)

// DentistToResponse converts a Dentist entity to DentistResponse DTO
func DentistToResponse(dentist *entity.Dentist) *dto.DentistResponse {
	if dentist == nil {
		return nil
	}

	return &dto.DentistResponse{
		ID:             dentist.ID,
		Name:           dentist.Name,
		Specialization: dentist.Specialization,
		Phone:          dentist.Phone,
		Email:          dentist.Email,
		LicenseNumber:  dentist.LicenseNumber,
		IsActive:       dentist.IsActive,
		CreatedAt:      dentist.CreatedAt,
	}
}

// DentistsToResponses converts a slice of Dentist entities to DTOs
func DentistsToResponses(dentists []entity.Dentist) []dto.DentistResponse {
	responses := make([]dto.DentistResponse, len(dentists))
	for i, dentist := range dentists {
		resp := DentistToResponse(&dentist)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

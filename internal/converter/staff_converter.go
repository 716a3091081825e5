package converter

import (
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
)

// StaffToResponse converts a Staff entity to StaffResponse DTO
func StaffToResponse(staff *entity.Staff) *dto.StaffResponse {
	if staff == nil {
		return nil
	}

	return &dto.StaffResponse{
		ID:              staff.ID,
		Email:           staff.Email,
		FullName:        staff.FullName,
		Role:            string(staff.Role),
		DepartmentID:    staff.DepartmentID,
		SubDepartmentID: staff.SubDepartmentID,
		IsActive:        staff.IsActive,
		CreatedAt:       staff.CreatedAt,
		UpdatedAt:       staff.UpdatedAt,
	}
}

// StaffToResponses converts a slice of Staff entities to response DTOs
func StaffToResponses(staff []entity.Staff) []dto.StaffResponse {
	responses := make([]dto.StaffResponse, len(staff))
	for i, s := range staff {
		resp := StaffToResponse(&s)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

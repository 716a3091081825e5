package converter

import (
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
)

// TherapyToResponse converts a TherapistAssignment entity to its DTO
func TherapyToResponse(assignment *entity.TherapistAssignment) *dto.TherapyResponse {
	if assignment == nil {
		return nil
	}

	response := &dto.TherapyResponse{
		ID:          assignment.ID,
		VisitNo:     assignment.VisitNo,
		TherapistID: assignment.TherapistID.String(),
		ScheduledAt: assignment.ScheduledAt,
		Status:      string(assignment.Status),
		CreatedAt:   assignment.CreatedAt,
	}

	if assignment.Procedure.ProcedureName != "" {
		response.ProcedureName = assignment.Procedure.ProcedureName
	}
	if assignment.Therapist.FullName != "" {
		response.TherapistName = assignment.Therapist.FullName
	}
	if assignment.DoctorID != nil {
		id := assignment.DoctorID.String()
		response.DoctorID = &id
	}

	return response
}

// TherapiesToResponses converts a slice of TherapistAssignment entities
func TherapiesToResponses(assignments []entity.TherapistAssignment) []dto.TherapyResponse {
	responses := make([]dto.TherapyResponse, len(assignments))
	for i, assignment := range assignments {
		resp := TherapyToResponse(&assignment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

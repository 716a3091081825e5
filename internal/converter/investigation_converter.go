package converter

import (
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
)

// InvestigationToResponse converts an Investigation entity to its DTO
func InvestigationToResponse(investigation *entity.Investigation) *dto.InvestigationResponse {
	if investigation == nil {
		return nil
	}

	response := &dto.InvestigationResponse{
		ID:          investigation.ID,
		OPDNo:       investigation.OPDNo,
		IPDNo:       investigation.IPDNo,
		Tests:       []string(investigation.Tests),
		Priority:    string(investigation.Priority),
		Notes:       investigation.Notes,
		Status:      string(investigation.Status),
		CompletedAt: investigation.CompletedAt,
		CreatedAt:   investigation.CreatedAt,
	}

	if investigation.DoctorID != nil {
		id := investigation.DoctorID.String()
		response.DoctorID = &id
	}
	if investigation.Doctor != nil && investigation.Doctor.FullName != "" {
		response.DoctorName = investigation.Doctor.FullName
	}
	if investigation.ScheduledDate != nil {
		d := investigation.ScheduledDate.Format("2006-01-02")
		response.ScheduledDate = &d
	}
	if investigation.CompletedBy != nil {
		id := investigation.CompletedBy.String()
		response.CompletedBy = &id
	}
	if investigation.Technician != nil && investigation.Technician.FullName != "" {
		response.TechnicianName = investigation.Technician.FullName
	}

	return response
}

// InvestigationsToResponses converts a slice of Investigation entities
func InvestigationsToResponses(investigations []entity.Investigation) []dto.InvestigationResponse {
	responses := make([]dto.InvestigationResponse, len(investigations))
	for i, investigation := range investigations {
		resp := InvestigationToResponse(&investigation)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// FollowUpToResponse converts an OPDFollowUp entity to its DTO
func FollowUpToResponse(followUp *entity.OPDFollowUp) *dto.FollowUpResponse {
	if followUp == nil {
		return nil
	}

	response := &dto.FollowUpResponse{
		ID:           followUp.ID,
		OPDNo:        followUp.OPDNo,
		FollowUpDate: followUp.FollowUpDate.Format("2006-01-02"),
		Notes:        followUp.Notes,
		DoctorID:     followUp.DoctorID.String(),
		CreatedAt:    followUp.CreatedAt,
	}

	if followUp.Doctor.FullName != "" {
		response.DoctorName = followUp.Doctor.FullName
	}

	return response
}

// FollowUpsToResponses converts a slice of OPDFollowUp entities
func FollowUpsToResponses(followUps []entity.OPDFollowUp) []dto.FollowUpResponse {
	responses := make([]dto.FollowUpResponse, len(followUps))
	for i, followUp := range followUps {
		resp := FollowUpToResponse(&followUp)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

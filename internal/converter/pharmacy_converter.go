package converter

import (
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
)

// MedicationToResponse converts a Medication entity to its DTO
func MedicationToResponse(medication *entity.Medication) *dto.MedicationResponse {
	if medication == nil {
		return nil
	}

	response := &dto.MedicationResponse{
		ID:           medication.ID,
		OPDNo:        medication.OPDNo,
		IPDNo:        medication.IPDNo,
		Name:         medication.Name,
		Dosage:       medication.Dosage,
		Frequency:    medication.Frequency,
		Notes:        medication.Notes,
		PrescribedBy: medication.PrescribedBy.String(),
		CreatedAt:    medication.CreatedAt,
	}

	if medication.StartDate != nil {
		d := medication.StartDate.Format("2006-01-02")
		response.StartDate = &d
	}
	if medication.EndDate != nil {
		d := medication.EndDate.Format("2006-01-02")
		response.EndDate = &d
	}

	return response
}

// MedicationsToResponses converts a slice of Medication entities
func MedicationsToResponses(medications []entity.Medication) []dto.MedicationResponse {
	responses := make([]dto.MedicationResponse, len(medications))
	for i, medication := range medications {
		resp := MedicationToResponse(&medication)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// MedicationRequestToResponse converts a MedicationRequest entity to its DTO
func MedicationRequestToResponse(request *entity.MedicationRequest) *dto.MedicationRequestResponse {
	if request == nil {
		return nil
	}

	response := &dto.MedicationRequestResponse{
		ID:           request.ID,
		MedicationID: request.MedicationID,
		OPDNo:        request.OPDNo,
		IPDNo:        request.IPDNo,
		Status:       string(request.Status),
		RequestDate:  request.RequestDate,
		DispensedAt:  request.DispensedAt,
	}

	if request.Medication.Name != "" {
		response.MedicationName = request.Medication.Name
		response.Dosage = request.Medication.Dosage
		response.Frequency = request.Medication.Frequency
	}
	if request.DispensedBy != nil {
		id := request.DispensedBy.String()
		response.DispensedBy = &id
	}
	if request.Pharmacist != nil && request.Pharmacist.FullName != "" {
		response.PharmacistName = request.Pharmacist.FullName
	}

	return response
}

// MedicationRequestsToResponses converts a slice of MedicationRequest entities
func MedicationRequestsToResponses(requests []entity.MedicationRequest) []dto.MedicationRequestResponse {
	responses := make([]dto.MedicationRequestResponse, len(requests))
	for i, request := range requests {
		resp := MedicationRequestToResponse(&request)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

package converter

import (
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
)

// BedToResponse converts a Bed entity to BedResponse DTO
func BedToResponse(bed *entity.Bed) *dto.BedResponse {
	if bed == nil {
		return nil
	}

	return &dto.BedResponse{
		ID:         bed.ID,
		Ward:       bed.Ward,
		RoomNumber: bed.RoomNumber,
		BedNumber:  bed.BedNumber,
		Occupied:   bed.Occupied,
	}
}

// BedsToResponses converts a slice of Bed entities to response DTOs
func BedsToResponses(beds []entity.Bed) []dto.BedResponse {
	responses := make([]dto.BedResponse, len(beds))
	for i, bed := range beds {
		resp := BedToResponse(&bed)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// AdmissionToResponse converts an IPDAdmission entity to its DTO. The
// status field is derived from the discharge date.
func AdmissionToResponse(admission *entity.IPDAdmission) *dto.AdmissionResponse {
	if admission == nil {
		return nil
	}

	response := &dto.AdmissionResponse{
		IPDNo:           admission.IPDNo,
		OPDNo:           admission.OPDNo,
		UHID:            admission.UHID,
		DoctorID:        admission.DoctorID.String(),
		AdmissionReason: admission.AdmissionReason,
		DepositAmount:   admission.DepositAmount,
		AdmissionDate:   admission.AdmissionDate.Format("2006-01-02"),
		Status:          admission.Status(),
		CreatedAt:       admission.CreatedAt,
	}

	if admission.DischargeDate != nil {
		d := admission.DischargeDate.Format("2006-01-02")
		response.DischargeDate = &d
	}
	if admission.Patient.FullName != "" {
		response.PatientName = admission.Patient.FullName
	}
	if admission.Doctor.FullName != "" {
		response.DoctorName = admission.Doctor.FullName
	}
	if admission.Bed != nil {
		response.Bed = BedToResponse(admission.Bed)
	}

	return response
}

// AdmissionsToResponses converts a slice of IPDAdmission entities
func AdmissionsToResponses(admissions []entity.IPDAdmission) []dto.AdmissionResponse {
	responses := make([]dto.AdmissionResponse, len(admissions))
	for i, admission := range admissions {
		resp := AdmissionToResponse(&admission)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// RequestToResponse converts an OPDToIPDRequest entity to its DTO
func RequestToResponse(request *entity.OPDToIPDRequest) *dto.AdmissionRequestResponse {
	if request == nil {
		return nil
	}

	response := &dto.AdmissionRequestResponse{
		ID:          request.ID,
		OPDNo:       request.OPDNo,
		UHID:        request.UHID,
		DoctorID:    request.DoctorID.String(),
		Reason:      request.Reason,
		Status:      string(request.Status),
		Notes:       request.Notes,
		RequestedAt: request.RequestedAt,
		ApprovedAt:  request.ApprovedAt,
	}

	if request.ApprovedBy != nil {
		id := request.ApprovedBy.String()
		response.ApprovedBy = &id
	}
	if request.Patient.FullName != "" {
		response.PatientName = request.Patient.FullName
	}
	if request.Doctor.FullName != "" {
		response.DoctorName = request.Doctor.FullName
	}

	return response
}

// RequestsToResponses converts a slice of OPDToIPDRequest entities
func RequestsToResponses(requests []entity.OPDToIPDRequest) []dto.AdmissionRequestResponse {
	responses := make([]dto.AdmissionRequestResponse, len(requests))
	for i, request := range requests {
		resp := RequestToResponse(&request)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

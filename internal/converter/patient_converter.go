package converter

import (
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		UHID:      patient.UHID,
		FullName:  patient.FullName,
		Age:       patient.Age,
		Gender:    patient.Gender,
		Mobile:    patient.Mobile,
		Aadhaar:   patient.Aadhaar,
		Address:   patient.Address,
		CreatedAt: patient.CreatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to response DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		resp := PatientToResponse(&patient)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// AppointmentToResponse converts an Appointment entity to its DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		UHID:            appointment.UHID,
		DepartmentID:    appointment.DepartmentID,
		SubDepartmentID: appointment.SubDepartmentID,
		DoctorID:        appointment.DoctorID.String(),
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		Reason:          appointment.Reason,
		Status:          string(appointment.Status),
	}

	// Include doctor name if preloaded
	if appointment.Doctor.FullName != "" {
		response.DoctorName = appointment.Doctor.FullName
	}

	return response
}

// OPDVisitToResponse converts an OPDVisit entity to its DTO
func OPDVisitToResponse(visit *entity.OPDVisit) *dto.OPDVisitResponse {
	if visit == nil {
		return nil
	}

	return &dto.OPDVisitResponse{
		OPDNo:         visit.OPDNo,
		UHID:          visit.UHID,
		AppointmentID: visit.AppointmentID,
		VisitDate:     visit.VisitDate.Format("2006-01-02"),
		CreatedAt:     visit.CreatedAt,
	}
}

package converter

import (
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
)

// ProcedureEntryToResponse converts a ProcedureEntry entity to its DTO
func ProcedureEntryToResponse(procedure *entity.ProcedureEntry) *dto.ProcedureEntryResponse {
	if procedure == nil {
		return nil
	}

	return &dto.ProcedureEntryResponse{
		ID:            procedure.ID,
		VisitType:     string(procedure.VisitType),
		VisitNo:       procedure.VisitNo,
		ProcedureName: procedure.ProcedureName,
		Requirements:  procedure.Requirements,
	}
}

// ProcedureEntriesToResponses converts a slice of ProcedureEntry entities
func ProcedureEntriesToResponses(procedures []entity.ProcedureEntry) []dto.ProcedureEntryResponse {
	responses := make([]dto.ProcedureEntryResponse, len(procedures))
	for i, procedure := range procedures {
		resp := ProcedureEntryToResponse(&procedure)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// CaseSheetToResponse converts a CaseSheet entity to its DTO. Procedures
// raised from the sheet's treatment plan are attached separately by the
// usecase, not stored on the entity.
func CaseSheetToResponse(sheet *entity.CaseSheet, procedures []entity.ProcedureEntry) *dto.CaseSheetResponse {
	if sheet == nil {
		return nil
	}

	response := &dto.CaseSheetResponse{
		ID:                   sheet.ID,
		VisitType:            string(sheet.VisitType),
		VisitNo:              sheet.VisitNo,
		UHID:                 sheet.UHID,
		ChiefComplaints:      sheet.ChiefComplaints,
		AssociatedComplaints: sheet.AssociatedComplaints,
		History:              sheet.History,
		Examination:          sheet.Examination,
		Diagnosis:            sheet.Diagnosis,
		TreatmentPlan:        sheet.TreatmentPlan,
		MedicationsAdvised:   []string(sheet.MedicationsAdvised),
		CreatedAt:            sheet.CreatedAt,
	}

	if sheet.DoctorID != nil {
		id := sheet.DoctorID.String()
		response.DoctorID = &id
	}
	if sheet.Doctor != nil {
		response.DoctorName = sheet.Doctor.FullName
	}
	if len(procedures) > 0 {
		response.Procedures = ProcedureEntriesToResponses(procedures)
	}

	return response
}

// CaseSheetsToResponses converts a slice of CaseSheet entities without
// attached procedures
func CaseSheetsToResponses(sheets []entity.CaseSheet) []dto.CaseSheetResponse {
	responses := make([]dto.CaseSheetResponse, len(sheets))
	for i, sheet := range sheets {
		resp := CaseSheetToResponse(&sheet, nil)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

package converter

import (
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
)

// BillingRecordToResponse converts a BillingRecord entity to its DTO
func BillingRecordToResponse(record *entity.BillingRecord) *dto.BillingRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.BillingRecordResponse{
		ID:          record.ID,
		OPDNo:       record.OPDNo,
		BillDate:    record.BillDate,
		Description: record.Description,
		Amount:      record.Amount,
	}
}

// BillingRecordsToResponses converts a slice of BillingRecord entities
func BillingRecordsToResponses(records []entity.BillingRecord) []dto.BillingRecordResponse {
	responses := make([]dto.BillingRecordResponse, len(records))
	for i, record := range records {
		resp := BillingRecordToResponse(&record)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// IPDBillToResponse converts an IPDBill entity to its DTO
func IPDBillToResponse(bill *entity.IPDBill) *dto.IPDBillResponse {
	if bill == nil {
		return nil
	}

	return &dto.IPDBillResponse{
		ID:              bill.ID,
		IPDNo:           bill.IPDNo,
		BedCharge:       bill.BedCharge,
		NursingCharge:   bill.NursingCharge,
		DoctorCharge:    bill.DoctorCharge,
		ProcedureCharge: bill.ProcedureCharge,
		SurgeryCharge:   bill.SurgeryCharge,
		OtherCharge:     bill.OtherCharge,
		Total:           bill.Total,
		BillDate:        bill.BillDate,
	}
}

// IPDBillsToResponses converts a slice of IPDBill entities
func IPDBillsToResponses(bills []entity.IPDBill) []dto.IPDBillResponse {
	responses := make([]dto.IPDBillResponse, len(bills))
	for i, bill := range bills {
		resp := IPDBillToResponse(&bill)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

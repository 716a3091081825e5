package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VisitType distinguishes which identifier a record hangs off
type VisitType string

const (
	VisitTypeOPD VisitType = "OPD"
	VisitTypeIPD VisitType = "IPD"
)

// CaseSheet captures one clinical note for a visit or admission. Multiple
// sheets per visit are allowed, ordered by creation time; VisitNo holds an
// OPD number or an IPD number depending on VisitType.
type CaseSheet struct {
	ID                   int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	VisitType            VisitType  `gorm:"type:varchar(10);not null;index" json:"visit_type"`
	VisitNo              string     `gorm:"type:varchar(30);not null;index" json:"visit_no"`
	UHID                 string     `gorm:"type:varchar(30);not null;index" json:"uhid"`
	DoctorID             *uuid.UUID `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	ChiefComplaints      string     `gorm:"type:text" json:"chief_complaints"`
	AssociatedComplaints string     `gorm:"type:text" json:"associated_complaints"`
	History              string     `gorm:"type:text" json:"history"`
	Examination          string     `gorm:"type:text" json:"examination"`
	Diagnosis            string     `gorm:"type:text" json:"diagnosis"`
	TreatmentPlan        string     `gorm:"type:text" json:"treatment_plan"`
	MedicationsAdvised   StringList `gorm:"type:jsonb" json:"medications_advised,omitempty"`
	CreatedAt            time.Time  `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:UHID;references:UHID" json:"patient,omitempty"`
	Doctor  *Staff  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (CaseSheet) TableName() string {
	return "case_sheets"
}

// StringList type for GORM JSONB support of ordered string lists
type StringList []string

// Value returns json value, implement driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan scan value into StringList, implements sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result []string
	err := json.Unmarshal(bytes, &result)
	*l = StringList(result)
	return err
}

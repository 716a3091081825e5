package entity

import "time"

// OPDVisit records one outpatient visit, keyed by a day-bucketed OPD
// number of the form OPD-20250115-0001. Created together with its
// appointment and never updated afterwards.
type OPDVisit struct {
	OPDNo         string    `gorm:"column:opd_no;type:varchar(30);primaryKey" json:"opd_no"`
	UHID          string    `gorm:"type:varchar(30);not null;index" json:"uhid"`
	AppointmentID int64     `gorm:"not null;index" json:"appointment_id"`
	VisitDate     time.Time `gorm:"type:date;not null;index" json:"visit_date"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient     Patient     `gorm:"foreignKey:UHID;references:UHID" json:"patient,omitempty"`
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (OPDVisit) TableName() string {
	return "opd_visits"
}

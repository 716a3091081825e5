package entity

import "time"

// Patient is registered once and identified forever by its UHID, a
// human-readable key of the form PAMCH-25-JUL-0001 (facility, two-digit
// year, month, serial). Demographic fields may be corrected later; the
// row is never deleted.
type Patient struct {
	UHID      string    `gorm:"type:varchar(30);primaryKey" json:"uhid"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Age       int       `gorm:"not null" json:"age"`
	Gender    string    `gorm:"type:varchar(10);not null" json:"gender"`
	Mobile    string    `gorm:"type:varchar(20);index" json:"mobile"`
	Aadhaar   string    `gorm:"type:varchar(20)" json:"aadhaar"`
	Address   string    `gorm:"type:text" json:"address"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:UHID;references:UHID" json:"appointments,omitempty"`
	OPDVisits    []OPDVisit    `gorm:"foreignKey:UHID;references:UHID" json:"opd_visits,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

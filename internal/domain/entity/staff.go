package entity

import (
	"time"

	"github.com/google/uuid"
)

// StaffRole identifies which dashboard and route group a staff member gets
type StaffRole string

const (
	RoleAdmin        StaffRole = "admin"
	RoleDoctor       StaffRole = "doctor"
	RoleNurse        StaffRole = "nurse"
	RolePharmacist   StaffRole = "pharmacist"
	RoleTechnician   StaffRole = "technician"
	RoleReceptionist StaffRole = "receptionist"
	RoleTherapist    StaffRole = "therapist"
)

// Staff represents a hospital employee account. One table serves every
// role; doctors and therapists are staff rows filtered by role.
type Staff struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Role            StaffRole `gorm:"type:varchar(20);not null;index" json:"role"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password        string    `gorm:"type:text;not null" json:"-"`
	FullName        string    `gorm:"type:varchar(255);not null" json:"full_name"`
	DepartmentID    *int      `gorm:"index" json:"department_id,omitempty"`
	SubDepartmentID *int      `gorm:"index" json:"sub_department_id,omitempty"`
	IsActive        bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

func (Staff) TableName() string {
	return "staff"
}

// IsDoctor reports whether this staff member can own appointments and
// raise admission requests.
func (s *Staff) IsDoctor() bool {
	return s.Role == RoleDoctor
}

// ValidRole reports whether r is one of the known staff roles.
func ValidRole(r StaffRole) bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleNurse, RolePharmacist,
		RoleTechnician, RoleReceptionist, RoleTherapist:
		return true
	}
	return false
}

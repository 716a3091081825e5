package entity

// Department is a clinical department, e.g. Kayachikitsa or Panchakarma.
// Seeded by migration; the set changes rarely.
type Department struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`

	SubDepartments []SubDepartment `gorm:"foreignKey:DepartmentID" json:"sub_departments,omitempty"`
}

func (Department) TableName() string {
	return "departments"
}

// SubDepartment is a specialization within a department, e.g. Netra under
// Shalakya.
type SubDepartment struct {
	ID           int    `gorm:"primaryKey" json:"id"`
	DepartmentID int    `gorm:"not null;index" json:"department_id"`
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
}

func (SubDepartment) TableName() string {
	return "sub_departments"
}

package entity

import "time"

// Bed is a physical bed in a ward. Occupancy is guarded by a conditional
// update in the repository so two admissions cannot claim the same bed.
type Bed struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Ward       string    `gorm:"type:varchar(50);not null;index" json:"ward"`
	RoomNumber string    `gorm:"type:varchar(20);not null" json:"room_number"`
	BedNumber  string    `gorm:"type:varchar(20);not null" json:"bed_number"`
	Occupied   bool      `gorm:"not null;default:false;index" json:"occupied"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Bed) TableName() string {
	return "beds"
}

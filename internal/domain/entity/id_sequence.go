package entity

import "time"

// IDSequence is the per-bucket counter behind human-readable identifiers.
// Bucket is the full prefix (e.g. "PAMCH-25-JUL-" or "OPD-20250115-");
// LastValue is the highest serial handed out for that bucket. Incremented
// atomically with an upsert, so concurrent registrations cannot collide.
type IDSequence struct {
	Bucket    string    `gorm:"type:varchar(40);primaryKey" json:"bucket"`
	LastValue int       `gorm:"not null" json:"last_value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (IDSequence) TableName() string {
	return "id_sequences"
}

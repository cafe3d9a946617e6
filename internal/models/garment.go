package models

// Garment represents a single garment inventory record.
//
// The persisted layout is part of the application's external interface: the
// table is named "garments" and carries exactly these six columns, so the
// struct deliberately does not embed gorm.Model (no timestamp or soft-delete
// columns).
type Garment struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"not null" validate:"required"`
	Size     string `json:"size" gorm:"not null" validate:"required"`
	Color    string `json:"color" gorm:"not null" validate:"required"`
	Style    string `json:"style" gorm:"not null" validate:"required"`
	Quantity int    `json:"quantity" gorm:"not null;default:0" validate:"gte=0"`
}

// TableName pins the table name so a GORM naming-strategy change can never
// move the data.
func (Garment) TableName() string {
	return "garments"
}

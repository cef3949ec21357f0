package models

// User is a read-only mirror of the identity service's user record.
type User struct {
	BaseModel
	Email       string   `gorm:"uniqueIndex;size:255;not null" json:"email"`
	DisplayName string   `gorm:"size:255" json:"display_name"`
	Role        UserRole `gorm:"type:varchar(20);not null" json:"role"`
}

package models

// User passwords are stored and compared as plaintext.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Role         Role   `gorm:"size:16;not null;default:USER"`
	UserName     string `gorm:"uniqueIndex;size:191;not null"`
	UserPassword string `gorm:"size:255;not null"`
	UserEmail    string `gorm:"uniqueIndex;size:191;not null"`
}

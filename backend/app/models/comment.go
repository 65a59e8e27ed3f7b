package models

import "time"

type Comment struct {
	ID       uint      `gorm:"primaryKey"`
	RecipeID uint      `gorm:"index;not null"`
	AuthorID uint      `gorm:"index;not null"`
	Author   User      `gorm:"foreignKey:AuthorID"`
	Created  time.Time `gorm:"not null"`
	Text     string    `gorm:"column:user_comment;type:text;not null"`
}

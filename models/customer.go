package models

import (
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model

	Name     string `json:"name" gorm:"size:255"`
	Email    string `json:"email" gorm:"uniqueIndex;size:150"`
	Phone    string `json:"phone" gorm:"size:50"`
	Password string `json:"-" gorm:"size:255"` // bcrypt hash, never serialized
}

package models

import "gorm.io/gorm"

type Wallet struct {
	gorm.Model
	UserID uint    `json:"userID" gorm:"not null;uniqueIndex"`
	Amount float64 `json:"amount"`
}

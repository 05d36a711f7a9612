package models

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	ReviewTargetListing = "LISTING"
	ReviewTargetHost    = "HOST"
	ReviewTargetGuest   = "GUEST"
)

type Review struct {
	gorm.Model
	BookingID  uint   `json:"bookingID" gorm:"not null;index"`
	TargetType string `json:"targetType" gorm:"type:varchar(20);not null;index"` // LISTING, HOST, GUEST
	TargetID   uint   `json:"targetID" gorm:"not null;index"`
	AuthorID   uint   `json:"authorID" gorm:"not null;index"`
	Rating     int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Text       string `json:"text" gorm:"type:text"`
}

// AuthorRoleForTarget returns the role of whoever wrote a review for the
// given target type. Reviews of a listing or its host are written by the
// guest who stayed there; reviews of a guest are written by the host.
func AuthorRoleForTarget(targetType string) (string, error) {
	switch targetType {
	case ReviewTargetListing, ReviewTargetHost:
		return RoleGuest, nil
	case ReviewTargetGuest:
		return RoleHost, nil
	default:
		return "", fmt.Errorf("unknown review target type %q", targetType)
	}
}

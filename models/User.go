package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

const (
	RoleGuest = "Guest"
	RoleHost  = "Host"
)

type User struct {
	gorm.Model
	Name               string    `json:"name"`
	Email              string    `json:"email" gorm:"uniqueIndex"`
	Password           string    `json:"-"`
	Role               string    `json:"role" gorm:"type:varchar(20);default:Guest;index"` // Guest, Host
	ProfilePicture     string    `json:"profilePicture"`
	ProfileDescription string    `json:"profileDescription" gorm:"type:text"`
	NicknameForGuests  string    `json:"nicknameForGuests"` // hosts only
	Listings           []Listing `json:"listings,omitempty" gorm:"foreignKey:HostID;references:ID"`
}

// Custom JSON marshaling so the password hash can never leak even when the
// struct is embedded in another response shape.
func (u *User) MarshalJSON() ([]byte, error) {
	type Alias User
	aux := &struct {
		Password string `json:"password,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(u),
	}
	aux.Password = ""
	return json.Marshal(aux)
}

func (u *User) IsHost() bool {
	return u.Role == RoleHost
}

func (u *User) IsGuest() bool {
	return u.Role == RoleGuest
}

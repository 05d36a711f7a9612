package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Listing struct {
	gorm.Model
	HostID         uint           `json:"hostID" gorm:"not null;index"`
	Title          string         `json:"title"`
	Description    string         `json:"description" gorm:"type:text"`
	PhotoThumbnail string         `json:"photoThumbnail"`
	Photos         datatypes.JSON `json:"photos"` // JSON array of URLs
	NumOfBeds      int            `json:"numOfBeds"`
	CostPerNight   float64        `json:"costPerNight"`
	LocationType   string         `json:"locationType" gorm:"type:varchar(20)"` // SPACESHIP, HOUSE, CAMPSITE, APARTMENT, ROOM
	IsFeatured     bool           `json:"isFeatured" gorm:"default:false;index"`
	Amenities      []Amenity      `json:"amenities" gorm:"many2many:listing_amenities;"`
	Bookings       []Booking      `json:"bookings,omitempty"`
}

// Custom JSON marshaling to expose Photos as a plain string array.
func (l *Listing) MarshalJSON() ([]byte, error) {
	type Alias Listing
	aux := &struct {
		Photos []string `json:"photos"`
		*Alias
	}{
		Photos: []string{},
		Alias:  (*Alias)(l),
	}

	if l.Photos != nil {
		var photos []string
		if err := json.Unmarshal(l.Photos, &photos); err == nil {
			aux.Photos = photos
		}
	}

	return json.Marshal(aux)
}

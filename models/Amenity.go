package models

import "gorm.io/gorm"

const (
	AmenityCategoryAccommodationDetails = "ACCOMMODATION_DETAILS"
	AmenityCategorySpaceSurvival        = "SPACE_SURVIVAL"
	AmenityCategoryOutdoors             = "OUTDOORS"
)

// amenityCategoryLabels maps the stored category tags to the labels clients
// render. Unknown tags fall through unchanged.
var amenityCategoryLabels = map[string]string{
	AmenityCategoryAccommodationDetails: "Accommodation Details",
	AmenityCategorySpaceSurvival:        "Space Survival",
	AmenityCategoryOutdoors:             "Outdoors",
}

type Amenity struct {
	gorm.Model
	Category string `json:"category" gorm:"type:varchar(40);index"`
	Name     string `json:"name"`
}

func (a *Amenity) CategoryLabel() string {
	if label, ok := amenityCategoryLabels[a.Category]; ok {
		return label
	}
	return a.Category
}

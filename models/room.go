package models

import (
	"gorm.io/gorm"
)

// Room types accepted by the inventory.
const (
	RoomTypeSingle = "Single"
	RoomTypeDouble = "Double"
	RoomTypeSuite  = "Suite"
	RoomTypeDeluxe = "Deluxe"
)

type Room struct {
	gorm.Model

	RoomNumber    string  `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	RoomType      string  `json:"roomType" gorm:"column:room_type;type:varchar(20)"`
	PricePerNight float64 `json:"pricePerNight" gorm:"column:price_per_night"`
	IsAvailable   bool    `json:"isAvailable" gorm:"column:is_available;default:true"`
}

// ValidRoomType reports whether t is one of the four supported room types.
func ValidRoomType(t string) bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeDeluxe:
		return true
	}
	return false
}

// Capacity maps the room type to the number of guests the frontend displays.
// Not stored; derived at read time.
func (r Room) Capacity() int {
	switch r.RoomType {
	case RoomTypeSingle:
		return 1
	case RoomTypeDouble:
		return 2
	case RoomTypeSuite:
		return 4
	case RoomTypeDeluxe:
		return 3
	default:
		return 2
	}
}

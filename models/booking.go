package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses. The only transition is Booked -> Cancelled; there is no way
// back to Booked.
const (
	BookingStatusBooked    = "Booked"
	BookingStatusCancelled = "Cancelled"
)

type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;size:64;index" json:"reference_code,omitempty"`

	CustomerID uint `gorm:"index;column:customer_id" json:"customer_id"`
	// RoomID is nullable: deleting a room leaves its bookings behind with a
	// dangling reference, which reads must tolerate.
	RoomID *uint `gorm:"index;column:room_id" json:"room_id,omitempty"`

	CheckInDate  time.Time `gorm:"column:check_in_date" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"check_out_date"`
	TotalAmount  float64   `gorm:"column:total_amount" json:"total_amount"`
	Status       string    `gorm:"column:status;size:32;index" json:"status"`

	Room     *Room    `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Customer Customer `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
}

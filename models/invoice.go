package models

import (
	"time"

	"gorm.io/gorm"
)

// Invoice records a payment against a booking. Immutable once created; removed
// together with its booking on hard delete.
type Invoice struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BookingID   uint      `gorm:"index;column:booking_id" json:"booking_id"`
	InvoiceDate time.Time `gorm:"column:invoice_date" json:"invoice_date"`
	AmountPaid  float64   `gorm:"column:amount_paid" json:"amount_paid"`

	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"booking,omitempty"`
}

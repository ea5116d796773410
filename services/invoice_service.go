package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-booking/models"

	"gorm.io/gorm"
)

// InvoiceService derives invoice views from bookings and manages the Invoice
// records themselves. Views are null-safe against deleted rooms: a booking may
// outlive the room it referenced.
type InvoiceService struct {
	DB *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{DB: db}
}

// CustomerInvoiceView is the invoices-as-bookings shape the customer frontend
// renders: one header plus a line per booking.
type CustomerInvoiceView struct {
	Customer CustomerHeader `json:"customer"`
	Bookings []InvoiceLine  `json:"bookings"`
}

type CustomerHeader struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type InvoiceLine struct {
	BookingID     uint      `json:"bookingId"`
	RoomType      string    `json:"roomType"`
	RoomNumber    string    `json:"roomNumber"`
	PricePerNight float64   `json:"pricePerNight"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`
	TotalAmount   float64   `json:"totalAmount"`
	Status        string    `json:"status"`
}

// BookingInvoiceView is the single derived invoice for one booking.
type BookingInvoiceView struct {
	Customer   CustomerHeader `json:"customer"`
	Room       RoomHeader     `json:"room"`
	CheckIn    time.Time      `json:"checkIn"`
	CheckOut   time.Time      `json:"checkOut"`
	TotalPrice float64        `json:"totalPrice"`
	Status     string         `json:"status"`
}

type RoomHeader struct {
	Type          string  `json:"type"`
	RoomNumber    string  `json:"roomNumber"`
	PricePerNight float64 `json:"pricePerNight"`
}

func (s *InvoiceService) CustomerInvoice(customerID uint) (CustomerInvoiceView, error) {
	var view CustomerInvoiceView

	var customer models.Customer
	if err := s.DB.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return view, ErrCustomerNotFound
		}
		return view, fmt.Errorf("failed to load customer %d: %w", customerID, err)
	}

	var bookings []models.Booking
	if err := s.DB.Preload("Room").Where("customer_id = ?", customerID).Find(&bookings).Error; err != nil {
		return view, fmt.Errorf("failed to load bookings for customer %d: %w", customerID, err)
	}

	view.Customer = CustomerHeader{Name: customer.Name, Email: customer.Email, Phone: customer.Phone}
	view.Bookings = make([]InvoiceLine, 0, len(bookings))
	for _, b := range bookings {
		line := InvoiceLine{
			BookingID:   b.ID,
			CheckIn:     b.CheckInDate,
			CheckOut:    b.CheckOutDate,
			TotalAmount: b.TotalAmount,
			Status:      b.Status,
			// fallback when the room is gone
			PricePerNight: b.TotalAmount,
		}
		if b.Room != nil {
			line.RoomType = b.Room.RoomType
			line.RoomNumber = b.Room.RoomNumber
			line.PricePerNight = b.Room.PricePerNight
		}
		view.Bookings = append(view.Bookings, line)
	}
	return view, nil
}

func (s *InvoiceService) BookingInvoice(bookingID uint) (BookingInvoiceView, error) {
	var view BookingInvoiceView

	var booking models.Booking
	if err := s.DB.Preload("Room").Preload("Customer").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return view, ErrBookingNotFound
		}
		return view, fmt.Errorf("failed to load booking %d: %w", bookingID, err)
	}

	view = BookingInvoiceView{
		Customer: CustomerHeader{
			Name:  booking.Customer.Name,
			Email: booking.Customer.Email,
			Phone: booking.Customer.Phone,
		},
		CheckIn:    booking.CheckInDate,
		CheckOut:   booking.CheckOutDate,
		TotalPrice: booking.TotalAmount,
		Status:     booking.Status,
		Room:       RoomHeader{PricePerNight: booking.TotalAmount},
	}
	if booking.Room != nil {
		view.Room = RoomHeader{
			Type:          booking.Room.RoomType,
			RoomNumber:    booking.Room.RoomNumber,
			PricePerNight: booking.Room.PricePerNight,
		}
	}
	return view, nil
}

// List returns every invoice with booking, customer and room attached, newest
// first (admin listing).
func (s *InvoiceService) List() ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.DB.
		Preload("Booking").
		Preload("Booking.Customer").
		Preload("Booking.Room").
		Order("created_at DESC").
		Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

func (s *InvoiceService) GetByID(id uint) (models.Invoice, error) {
	var invoice models.Invoice
	if err := s.DB.
		Preload("Booking").
		Preload("Booking.Customer").
		Preload("Booking.Room").
		First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invoice, ErrInvoiceNotFound
		}
		return invoice, fmt.Errorf("failed to load invoice %d: %w", id, err)
	}
	return invoice, nil
}

// Create records a payment against an existing booking. Invoices have no
// automatic trigger; this is the one explicit creation path.
func (s *InvoiceService) Create(bookingID uint, amountPaid float64) (models.Invoice, error) {
	var invoice models.Invoice

	if amountPaid <= 0 {
		return invoice, fmt.Errorf("%w: amount paid must be positive", ErrValidation)
	}

	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invoice, ErrBookingNotFound
		}
		return invoice, fmt.Errorf("failed to load booking %d: %w", bookingID, err)
	}

	invoice = models.Invoice{
		BookingID:   bookingID,
		InvoiceDate: time.Now().UTC(),
		AmountPaid:  amountPaid,
	}
	if err := s.DB.Create(&invoice).Error; err != nil {
		return invoice, fmt.Errorf("failed to create invoice: %w", err)
	}
	return invoice, nil
}

package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"hotel-booking/metrics"
	"hotel-booking/models"
	"hotel-booking/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// BookingService owns the booking state machine (Booked -> Cancelled, plus hard
// removal) and the cross-entity side effects on room availability. The reserve
// and the booking insert run in one transaction so a crash between them cannot
// leave the room flag and the booking status disagreeing.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

func parseBookingDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// Create books a room for a customer. The availability check is a conditional
// update inside the same transaction as the booking insert: of N concurrent
// calls for one room, exactly one flips the flag and the rest get
// ErrRoomUnavailable.
func (s *BookingService) Create(customerID, roomID uint, checkIn, checkOut string) (models.Booking, error) {
	var booking models.Booking

	if customerID == 0 || roomID == 0 || checkIn == "" || checkOut == "" {
		return booking, fmt.Errorf("%w: missing booking data", ErrValidation)
	}

	var customer models.Customer
	if err := s.DB.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return booking, ErrCustomerNotFound
		}
		return booking, fmt.Errorf("db error checking customer %d: %w", customerID, err)
	}

	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return booking, ErrRoomUnavailable
		}
		return booking, fmt.Errorf("db error checking room %d: %w", roomID, err)
	}
	if !room.IsAvailable {
		return booking, ErrRoomUnavailable
	}

	ci, err := parseBookingDate(checkIn)
	if err != nil {
		return booking, fmt.Errorf("%w: invalid check-in date: %v", ErrValidation, err)
	}
	co, err := parseBookingDate(checkOut)
	if err != nil {
		return booking, fmt.Errorf("%w: invalid check-out date: %v", ErrValidation, err)
	}
	if !co.After(ci) {
		return booking, fmt.Errorf("%w: check-out must be after check-in", ErrValidation)
	}

	nights := int(math.Ceil(co.Sub(ci).Hours() / 24))
	totalAmount := float64(nights) * room.PricePerNight

	rid := roomID
	booking = models.Booking{
		ReferenceCode: utils.NewReferenceCode(),
		CustomerID:    customerID,
		RoomID:        &rid,
		CheckInDate:   ci,
		CheckOutDate:  co,
		TotalAmount:   totalAmount,
		Status:        models.BookingStatusBooked,
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		// Compare-and-swap on the availability flag. RowsAffected == 0 means
		// another booking won the race (or the flag flipped since the read).
		res := tx.Model(&models.Room{}).
			Where("id = ? AND is_available = ?", roomID, true).
			Update("is_available", false)
		if res.Error != nil {
			return fmt.Errorf("failed to reserve room %d: %w", roomID, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrRoomUnavailable
		}

		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, ErrRoomUnavailable) {
			metrics.IncBookingConflict()
		}
		return models.Booking{}, txErr
	}

	metrics.IncBookingCreated()

	// reload with relations for the response
	if err := s.DB.Preload("Room").Preload("Customer").First(&booking, booking.ID).Error; err != nil {
		return booking, fmt.Errorf("failed to reload booking %d: %w", booking.ID, err)
	}
	return booking, nil
}

// ListForCustomer returns the customer's bookings with room details attached,
// newest first.
func (s *BookingService) ListForCustomer(customerID uint) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("Room").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings for customer %d: %w", customerID, err)
	}
	return list, nil
}

// GetAllWithRelations returns every booking with room and customer attached,
// newest first (admin listing).
func (s *BookingService) GetAllWithRelations() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("Room").
		Preload("Customer").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) GetByID(id uint) (models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Room").Preload("Customer").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return booking, ErrBookingNotFound
		}
		return booking, fmt.Errorf("failed to load booking %d: %w", id, err)
	}
	return booking, nil
}

// Cancel soft-cancels a booking and frees its room in one transaction.
// Cancelling an already-cancelled booking is a no-op and does not error.
func (s *BookingService) Cancel(bookingID uint) error {
	var cancelled bool

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		// Conditional on the status so a concurrent or repeated cancel cannot
		// release the room a second time.
		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", bookingID, models.BookingStatusBooked).
			Update("status", models.BookingStatusCancelled)
		if res.Error != nil {
			return fmt.Errorf("failed to cancel booking %d: %w", bookingID, res.Error)
		}
		if res.RowsAffected == 0 {
			// already cancelled: idempotent no-op
			return nil
		}
		cancelled = true

		if booking.RoomID != nil {
			if err := tx.Model(&models.Room{}).
				Where("id = ?", *booking.RoomID).
				Update("is_available", true).Error; err != nil {
				return fmt.Errorf("failed to release room %d: %w", *booking.RoomID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if cancelled {
		metrics.IncBookingCancelled()
	}
	return nil
}

// Remove permanently deletes a booking and every invoice that references it.
// The room release is best-effort and only applies while the booking is still
// Booked: removing an old cancelled booking must not free a room some newer
// booking holds. Invoices go before the booking so a failure mid-way never
// leaves invoices pointing at a deleted parent.
func (s *BookingService) Remove(bookingID uint) error {
	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to load booking %d: %w", bookingID, err)
	}

	if booking.Status == models.BookingStatusBooked && booking.RoomID != nil {
		if err := s.DB.Model(&models.Room{}).
			Where("id = ?", *booking.RoomID).
			Update("is_available", true).Error; err != nil {
			log.Warn().Err(err).Uint("room_id", *booking.RoomID).Uint("booking_id", bookingID).
				Msg("failed to release room during booking removal")
		}
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("booking_id = ?", bookingID).Delete(&models.Invoice{}).Error; err != nil {
			return fmt.Errorf("failed to delete invoices for booking %d: %w", bookingID, err)
		}
		if err := tx.Unscoped().Delete(&models.Booking{}, bookingID).Error; err != nil {
			return fmt.Errorf("failed to delete booking %d: %w", bookingID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	metrics.IncBookingRemoved()
	return nil
}

package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-booking/models"

	"gorm.io/gorm"
)

// RoomService owns Room records and their availability flag. It is the single
// source of truth for whether a room may be booked.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// ListAvailable returns every room with is_available = true, ordered by room
// number ascending. No pagination.
func (s *RoomService) ListAvailable() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Where("is_available = ?", true).Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}
	return rooms, nil
}

// GetAll returns every room regardless of availability (admin listing).
func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, ErrRoomNotFound
		}
		return room, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return room, nil
}

// Create validates and persists a new room. Room numbers are unique; the
// database index backs up the pre-check under races.
func (s *RoomService) Create(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return fmt.Errorf("%w: room number is required", ErrValidation)
	}
	if !models.ValidRoomType(room.RoomType) {
		return fmt.Errorf("%w: unknown room type %q", ErrValidation, room.RoomType)
	}
	if room.PricePerNight <= 0 {
		return fmt.Errorf("%w: price per night must be positive", ErrValidation)
	}

	var count int64
	if err := s.DB.Model(&models.Room{}).Where("room_number = ?", room.RoomNumber).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check room number: %w", err)
	}
	if count > 0 {
		return ErrDuplicateRoom
	}

	if err := s.DB.Create(room).Error; err != nil {
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			return ErrDuplicateRoom
		}
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// SetAvailability writes the flag unconditionally. Callers that need the
// compare-and-swap semantics go through BookingService instead.
func (s *RoomService) SetAvailability(id uint, available bool) error {
	if err := s.DB.Model(&models.Room{}).Where("id = ?", id).
		Update("is_available", available).Error; err != nil {
		return fmt.Errorf("failed to update room %d availability: %w", id, err)
	}
	return nil
}

// Delete removes a room without touching its bookings; a dangling room
// reference on old bookings is tolerated and handled null-safe on read.
func (s *RoomService) Delete(id uint) error {
	result := s.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-booking/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles customer registration and customer/admin logins.
// Passwords are bcrypt hashes; login failures never say which half was wrong.
type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

func (s *AuthService) Register(name, email, phone, password string) (models.Customer, error) {
	var customer models.Customer

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if name == "" || email == "" || phone == "" || password == "" {
		return customer, fmt.Errorf("%w: all fields are required", ErrValidation)
	}

	var count int64
	if err := s.DB.Model(&models.Customer{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return customer, fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return customer, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return customer, fmt.Errorf("failed to hash password: %w", err)
	}

	customer = models.Customer{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: string(hash),
	}
	if err := s.DB.Create(&customer).Error; err != nil {
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			return customer, ErrDuplicateEmail
		}
		return customer, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

func (s *AuthService) Login(email, password string) (models.Customer, error) {
	var customer models.Customer
	if err := s.DB.Where("email = ?", strings.TrimSpace(email)).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return customer, ErrInvalidCredentials
		}
		return customer, fmt.Errorf("failed to load customer: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(password)) != nil {
		return customer, ErrInvalidCredentials
	}
	return customer, nil
}

func (s *AuthService) AdminLogin(username, password string) (models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("username = ?", strings.TrimSpace(username)).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return admin, ErrInvalidCredentials
		}
		return admin, fmt.Errorf("failed to load admin: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return admin, ErrInvalidCredentials
	}
	return admin, nil
}

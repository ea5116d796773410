package controllers

import (
	"net/http"
	"time"

	"hotel-booking/models"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
)

// AdminController serves the back-office views: raw room records, reshaped
// booking listings, and flattened invoice listings.
type AdminController struct {
	Rooms    *services.RoomService
	Bookings *services.BookingService
	Invoices *services.InvoiceService
}

func NewAdminController(rooms *services.RoomService, bookings *services.BookingService, invoices *services.InvoiceService) *AdminController {
	return &AdminController{Rooms: rooms, Bookings: bookings, Invoices: invoices}
}

// ListRooms handles GET /api/admin/rooms.
func (ad *AdminController) ListRooms(c *gin.Context) {
	rooms, err := ad.Rooms.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// CreateRoom handles POST /api/admin/rooms.
func (ad *AdminController) CreateRoom(c *gin.Context) {
	var payload createRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}
	if payload.PricePerNight == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "roomNumber, roomType and pricePerNight are required"})
		return
	}

	room := payload.toModel()
	if err := ad.Rooms.Create(&room); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room added successfully", "room": room})
}

// DeleteRoom handles DELETE /api/admin/rooms/:id.
func (ad *AdminController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ad.Rooms.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted"})
}

type adminBookingView struct {
	ID           uint           `json:"id"`
	CustomerName string         `json:"customerName"`
	Room         adminRoomRef   `json:"room"`
	DateFrom     time.Time      `json:"dateFrom"`
	DateTo       time.Time      `json:"dateTo"`
	TotalAmount  float64        `json:"totalAmount"`
	Status       string         `json:"status"`
}

type adminRoomRef struct {
	ID         uint   `json:"id,omitempty"`
	Type       string `json:"type"`
	RoomNumber string `json:"roomNumber"`
}

func toAdminRoomRef(r *models.Room) adminRoomRef {
	if r == nil {
		return adminRoomRef{}
	}
	return adminRoomRef{ID: r.ID, Type: r.RoomType, RoomNumber: r.RoomNumber}
}

// ListBookings handles GET /api/admin/bookings.
func (ad *AdminController) ListBookings(c *gin.Context) {
	bookings, err := ad.Bookings.GetAllWithRelations()
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]adminBookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, adminBookingView{
			ID:           b.ID,
			CustomerName: b.Customer.Name,
			Room:         toAdminRoomRef(b.Room),
			DateFrom:     b.CheckInDate,
			DateTo:       b.CheckOutDate,
			TotalAmount:  b.TotalAmount,
			Status:       b.Status,
		})
	}
	c.JSON(http.StatusOK, views)
}

// CancelBooking handles DELETE /api/admin/bookings/:id (soft cancel).
func (ad *AdminController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ad.Bookings.Cancel(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// RemoveBooking handles DELETE /api/admin/bookings/:id/remove (hard delete
// plus invoice cascade).
func (ad *AdminController) RemoveBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ad.Bookings.Remove(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking removed permanently"})
}

type adminInvoiceView struct {
	ID          uint             `json:"id"`
	BookingID   uint             `json:"bookingId"`
	Customer    adminCustomerRef `json:"customer"`
	Room        adminRoomRef     `json:"room"`
	TotalAmount float64          `json:"totalAmount"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type adminCustomerRef struct {
	ID    uint   `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// ListInvoices handles GET /api/admin/invoices.
func (ad *AdminController) ListInvoices(c *gin.Context) {
	invoices, err := ad.Invoices.List()
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]adminInvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		views = append(views, adminInvoiceView{
			ID:        inv.ID,
			BookingID: inv.BookingID,
			Customer: adminCustomerRef{
				ID:    inv.Booking.Customer.ID,
				Name:  inv.Booking.Customer.Name,
				Email: inv.Booking.Customer.Email,
			},
			Room:        toAdminRoomRef(inv.Booking.Room),
			TotalAmount: inv.AmountPaid,
			CreatedAt:   inv.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, views)
}

// GetInvoice handles GET /api/admin/invoices/:id.
func (ad *AdminController) GetInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	inv, err := ad.Invoices.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	room := gin.H{"id": uint(0), "type": "", "roomNumber": "", "pricePerNight": float64(0)}
	if inv.Booking.Room != nil {
		room = gin.H{
			"id":            inv.Booking.Room.ID,
			"type":          inv.Booking.Room.RoomType,
			"roomNumber":    inv.Booking.Room.RoomNumber,
			"pricePerNight": inv.Booking.Room.PricePerNight,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"invoiceId":   inv.ID,
		"invoiceDate": inv.InvoiceDate,
		"amountPaid":  inv.AmountPaid,
		"booking": gin.H{
			"id":           inv.Booking.ID,
			"checkInDate":  inv.Booking.CheckInDate,
			"checkOutDate": inv.Booking.CheckOutDate,
			"totalAmount":  inv.Booking.TotalAmount,
			"status":       inv.Booking.Status,
		},
		"customer": adminCustomerRef{
			ID:    inv.Booking.Customer.ID,
			Name:  inv.Booking.Customer.Name,
			Email: inv.Booking.Customer.Email,
			Phone: inv.Booking.Customer.Phone,
		},
		"room": room,
	})
}

type createInvoicePayload struct {
	BookingID  uint    `json:"bookingId"`
	AmountPaid float64 `json:"amountPaid"`
}

// CreateInvoice handles POST /api/admin/invoices — records a payment against
// a booking.
func (ad *AdminController) CreateInvoice(c *gin.Context) {
	var payload createInvoicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}
	if payload.BookingID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "bookingId is required"})
		return
	}

	inv, err := ad.Invoices.Create(payload.BookingID, payload.AmountPaid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Invoice recorded", "invoice": inv})
}

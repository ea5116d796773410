package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerInvoice(t *testing.T) {
	db := testDB(t)
	bookings := NewBookingService(db)
	invoices := NewInvoiceService(db)

	customer := createTestCustomer(t, db, "inv@example.com")
	room := createTestRoom(t, db, "601", 120)

	booking, err := bookings.Create(customer.ID, room.ID, "2024-01-01", "2024-01-04")
	require.NoError(t, err)

	view, err := invoices.CustomerInvoice(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Customer", view.Customer.Name)
	require.Len(t, view.Bookings, 1)

	line := view.Bookings[0]
	assert.Equal(t, booking.ID, line.BookingID)
	assert.Equal(t, "601", line.RoomNumber)
	assert.Equal(t, float64(120), line.PricePerNight)
	assert.Equal(t, float64(360), line.TotalAmount)
}

func TestCustomerInvoiceNotFound(t *testing.T) {
	db := testDB(t)
	invoices := NewInvoiceService(db)

	_, err := invoices.CustomerInvoice(404)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestBookingInvoice(t *testing.T) {
	db := testDB(t)
	bookings := NewBookingService(db)
	invoices := NewInvoiceService(db)

	customer := createTestCustomer(t, db, "bi@example.com")
	room := createTestRoom(t, db, "602", 90)

	booking, err := bookings.Create(customer.ID, room.ID, "2024-01-01", "2024-01-02")
	require.NoError(t, err)

	view, err := invoices.BookingInvoice(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "602", view.Room.RoomNumber)
	assert.Equal(t, float64(90), view.TotalPrice)

	_, err = invoices.BookingInvoice(booking.ID + 100)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingInvoiceSurvivesDeletedRoom(t *testing.T) {
	db := testDB(t)
	rooms := NewRoomService(db)
	bookings := NewBookingService(db)
	invoices := NewInvoiceService(db)

	customer := createTestCustomer(t, db, "gone@example.com")
	room := createTestRoom(t, db, "603", 90)

	booking, err := bookings.Create(customer.ID, room.ID, "2024-01-01", "2024-01-02")
	require.NoError(t, err)
	require.NoError(t, rooms.Delete(room.ID))

	view, err := invoices.BookingInvoice(booking.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Room.RoomNumber)
	// falls back to the booking total when the room record is gone
	assert.Equal(t, booking.TotalAmount, view.Room.PricePerNight)
}

func TestCreateInvoice(t *testing.T) {
	db := testDB(t)
	bookings := NewBookingService(db)
	invoices := NewInvoiceService(db)

	customer := createTestCustomer(t, db, "pay@example.com")
	room := createTestRoom(t, db, "604", 100)

	booking, err := bookings.Create(customer.ID, room.ID, "2024-01-01", "2024-01-03")
	require.NoError(t, err)

	inv, err := invoices.Create(booking.ID, 200)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, inv.BookingID)
	assert.Equal(t, float64(200), inv.AmountPaid)
	assert.False(t, inv.InvoiceDate.IsZero())

	_, err = invoices.Create(booking.ID+100, 50)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = invoices.Create(booking.ID, 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListAndGetInvoices(t *testing.T) {
	db := testDB(t)
	bookings := NewBookingService(db)
	invoices := NewInvoiceService(db)

	customer := createTestCustomer(t, db, "list@example.com")
	room := createTestRoom(t, db, "605", 100)

	booking, err := bookings.Create(customer.ID, room.ID, "2024-01-01", "2024-01-03")
	require.NoError(t, err)

	created, err := invoices.Create(booking.ID, 200)
	require.NoError(t, err)

	list, err := invoices.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "list@example.com", list[0].Booking.Customer.Email)
	require.NotNil(t, list[0].Booking.Room)
	assert.Equal(t, "605", list[0].Booking.Room.RoomNumber)

	got, err := invoices.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = invoices.GetByID(created.ID + 99)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

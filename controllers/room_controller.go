package controllers

import (
	"net/http"

	"hotel-booking/models"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

// roomView is the shape the customer frontend expects: type/price are the
// remapped names, capacity is derived from the room type.
type roomView struct {
	ID          uint    `json:"id"`
	RoomNumber  string  `json:"roomNumber"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`
	IsAvailable bool    `json:"isAvailable"`
}

func toRoomView(r models.Room) roomView {
	return roomView{
		ID:          r.ID,
		RoomNumber:  r.RoomNumber,
		Type:        r.RoomType,
		Price:       r.PricePerNight,
		Capacity:    r.Capacity(),
		IsAvailable: r.IsAvailable,
	}
}

// ListAvailable handles GET /api/rooms.
func (rc *RoomController) ListAvailable(c *gin.Context) {
	rooms, err := rc.Rooms.ListAvailable()
	if err != nil {
		respondError(c, err)
		return
	}
	views := make([]roomView, 0, len(rooms))
	for _, r := range rooms {
		views = append(views, toRoomView(r))
	}
	c.JSON(http.StatusOK, views)
}

// GetByID handles GET /api/rooms/:id.
func (rc *RoomController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	room, err := rc.Rooms.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomView(room))
}

type createRoomPayload struct {
	RoomNumber    string   `json:"roomNumber"`
	RoomType      string   `json:"roomType"`
	PricePerNight *float64 `json:"pricePerNight"`
	IsAvailable   *bool    `json:"isAvailable"`
}

func (p createRoomPayload) toModel() models.Room {
	room := models.Room{
		RoomNumber:  p.RoomNumber,
		RoomType:    p.RoomType,
		IsAvailable: true,
	}
	if p.PricePerNight != nil {
		room.PricePerNight = *p.PricePerNight
	}
	if p.IsAvailable != nil {
		room.IsAvailable = *p.IsAvailable
	}
	return room
}

// Create handles POST /api/rooms.
func (rc *RoomController) Create(c *gin.Context) {
	var payload createRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}

	room := payload.toModel()
	if err := rc.Rooms.Create(&room); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Room added successfully", "room": room})
}

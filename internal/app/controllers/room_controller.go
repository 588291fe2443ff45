package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models/dto"
	"github.com/anjellyyy/smart-hostel-management-system/internal/app/services"
	"github.com/anjellyyy/smart-hostel-management-system/internal/middleware"
)

// RoomController handles room listing and occupancy mutation requests
type RoomController struct {
	roomService services.RoomService
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService services.RoomService) *RoomController {
	return &RoomController{roomService: roomService}
}

// GetRooms lists every room with its derived availability.
func (c *RoomController) GetRooms(ctx *gin.Context) {
	occupancy, err := c.roomService.GetRoomOccupancy(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewRoomListResponse(occupancy))
}

// GetAvailableRooms lists the rooms with no occupant.
func (c *RoomController) GetAvailableRooms(ctx *gin.Context) {
	available, err := c.roomService.GetAvailableRooms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAvailableRoomListResponse(available))
}

// AllocateRoom assigns a student to a room.
func (c *RoomController) AllocateRoom(ctx *gin.Context) {
	var req dto.AllocateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid student or room"))
		return
	}

	if err := c.roomService.AllocateRoom(ctx, req.StudentID, req.RoomNo); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(fmt.Sprintf("Room %s allocated to %s", req.RoomNo, req.StudentID)))
}

// VacateRoom clears the occupant of a room.
func (c *RoomController) VacateRoom(ctx *gin.Context) {
	var req dto.VacateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("No student assigned to this room"))
		return
	}

	if err := c.roomService.VacateRoom(ctx, req.RoomNo); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(fmt.Sprintf("Room %s vacated", req.RoomNo)))
}

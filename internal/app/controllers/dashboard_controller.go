package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models/dto"
	"github.com/anjellyyy/smart-hostel-management-system/internal/app/services"
	"github.com/anjellyyy/smart-hostel-management-system/internal/middleware"
)

// DashboardController handles dashboard and activity feed requests
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetDashboard reports the aggregate counts. The available-rooms count
// comes from the same occupancy derivation as the rooms listing.
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	stats, err := c.dashboardService.GetStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DashboardResponse{
		TotalStudents:     stats.TotalStudents,
		TotalRooms:        stats.TotalRooms,
		AvailableRooms:    stats.AvailableRooms,
		PendingComplaints: stats.PendingComplaints,
	})
}

// GetActivities returns up to 5 recent events, newest first.
func (c *DashboardController) GetActivities(ctx *gin.Context) {
	activities, err := c.dashboardService.GetRecentActivities(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, activities)
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models/dto"
	"github.com/anjellyyy/smart-hostel-management-system/internal/app/services"
	"github.com/anjellyyy/smart-hostel-management-system/internal/middleware"
)

// ComplaintController handles complaint requests
type ComplaintController struct {
	complaintService services.ComplaintService
}

// NewComplaintController creates a new ComplaintController
func NewComplaintController(complaintService services.ComplaintService) *ComplaintController {
	return &ComplaintController{complaintService: complaintService}
}

// GetComplaints lists all complaints newest first, each decorated with
// the student's name where the student still exists.
func (c *ComplaintController) GetComplaints(ctx *gin.Context) {
	complaints, err := c.complaintService.GetAllComplaints(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewComplaintListResponse(complaints))
}

// CreateComplaint files a new complaint with Pending status.
func (c *ComplaintController) CreateComplaint(ctx *gin.Context) {
	var req dto.CreateComplaintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Missing required fields"))
		return
	}

	if _, err := c.complaintService.FileComplaint(ctx, req.StudentID, req.IssueType, req.Description); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Complaint submitted successfully"))
}

// ResolveComplaint marks a complaint as resolved. A non-numeric id is
// indistinguishable from a missing complaint.
func (c *ComplaintController) ResolveComplaint(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("Complaint not found"))
		return
	}

	if err := c.complaintService.ResolveComplaint(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Complaint marked as resolved"))
}

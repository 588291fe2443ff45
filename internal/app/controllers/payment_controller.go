package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models/dto"
	"github.com/anjellyyy/smart-hostel-management-system/internal/app/services"
	"github.com/anjellyyy/smart-hostel-management-system/internal/middleware"
)

// PaymentController handles payment record requests
type PaymentController struct {
	paymentService services.PaymentService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// GetPayments lists all payments, newest payment date first.
func (c *PaymentController) GetPayments(ctx *gin.Context) {
	payments, err := c.paymentService.GetAllPayments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPaymentListResponse(payments))
}

// CreatePayment records a payment. The student reference is soft and not
// checked for existence; the date must be YYYY-MM-DD.
func (c *PaymentController) CreatePayment(ctx *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Missing required fields"))
		return
	}

	if _, err := c.paymentService.RecordPayment(ctx, req.StudentID, req.Amount, req.PaymentDate, req.PaymentType); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Payment recorded successfully"))
}

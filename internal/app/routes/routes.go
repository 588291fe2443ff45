package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	dashboardController *controllers.DashboardController,
	studentController *controllers.StudentController,
	roomController *controllers.RoomController,
	paymentController *controllers.PaymentController,
	complaintController *controllers.ComplaintController,
	authController *controllers.AuthController,
	chatbotController *controllers.ChatbotController,
) {
	// Root banner so a browser hit shows the API is up
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Hostel Management API is running",
			"endpoints": []string{
				"/api/dashboard",
				"/api/students",
				"/api/rooms",
				"/api/payments",
				"/api/complaints",
				"/api/chatbot",
			},
		})
	})

	api := router.Group("/api")

	// Dashboard routes
	api.GET("/dashboard", dashboardController.GetDashboard)
	api.GET("/activities", dashboardController.GetActivities)

	// Student routes
	students := api.Group("/students")
	{
		students.GET("", studentController.GetStudents)
		students.POST("", studentController.CreateStudent)
	}

	// Room routes
	rooms := api.Group("/rooms")
	{
		rooms.GET("", roomController.GetRooms)
		rooms.GET("/available", roomController.GetAvailableRooms)
		rooms.POST("/allocate", roomController.AllocateRoom)
		rooms.POST("/vacate", roomController.VacateRoom)
	}

	// Payment routes
	payments := api.Group("/payments")
	{
		payments.GET("", paymentController.GetPayments)
		payments.POST("", paymentController.CreatePayment)
	}

	// Complaint routes
	complaints := api.Group("/complaints")
	{
		complaints.GET("", complaintController.GetComplaints)
		complaints.POST("", complaintController.CreateComplaint)
		complaints.POST("/:id/resolve", complaintController.ResolveComplaint)
	}

	// Auth routes
	api.POST("/register", authController.Register)
	api.POST("/login", authController.Login)
	api.POST("/logout", authController.Logout)

	// Chatbot route
	api.POST("/chatbot", chatbotController.Chat)
}

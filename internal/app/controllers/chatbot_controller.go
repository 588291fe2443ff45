package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models/dto"
	"github.com/anjellyyy/smart-hostel-management-system/internal/chatbot"
)

// ChatbotController handles chatbot requests
type ChatbotController struct{}

// NewChatbotController creates a new ChatbotController
func NewChatbotController() *ChatbotController {
	return &ChatbotController{}
}

// Chat answers a free-text message with a canned reply. An absent or
// whitespace-only message is rejected before it reaches the bot.
func (c *ChatbotController) Chat(ctx *gin.Context) {
	var req dto.ChatbotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("No message provided"))
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("No message provided"))
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatbotResponse{Reply: chatbot.Reply(req.Message)})
}

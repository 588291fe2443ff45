package dto

// ChatbotRequest is the body of POST /api/chatbot.
type ChatbotRequest struct {
	Message string `json:"message"`
}

// ChatbotResponse carries the canned reply.
type ChatbotResponse struct {
	Reply string `json:"reply"`
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financogram/internal/services"
)

// ChatHandler serves the chat assistant.
type ChatHandler struct {
	chatService services.ChatServicer
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService services.ChatServicer) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest represents a message to the assistant.
type ChatRequest struct {
	Message string `json:"message" binding:"required,max=4000"`
	Email   string `json:"email,omitempty" binding:"omitempty,email"`
}

// ChatResponse is the assistant's answer.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Chat handles a chat message.
// @Summary     Ask the assistant
// @Description Answer a personal finance question. When an email is given, the user's portfolio is used as context.
// @Tags        chat
// @Accept      json
// @Produce     json
// @Param       request body ChatRequest true "Message"
// @Success     200 {object} ChatResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Assistant failed"
// @Failure     503 {object} ErrorResponse "Assistant not configured"
// @Router      /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	reply, err := h.chatService.Chat(c.Request.Context(), req.Message, req.Email)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}

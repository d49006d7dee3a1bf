package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strings"
	"yatra/internal/models/request_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

func (cc *ChatController) ChatHandler(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		utils.RespondError(c, http.StatusBadRequest, "Message is required")
		return
	}

	response, err := cc.chatService.HandleMessage(req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response, "Chat processed successfully")
}

func (cc *ChatController) ChatHistoryHandler(c *gin.Context) {
	history, err := cc.chatService.GetChatHistory(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, history, "Chat history fetched successfully")
}

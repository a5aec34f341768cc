// internal/handlers/message.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/atelier-backend/internal/i18n"
	"github.com/javajoker/atelier-backend/internal/services"
	"github.com/javajoker/atelier-backend/internal/utils"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// POST /api/messages and POST /api/contact
func (h *MessageHandler) SubmitMessage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.SubmitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyMessageFieldsNeeded), err.Error())
		return
	}

	message, err := h.messageService.SubmitMessage(&req)
	if err != nil {
		respondError(c, err, "", i18n.KeyMessageSubmitFailed)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":   i18n.T(lang, i18n.KeyMessageSubmitted),
		"id":        message.ID,
		"createdAt": message.CreatedAt,
	})
}

// GET /api/messages
func (h *MessageHandler) GetMessages(c *gin.Context) {
	messages, err := h.messageService.ListMessages()
	if err != nil {
		respondError(c, err, "", i18n.KeyMessagesReadFailed)
		return
	}

	if params, ok := utils.GetPaginationParams(c); ok {
		start, end := utils.PageBounds(len(messages), params)
		result := utils.CreatePaginationResult(messages[start:end], int64(len(messages)), params)
		utils.PaginatedResponse(c, result)
		return
	}

	utils.SuccessResponse(c, messages)
}

// DELETE /api/messages?id= and DELETE /api/messages/:id
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id := c.Param("id")
	if id == "" {
		id = c.Query("id")
	}
	if id == "" {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyMessageIDRequired), nil)
		return
	}

	if err := h.messageService.DeleteMessage(id); err != nil {
		respondError(c, err, i18n.KeyMessagesNotFound, i18n.KeyOperationFailed)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyMessageDeleted),
	})
}

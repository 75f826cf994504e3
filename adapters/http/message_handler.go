package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	messageUC "github.com/khoahotran/personal-site/internal/application/usecase/message"
	"github.com/khoahotran/personal-site/pkg/logger"
)

type MessageHandler struct {
	messageUC *messageUC.MessageUseCase
	logger    logger.Logger
}

func NewMessageHandler(uc *messageUC.MessageUseCase, log logger.Logger) *MessageHandler {
	return &MessageHandler{messageUC: uc, logger: log}
}

func (h *MessageHandler) SubmitMessage(c *gin.Context) {
	var req SubmitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingError("message", err))
		return
	}
	msg, err := h.messageUC.SubmitMessage(c.Request.Context(), messageUC.SubmitMessageInput{
		Sender: req.Sender,
		Email:  req.Email,
		Body:   req.Body,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *MessageHandler) ListMessages(c *gin.Context) {
	messages, err := h.messageUC.ListMessages(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) UpdateMessage(c *gin.Context) {
	var req UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingError("message", err))
		return
	}
	msg, err := h.messageUC.UpdateMessageStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	if err := h.messageUC.DeleteMessage(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

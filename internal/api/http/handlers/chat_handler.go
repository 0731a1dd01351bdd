package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/prephub-api/internal/api/dto"
	"github.com/spec-kit/prephub-api/internal/service"
	apperrors "github.com/spec-kit/prephub-api/pkg/util/errorutil"
)

// ChatHandler exposes the prep-chat keyword matcher.
type ChatHandler struct {
	service *service.ChatService
}

// NewChatHandler constructs handler.
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{service: chatService}
}

// Chat POST /chat.
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Message == "" {
		return apperrors.NewValidationError("message required", nil)
	}
	return c.JSON(dto.ChatResponse{
		Reply: h.service.Reply(req.Message),
		Query: req.Message,
	})
}

package http

import (
	"errors"
	"net/http"

	"stock-intel/internal/chat/dto"
	"stock-intel/internal/chat/service"
	"stock-intel/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ChatHandler handles chat requests.
type ChatHandler struct {
	chatService service.ChatService
	logger      *logger.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService, logger *logger.Logger) *ChatHandler {
	return &ChatHandler{chatService: chatService, logger: logger}
}

// RegisterRoutes registers the chat route on the root router.
func (h *ChatHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/chat", h.Chat)
}

// Chat godoc
// @Summary Ask the stock assistant
// @Description Classifies the message and answers from stored analysis or the general assistant
// @Tags chat
// @Accept  json
// @Produce  json
// @Param   request  body    dto.ChatRequest   true    "Chat message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat [post]
func (h *ChatHandler) Chat(c echo.Context) error {
	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	answer, err := h.chatService.Answer(c.Request().Context(), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrProviderFailure) {
			return c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "language model unavailable"})
		}
		h.logger.Error("Failed to answer chat message", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to answer message"})
	}

	return c.JSON(http.StatusOK, dto.ChatResponse{Answer: answer})
}

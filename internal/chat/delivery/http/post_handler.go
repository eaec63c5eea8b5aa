package http

import (
	"errors"
	"net/http"

	"stock-intel/internal/chat/dto"
	"stock-intel/internal/chat/service"
	"stock-intel/internal/entity"
	"stock-intel/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PostHandler exposes the analyst write path.
type PostHandler struct {
	postService service.PostService
	logger      *logger.Logger
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService service.PostService, logger *logger.Logger) *PostHandler {
	return &PostHandler{postService: postService, logger: logger}
}

// RegisterRoutes registers the post routes to the Echo group.
func (h *PostHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/stock", h.CreateStockPost)
	g.POST("/market", h.CreateMarketPost)
}

// CreateStockPost godoc
// @Summary Save a stock analysis post
// @Description Stores analyst output for one symbol, stamped with the current trading session
// @Tags posts
// @Accept  json
// @Produce  json
// @Param   post  body    dto.CreateStockPostRequest   true    "Stock post"
// @Success 201 {object} dto.PostResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/posts/stock [post]
func (h *PostHandler) CreateStockPost(c echo.Context) error {
	var req dto.CreateStockPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	resp, err := h.postService.SaveStockPost(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, entity.ErrStockNotFound) {
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		}
		h.logger.Error("Failed to save stock post", logger.ErrorField(err), logger.StringField("symbol", req.Symbol))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to save stock post"})
	}

	return c.JSON(http.StatusCreated, resp)
}

// CreateMarketPost godoc
// @Summary Save a market analysis post
// @Description Stores analyst output for the whole market
// @Tags posts
// @Accept  json
// @Produce  json
// @Param   post  body    dto.CreateMarketPostRequest   true    "Market post"
// @Success 201 {object} dto.PostResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/posts/market [post]
func (h *PostHandler) CreateMarketPost(c echo.Context) error {
	var req dto.CreateMarketPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	resp, err := h.postService.SaveMarketPost(c.Request().Context(), &req)
	if err != nil {
		h.logger.Error("Failed to save market post", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to save market post"})
	}

	return c.JSON(http.StatusCreated, resp)
}

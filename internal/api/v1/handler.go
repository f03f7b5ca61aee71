package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/liliang-cn/smartoffice/internal/domain"
	"github.com/liliang-cn/smartoffice/internal/service"
	"go.uber.org/zap"
)

// Handler handles the v1 API requests
type Handler struct {
	chatService      *service.ChatService
	directoryService *service.DirectoryService
	statusService    *service.StatusService
	logger           *zap.Logger
}

// NewHandler creates a new v1 handler
func NewHandler(
	chatService *service.ChatService,
	directoryService *service.DirectoryService,
	statusService *service.StatusService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		chatService:      chatService,
		directoryService: directoryService,
		statusService:    statusService,
		logger:           logger,
	}
}

// RegisterRoutes registers v1 routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/health", h.Health)

	chat := r.Group("/chat")
	{
		chat.POST("", h.Chat)
		chat.GET("/history", h.History)
	}

	employees := r.Group("/employees")
	{
		employees.GET("", h.ListEmployees)
		employees.GET("/:id", h.GetEmployee)
	}
}

// Root returns the service descriptor
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, h.statusService.Info())
}

// Health returns the liveness report
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.statusService.Health())
}

// Chat handles a chat message
func (h *Handler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	resp, err := h.chatService.Chat(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		h.logger.Error("Chat error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// History lists recorded chat exchanges
func (h *Handler) History(c *gin.Context) {
	limit := 0
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	result, err := h.chatService.History(c.Request.Context(), c.Query("employee_id"), limit)
	if err != nil {
		h.logger.Error("Chat history error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetEmployee returns a full employee record
func (h *Handler) GetEmployee(c *gin.Context) {
	employee, err := h.directoryService.GetEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Employee not found"})
			return
		}
		h.logger.Error("Employee lookup error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, employee)
}

// ListEmployees returns all employee ids and departments
func (h *Handler) ListEmployees(c *gin.Context) {
	c.JSON(http.StatusOK, h.directoryService.ListEmployees(c.Request.Context()))
}

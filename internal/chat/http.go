package chat

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/openpitch/league/internal/apperr"
	"github.com/openpitch/league/internal/auth"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	App *App

	// The router instance to configure the HTTP routes.
	Router Router

	// Middleware that authenticates requests on protected routes.
	Auth gin.HandlerFunc
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/teams/:team_id/chat", opts.Auth, h.historyHandler)
	r.POST("/teams/:team_id/chat", opts.Auth, h.postHandler)
	r.GET("/teams/:team_id/chat/ws", opts.Auth, h.connectHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) historyHandler(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("team_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return
	}

	var query struct {
		Limit  int32 `form:"limit,default=50"`
		Offset int32 `form:"offset,default=0"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	messages, err := h.App.History(c.Request.Context(), teamID, auth.UserID(c), query.Limit, query.Offset)
	if err != nil {
		apperr.Fail(c, err, "could not load chat history")
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (h *httpHandler) postHandler(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("team_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return
	}

	var req struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.App.Post(c.Request.Context(), teamID, auth.UserID(c), req.Body)
	if err != nil {
		if errors.Is(err, ErrInvalidMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		apperr.Fail(c, err, "could not post chat message")
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (h *httpHandler) connectHandler(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("team_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return
	}

	if err := h.App.Connect(c.Writer, c.Request, teamID, auth.UserID(c)); err != nil {
		apperr.Fail(c, err, "could not join chat room")
	}
}

package matches

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
	PATCH(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	App *App

	// The router instance to configure the HTTP routes.
	Router Router

	// Middleware that authenticates requests on protected routes.
	// Confirm endpoints stay open: their only credential is the token
	// from the email.
	Auth gin.HandlerFunc
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}

	r.POST("/matches/request/create", opts.Auth, h.requestCreateHandler)
	r.POST("/matches/:match_id/request/update", opts.Auth, h.requestUpdateHandler)
	r.POST("/matches/:match_id/request/delete", opts.Auth, h.requestDeleteHandler)

	r.POST("/matches/confirm/create", h.confirmCreateHandler)
	r.POST("/matches/:match_id/confirm/update", h.confirmUpdateHandler)
	r.POST("/matches/:match_id/confirm/delete", h.confirmDeleteHandler)

	r.GET("/matches/:match_id", h.getHandler)
	r.GET("/teams/:team_id/matches", h.listTeamMatchesHandler)

	r.GET("/fields", h.listFieldsHandler)
	r.POST("/fields", opts.Auth, h.createFieldHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) fail(c *gin.Context, err error, msg string) {
	if errors.Is(err, ErrInvalidSlot) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	apperr.Fail(c, err, msg)
}

func (h *httpHandler) requestCreateHandler(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.App.RequestCreate(c.Request.Context(), auth.UserID(c), req); err != nil {
		h.fail(c, err, "could not request match creation")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "confirmation request sent"})
}

func (h *httpHandler) requestUpdateHandler(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("match_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match id"})
		return
	}
	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.App.RequestUpdate(c.Request.Context(), auth.UserID(c), matchID, req); err != nil {
		h.fail(c, err, "could not request match reschedule")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "confirmation request sent"})
}

func (h *httpHandler) requestDeleteHandler(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("match_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match id"})
		return
	}
	var req DeleteMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.App.RequestDelete(c.Request.Context(), auth.UserID(c), matchID, req); err != nil {
		h.fail(c, err, "could not request match cancellation")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "confirmation request sent"})
}

func (h *httpHandler) confirmCreateHandler(c *gin.Context) {
	var req ConfirmCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.App.ConfirmCreate(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "could not confirm match creation")
		return
	}

	c.JSON(http.StatusCreated, match)
}

func (h *httpHandler) confirmUpdateHandler(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("match_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match id"})
		return
	}
	var req ConfirmUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.App.ConfirmUpdate(c.Request.Context(), matchID, req)
	if err != nil {
		h.fail(c, err, "could not confirm match reschedule")
		return
	}

	c.JSON(http.StatusOK, match)
}

func (h *httpHandler) confirmDeleteHandler(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("match_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match id"})
		return
	}
	var req ConfirmDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.App.ConfirmDelete(c.Request.Context(), matchID, req); err != nil {
		h.fail(c, err, "could not confirm match cancellation")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "match deleted"})
}

func (h *httpHandler) getHandler(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("match_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match id"})
		return
	}

	match, err := h.App.GetMatch(c.Request.Context(), matchID)
	if err != nil {
		h.fail(c, err, "could not get match")
		return
	}

	c.JSON(http.StatusOK, match)
}

func (h *httpHandler) listTeamMatchesHandler(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("team_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return
	}

	teamMatches, err := h.App.ListTeamMatches(c.Request.Context(), teamID)
	if err != nil {
		h.fail(c, err, "could not list team matches")
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": teamMatches})
}

func (h *httpHandler) listFieldsHandler(c *gin.Context) {
	fields, err := h.App.ListFields(c.Request.Context())
	if err != nil {
		h.fail(c, err, "could not list fields")
		return
	}

	c.JSON(http.StatusOK, gin.H{"fields": fields})
}

func (h *httpHandler) createFieldHandler(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Address string `json:"address" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	field, err := h.App.CreateField(c.Request.Context(), req.Name, req.Address)
	if err != nil {
		h.fail(c, err, "could not create field")
		return
	}

	c.JSON(http.StatusCreated, field)
}

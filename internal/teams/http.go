package teams

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
	PUT(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
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
	r.GET("/teams", h.listHandler)
	r.GET("/teams/:team_id", h.getHandler)
	r.POST("/teams", opts.Auth, h.createHandler)
	r.PUT("/teams/:team_id", opts.Auth, h.updateHandler)
	r.POST("/teams/:team_id/join", opts.Auth, h.joinHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) createHandler(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.App.CreateTeam(c.Request.Context(), auth.UserID(c), req)
	if err != nil {
		if errors.Is(err, ErrCreatorHasTeam) || errors.Is(err, ErrTeamNameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		apperr.Fail(c, err, "could not create team")
		return
	}

	c.JSON(http.StatusCreated, team)
}

func (h *httpHandler) getHandler(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("team_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return
	}

	detail, err := h.App.GetTeamDetail(c.Request.Context(), teamID)
	if err != nil {
		apperr.Fail(c, err, "could not get team")
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *httpHandler) listHandler(c *gin.Context) {
	var query struct {
		Limit  int32 `form:"limit,default=50"`
		Offset int32 `form:"offset,default=0"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	teams, err := h.App.ListTeams(c.Request.Context(), query.Limit, query.Offset)
	if err != nil {
		apperr.Fail(c, err, "could not list teams")
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

func (h *httpHandler) updateHandler(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("team_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.App.UpdateTeam(c.Request.Context(), auth.UserID(c), teamID, req)
	if err != nil {
		if errors.Is(err, ErrTeamNameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		apperr.Fail(c, err, "could not update team")
		return
	}

	c.JSON(http.StatusOK, team)
}

func (h *httpHandler) joinHandler(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("team_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return
	}

	member, err := h.App.JoinTeam(c.Request.Context(), auth.UserID(c), teamID)
	if err != nil {
		if errors.Is(err, ErrAlreadyMember) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		apperr.Fail(c, err, "could not join team")
		return
	}

	c.JSON(http.StatusCreated, member)
}

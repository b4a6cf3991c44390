package results

import (
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

	r.POST("/matches/:match_id/results", opts.Auth, h.submitTeamResultHandler)
	r.GET("/matches/:match_id/results", h.matchResultsHandler)
	r.POST("/matches/:match_id/members/:member_id/stats", opts.Auth, h.submitPlayerResultHandler)
	r.GET("/matches/:match_id/player-stats", h.matchPlayerStatsHandler)
	r.GET("/teams/:team_id/stats", h.teamStatsHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) fail(c *gin.Context, err error, msg string) {
	apperr.Fail(c, err, msg)
}

func (h *httpHandler) submitTeamResultHandler(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("match_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match id"})
		return
	}
	var req SubmitTeamResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.App.SubmitTeamResult(c.Request.Context(), auth.UserID(c), matchID, req)
	if err != nil {
		h.fail(c, err, "could not submit team result")
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *httpHandler) submitPlayerResultHandler(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("match_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match id"})
		return
	}
	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}
	var req SubmitPlayerResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.App.SubmitPlayerResult(c.Request.Context(), auth.UserID(c), matchID, memberID, req)
	if err != nil {
		h.fail(c, err, "could not submit player result")
		return
	}

	c.JSON(http.StatusCreated, stats)
}

func (h *httpHandler) matchResultsHandler(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("match_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match id"})
		return
	}

	matchResults, err := h.App.GetMatchResults(c.Request.Context(), matchID)
	if err != nil {
		h.fail(c, err, "could not get match results")
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": matchResults})
}

func (h *httpHandler) matchPlayerStatsHandler(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("match_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match id"})
		return
	}

	stats, err := h.App.GetMatchPlayerStats(c.Request.Context(), matchID)
	if err != nil {
		h.fail(c, err, "could not get player stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{"player_stats": stats})
}

func (h *httpHandler) teamStatsHandler(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("team_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return
	}

	stats, err := h.App.GetTeamStats(c.Request.Context(), teamID)
	if err != nil {
		h.fail(c, err, "could not get team stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

package users

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
	r.POST("/auth/register", h.registerHandler)
	r.POST("/auth/login", h.loginHandler)
	r.GET("/auth/me", opts.Auth, h.meHandler)
	r.PUT("/profile", opts.Auth, h.updateProfileHandler)
	r.GET("/users/:user_id/profile", h.getProfileHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) registerHandler(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.App.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		apperr.Fail(c, err, "could not register user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *httpHandler) loginHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.App.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		apperr.Fail(c, err, "could not log in user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *httpHandler) meHandler(c *gin.Context) {
	user, err := h.App.GetUser(c.Request.Context(), auth.UserID(c))
	if err != nil {
		apperr.Fail(c, err, "could not load user")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *httpHandler) updateProfileHandler(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.App.UpdateProfile(c.Request.Context(), auth.UserID(c), req)
	if err != nil {
		if errors.Is(err, ErrInvalidProfile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		apperr.Fail(c, err, "could not update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *httpHandler) getProfileHandler(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	profile, err := h.App.GetProfile(c.Request.Context(), userID)
	if err != nil {
		apperr.Fail(c, err, "could not load profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

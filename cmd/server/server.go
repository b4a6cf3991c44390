package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/openpitch/league/internal/auth"
	"github.com/openpitch/league/internal/chat"
	"github.com/openpitch/league/internal/matches"
	"github.com/openpitch/league/internal/results"
	"github.com/openpitch/league/internal/teams"
	"github.com/openpitch/league/internal/users"
)

func setupServer(cfg *Config, svc *services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(cfg.Server.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.Server.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsCfg))

	authMW := auth.Middleware(svc.tokens)

	users.NewHTTPHandler(users.HTTPOptions{App: svc.users, Router: router, Auth: authMW})
	teams.NewHTTPHandler(teams.HTTPOptions{App: svc.teams, Router: router, Auth: authMW})
	matches.NewHTTPHandler(matches.HTTPOptions{App: svc.matches, Router: router, Auth: authMW})
	results.NewHTTPHandler(results.HTTPOptions{App: svc.results, Router: router, Auth: authMW})
	chat.NewHTTPHandler(chat.HTTPOptions{App: svc.chat, Router: router, Auth: authMW})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

package main

import (
	"database/sql"

	"github.com/jonboulle/clockwork"

	"github.com/openpitch/league/internal/auth"
	"github.com/openpitch/league/internal/chat"
	"github.com/openpitch/league/internal/db"
	"github.com/openpitch/league/internal/email"
	"github.com/openpitch/league/internal/matches"
	"github.com/openpitch/league/internal/results"
	"github.com/openpitch/league/internal/teams"
	"github.com/openpitch/league/internal/users"
)

type services struct {
	users   *users.App
	teams   *teams.App
	matches *matches.App
	results *results.App
	chat    *chat.App
	chatHub *chat.Hub
	tokens  *auth.TokenIssuer
}

func setupServices(sqlDB *sql.DB, cfg *Config) *services {
	queries := db.New(sqlDB)

	tokens := auth.NewTokenIssuer(cfg.Auth.Secret, cfg.loginTTL(), cfg.confirmTTL(), clockwork.NewRealClock())
	mailer := email.NewService(cfg.Mail.APIKey, cfg.Mail.From)

	usersApp := users.NewApp(users.NewRepository(queries), tokens)
	teamsApp := teams.NewApp(teams.NewRepository(sqlDB, queries))
	matchesApp := matches.NewApp(matches.NewRepository(sqlDB, queries), teamsApp, tokens, mailer, cfg.Server.BaseURL)
	resultsApp := results.NewApp(results.NewRepository(sqlDB, queries), teamsApp, matchesApp)

	chatHub := chat.NewHub(chat.DefaultConfig())
	chatApp := chat.NewApp(chat.NewRepository(queries), teamsApp, chatHub)
	chatHub.OnMessage(chatApp.HandleIncoming)

	return &services{
		users:   usersApp,
		teams:   teamsApp,
		matches: matchesApp,
		results: resultsApp,
		chat:    chatApp,
		chatHub: chatHub,
		tokens:  tokens,
	}
}

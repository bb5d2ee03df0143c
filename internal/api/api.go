package api

import (
	"log"
	"net/http"

	"github.com/brycec/wagerbot/internal/config"
	"github.com/brycec/wagerbot/internal/ledger"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"golang.org/x/oauth2"
)

type API struct {
	router      *mux.Router
	ledger      ledger.Ledger
	config      *config.Config
	oauthConfig *oauth2.Config
	jwtSecret   []byte
}

func New(cfg *config.Config, l ledger.Ledger) *API {
	api := &API{
		router:    mux.NewRouter(),
		ledger:    l,
		config:    cfg,
		jwtSecret: []byte(cfg.JWTSecret),
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.DiscordClientID,
			ClientSecret: cfg.DiscordClientSecret,
			RedirectURL:  cfg.DiscordRedirectURI,
			Scopes:       []string{"identify"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://discord.com/api/oauth2/authorize",
				TokenURL: "https://discord.com/api/oauth2/token",
			},
		},
	}

	api.setupRoutes()
	return api
}

func (a *API) setupRoutes() {
	// Auth endpoints
	a.router.HandleFunc("/api/auth/login", a.handleLogin).Methods("GET")
	a.router.HandleFunc("/api/auth/callback", a.handleCallback).Methods("GET")
	a.router.HandleFunc("/api/auth/logout", a.handleLogout).Methods("POST")

	// Public endpoints
	a.router.HandleFunc("/api/public/leaderboard", a.handleLeaderboard).Methods("GET")
	a.router.HandleFunc("/api/public/users/{user_id}/stats", a.handlePublicStats).Methods("GET")

	// Protected endpoints
	protected := a.router.PathPrefix("/api").Subrouter()
	protected.Use(a.authMiddleware)

	protected.HandleFunc("/me/stats", a.handleMyStats).Methods("GET")

	// Admin endpoints
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(a.adminMiddleware)

	admin.HandleFunc("/users/{user_id}/balance", a.handleSetBalance).Methods("PUT")
	admin.HandleFunc("/users/{user_id}/balance/add", a.handleAddBalance).Methods("POST")
	admin.HandleFunc("/users/{user_id}/wins", a.handleSetWins).Methods("PUT")
	admin.HandleFunc("/users/{user_id}/losses", a.handleSetLosses).Methods("PUT")
	admin.HandleFunc("/users/{user_id}/winrate", a.handleAdjustWinRate).Methods("PUT")
	admin.HandleFunc("/users/{user_id}/record", a.handleResetRecord).Methods("DELETE")
}

func (a *API) Start() error {
	// Setup CORS - allow all origins for development, restrict in production
	// Note: When AllowedOrigins is "*", AllowCredentials must be false for security
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}

	handler := cors.New(corsOptions).Handler(a.router)

	log.Printf("API server listening on http://%s", a.config.WebBind)
	return http.ListenAndServe(a.config.WebBind, handler)
}

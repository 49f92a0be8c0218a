package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/streamvault/streamvault/internal/config"
	"github.com/streamvault/streamvault/internal/database"
	postgresrepo "github.com/streamvault/streamvault/internal/repository/postgres"
	"github.com/streamvault/streamvault/internal/service"
	"github.com/streamvault/streamvault/internal/tmdb"
	"github.com/streamvault/streamvault/internal/token"
	"github.com/streamvault/streamvault/internal/transport/http/handlers"
	"github.com/streamvault/streamvault/internal/transport/http/middleware"
	"github.com/streamvault/streamvault/internal/transport/ws"
)

func main() {
	ctx := context.Background()

	cfg, insecureSecret, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if insecureSecret {
		log.Println("WARNING: JWT_SECRET is not set, using the built-in development secret. Do not run this in production.")
	}

	// Database. Refusing to serve without persistence beats limping along.
	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	// Optional token revocation store
	var blacklist token.Blacklist
	if cfg.RedisURL != "" {
		redisBlacklist, err := token.NewRedisBlacklist(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal(err)
		}
		defer redisBlacklist.Close()
		blacklist = redisBlacklist
		log.Println("Connected to Redis, token revocation enabled")
	}

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	notificationRepo := postgresrepo.NewNotificationRepo(pool)

	// WebSocket hub
	hub := ws.NewHub()
	go hub.Run()

	// Services
	tokens := token.NewManager(cfg.JWTSecret, blacklist)
	authService := service.NewAuthService(userRepo, tokens)
	notificationService := service.NewNotificationService(notificationRepo, ws.NewHubNotifier(hub))
	catalogService := service.NewCatalogService(tmdb.NewClient(cfg.TMDBAPIKey))
	paymentService := service.NewPaymentService(cfg.StripeSecretKey)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService, notificationService, paymentService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Auth middleware
	auth := middleware.Auth(tokens)

	// Synthetic trending notifications (disabled in production or when
	// the interval is zero)
	if cfg.TrendingInterval > 0 && !cfg.IsProduction() {
		trending := service.NewTrending(notificationService, cfg.TrendingInterval)
		go trending.Run(ctx)
	}

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/movies/type/{category}", catalogHandler.ByCategory)
	mux.HandleFunc("GET /api/movies/trending", catalogHandler.Trending)
	mux.HandleFunc("GET /api/movies/search", catalogHandler.Search)

	// Protected
	mux.Handle("POST /api/auth/logout", auth(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /api/user/profile", auth(http.HandlerFunc(userHandler.GetProfile)))
	mux.Handle("PUT /api/user/profile", auth(http.HandlerFunc(userHandler.UpdateProfile)))
	mux.Handle("PUT /api/user/plan", auth(http.HandlerFunc(userHandler.UpdatePlan)))
	mux.Handle("GET /api/user/notifications", auth(http.HandlerFunc(userHandler.Notifications)))
	mux.Handle("POST /api/user/create-payment-intent", auth(http.HandlerFunc(userHandler.CreatePaymentIntent)))

	// Live notification channel
	mux.HandleFunc("GET /ws", ws.ServeWS(hub, tokens))

	// Start server with CORS
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.CORS(mux)))
}

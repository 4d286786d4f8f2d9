package main

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"Vidtube/internal/api/middleware"
	"Vidtube/internal/api/routes"
	"Vidtube/internal/auth"
	"Vidtube/internal/config"
	"Vidtube/internal/core/comments"
	"Vidtube/internal/core/history"
	"Vidtube/internal/core/likes"
	"Vidtube/internal/core/subscriptions"
	"Vidtube/internal/core/tweets"
	"Vidtube/internal/core/users"
	"Vidtube/internal/core/videos"
	postgresRepo "Vidtube/internal/db/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to database")

	// Run migrations
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}

	if err := goose.Up(db, cfg.MigrationsDir); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Migrations completed successfully")

	if cfg.CookieSecret != "" {
		if err := auth.InitCookieStore(cfg.CookieSecret); err != nil {
			log.Fatal("Failed to initialize cookie store:", err)
		}
	}

	// Initialize repositories
	userRepo := postgresRepo.NewUserRepository(db)
	videoRepo := postgresRepo.NewVideoRepository(db)
	likeRepo := postgresRepo.NewLikeRepository(db)
	subscriptionRepo := postgresRepo.NewSubscriptionRepository(db)
	commentRepo := postgresRepo.NewCommentRepository(db)
	historyRepo := postgresRepo.NewHistoryRepository(db)
	tweetRepo := postgresRepo.NewTweetRepository(db)
	checker := postgresRepo.NewEntityChecker(db)

	// Initialize services
	userService := users.NewService(userRepo, logger)
	historyService := history.NewService(historyRepo, logger)
	videoService := videos.NewService(videoRepo, historyService, logger)
	likeService := likes.NewService(likeRepo, checker, logger)
	subscriptionService := subscriptions.NewService(subscriptionRepo, checker, logger)
	commentService := comments.NewService(commentRepo, checker, postgresRepo.NewCommentLikeCleaner(db), logger)
	tweetService := tweets.NewService(tweetRepo, logger)

	verifier := auth.NewTokenVerifier(cfg.JWTSecret, cfg.JWTIssuer)
	authMw := middleware.NewAuthMiddleware(verifier, logger)

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	// Rate limiting: 100 requests per minute per IP
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, 1*time.Minute)
	r.Use(rateLimiter.Middleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/likes", routes.LikeRoutes(likeService, authMw))
		r.Mount("/subscriptions", routes.SubscriptionRoutes(subscriptionService, authMw))
		r.Mount("/channels", routes.ChannelRoutes(userService, subscriptionService, authMw))
		r.Mount("/videos", routes.VideoRoutes(videoService, commentService, authMw))
		r.Mount("/comments", routes.CommentRoutes(commentService, authMw))
		r.Mount("/users", routes.UserRoutes(historyService, subscriptionService, tweetService, authMw))
		r.Mount("/tweets", routes.TweetRoutes(tweetService, authMw))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	fmt.Printf("Vidtube API starting on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
